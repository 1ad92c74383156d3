// Package asset resolves image references for display.
package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// ErrRemote is returned for references that would need a network fetch.
var ErrRemote = errors.New("remote images are not fetched")

// ErrNotImage is returned when a reference resolves to non-image content.
var ErrNotImage = errors.New("not an image")

// Asset is a resolved image.
type Asset struct {
	Ref  string
	Path string
	MIME string
	Size int64
	Data []byte
}

// Describe returns a one-line summary such as "me.png · image/png · 12 kB".
func (a Asset) Describe() string {
	return fmt.Sprintf("%s · %s · %s", filepath.Base(a.Ref), a.MIME, humanize.Bytes(uint64(a.Size)))
}

// Resolver loads image references relative to a root directory.
type Resolver struct {
	Root string
}

// NewResolver returns a Resolver for root.
func NewResolver(root string) *Resolver {
	return &Resolver{Root: root}
}

// Resolve reads ref and checks that it holds an image.
func (r *Resolver) Resolve(ref string) (Asset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Asset{}, fmt.Errorf("empty image reference")
	}
	if isRemote(ref) {
		return Asset{}, fmt.Errorf("%s: %w", ref, ErrRemote)
	}
	path := ref
	if !filepath.IsAbs(path) && r.Root != "" {
		path = filepath.Join(r.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to read image %s: %w", ref, err)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return Asset{}, fmt.Errorf("%s is %s: %w", ref, mtype.String(), ErrNotImage)
	}
	return Asset{
		Ref:  ref,
		Path: path,
		MIME: mtype.String(),
		Size: int64(len(data)),
		Data: data,
	}, nil
}

// Image is what a page shows in place of a picture.
type Image struct {
	Ref     string
	Caption string
	Found   bool
	Summary string
	Warning string
}

// Placeholder resolves ref and never fails: resolution errors become a
// warning for the page to show.
func (r *Resolver) Placeholder(ref, caption, warning string) Image {
	img := Image{Ref: ref, Caption: caption}
	if isRemote(ref) {
		img.Summary = "image: " + ref
		return img
	}
	if r == nil {
		img.Warning = warning
		return img
	}
	a, err := r.Resolve(ref)
	if err != nil {
		img.Warning = warning
		return img
	}
	img.Found = true
	img.Summary = a.Describe()
	return img
}

func isRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
