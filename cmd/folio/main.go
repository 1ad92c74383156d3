// Package main provides the CLI entrypoint for folio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/folio/internal/asset"
	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/store"
	"github.com/verte-zerg/folio/internal/tui"
)

const (
	defaultPage     = "home"
	defaultCategory = "all"
	defaultChart    = "line"
)

var (
	appPage     string
	appCategory string
	appChart    string
	appSeed     int64
	appContent  string
	appAssets   string
	appNoTrack  bool
	appDebugLog string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logErrf("failed to load .env: %v\n", err)
	}
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio viewer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.Flags().StringVar(&appPage, "page", defaultPage, "start page (home, about, portfolio, skills, contact)")
	rootCmd.Flags().StringVar(&appCategory, "category", defaultCategory, "initial project category (all, data-science, web-dev, automation)")
	rootCmd.Flags().StringVar(&appChart, "chart", defaultChart, "initial demo chart (line, bar, area)")
	rootCmd.Flags().Int64Var(&appSeed, "seed", 0, "demo data seed (0 picks a random seed)")
	rootCmd.Flags().StringVar(&appContent, "content", config.DefaultContentPath(), "content catalog file")
	rootCmd.Flags().StringVar(&appAssets, "assets", config.DefaultAssetDir(), "directory images are resolved against")
	rootCmd.Flags().BoolVar(&appNoTrack, "no-track", false, "do not record page views")
	rootCmd.Flags().StringVar(&appDebugLog, "debug-log", "", "write debug log to file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newProjectsCmd())
	rootCmd.AddCommand(newSkillsCmd())
	rootCmd.AddCommand(newDataCmd())
	rootCmd.AddCommand(newVisitsCmd())

	return rootCmd
}

func runAppCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveAppConfig(cmd)
	if err != nil {
		return err
	}

	if appDebugLog != "" {
		f, err := tea.LogToFile(appDebugLog, "folio")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close debug log: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	log.Printf("start page=%s category=%s chart=%s seed=%d track=%t", cfg.StartPage.Slug(), cfg.Category.Slug(), cfg.Chart, cfg.Seed, cfg.TrackVisits)

	var visits tui.VisitRecorder
	if cfg.TrackVisits {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		visits = st
	}

	m := tui.NewModel(tui.Options{
		Config:  cfg,
		Content: catalog,
		Assets:  asset.NewResolver(cfg.AssetDir),
		Visits:  visits,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	stopWatch := watchContent(cfg.ContentPath, program)
	defer stopWatch()
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// watchContent forwards catalog reloads to program. Watching is skipped when
// the catalog directory does not exist.
func watchContent(path string, program *tea.Program) func() {
	w, err := content.Watch(path)
	if err != nil {
		log.Printf("content watch disabled: %v", err)
		return func() {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx, func(c content.Content, err error) {
		if err != nil {
			log.Printf("content reload failed: %v", err)
		}
		program.Send(tui.ContentReloadedMsg{Content: c, Err: err})
	})
	return func() {
		cancel()
		if cerr := w.Close(); cerr != nil {
			logErrf("failed to close content watcher: %v\n", cerr)
		}
	}
}

func resolveAppConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "page", &appPage, fileCfg.App.StartPage)
	applyStringConfig(cmd, "category", &appCategory, fileCfg.App.Category)
	applyStringConfig(cmd, "chart", &appChart, fileCfg.App.Chart)
	applyInt64Config(cmd, "seed", &appSeed, fileCfg.App.Seed)
	applyStringConfig(cmd, "content", &appContent, fileCfg.App.Content)
	applyStringConfig(cmd, "assets", &appAssets, fileCfg.App.Assets)
	if fileCfg.App.TrackVisits != nil && !cmd.Flags().Changed("no-track") {
		appNoTrack = !*fileCfg.App.TrackVisits
	}

	page, err := model.ParsePageID(appPage)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --page value: %w", err)
	}
	category, err := model.ParseCategoryFilter(appCategory)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --category value: %w", err)
	}
	kind, err := model.ParseChartKind(appChart)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --chart value: %w", err)
	}
	cfg := model.Config{
		StartPage:   page,
		Category:    category,
		Chart:       kind,
		Seed:        appSeed,
		TrackVisits: !appNoTrack,
		ContentPath: expandHome(appContent),
		AssetDir:    expandHome(appAssets),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeIfMissing(path, func() ([]byte, error) {
		return []byte(defaultConfigTemplate()), nil
	}); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return openEditor(path)
}

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Create/open the content catalog",
		Args:  cobra.NoArgs,
		RunE:  runContentCmd,
	}
}

func runContentCmd(_ *cobra.Command, _ []string) error {
	path, err := configuredContentPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat content: %w", err)
		}
		if err := content.Write(path, content.Default()); err != nil {
			return fmt.Errorf("failed to write content: %w", err)
		}
		logErrf("Wrote %s\n", path)
	}
	if err := openEditor(path); err != nil {
		return err
	}
	if _, err := content.Load(path); err != nil {
		return fmt.Errorf("content file is invalid: %w", err)
	}
	return nil
}

func writeIfMissing(path string, data func() ([]byte, error)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	b, err := data()
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func openEditor(path string) error {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// configuredContentPath returns the catalog path from the config file, or the default.
func configuredContentPath() (string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if fileCfg.App.Content != nil && strings.TrimSpace(*fileCfg.App.Content) != "" {
		return expandHome(*fileCfg.App.Content), nil
	}
	return config.DefaultContentPath(), nil
}

func loadCatalog() (content.Content, error) {
	path, err := configuredContentPath()
	if err != nil {
		return content.Content{}, err
	}
	c, err := content.Load(path)
	if err != nil {
		return content.Content{}, fmt.Errorf("failed to load content: %w", err)
	}
	return c, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# folio configuration
# Uncomment a value to enable it. CLI flags override config values.

[app]
# start-page = %q        # home, about, portfolio, skills or contact
# category = %q           # all, data-science, web-dev or automation
# chart = %q             # line, bar or area
# seed = 0                  # Demo data seed (0 picks a random seed)
# track-visits = true       # Record page views in %s
# content = %q
# assets = %q
`,
		defaultPage,
		defaultCategory,
		defaultChart,
		config.DefaultDBPath(),
		config.DefaultContentPath(),
		config.DefaultAssetDir(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Seed < 0 {
		return fmt.Errorf("--seed must be >= 0")
	}
	if strings.TrimSpace(cfg.ContentPath) == "" {
		return fmt.Errorf("--content must not be empty")
	}
	if strings.TrimSpace(cfg.AssetDir) == "" {
		return fmt.Errorf("--assets must not be empty")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
