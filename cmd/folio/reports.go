package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/folio/internal/chart"
	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/demo"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/report"
	"github.com/verte-zerg/folio/internal/store"
)

var (
	projectsCategory string

	skillsSize     int
	skillsBarWidth int

	dataSeed   int64
	dataChart  string
	dataWidth  int
	dataHeight int

	visitsSince     string
	visitsPruneDays int
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List portfolio projects",
		Args:  cobra.NoArgs,
		RunE:  runProjectsCmd,
	}
	cmd.Flags().StringVar(&projectsCategory, "category", defaultCategory, "category filter (all, data-science, web-dev, automation)")
	return cmd
}

func runProjectsCmd(cmd *cobra.Command, _ []string) error {
	filter, err := model.ParseCategoryFilter(projectsCategory)
	if err != nil {
		return fmt.Errorf("invalid --category value: %w", err)
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	return report.RenderProjects(cmd.OutOrStdout(), catalog.Projects, filter)
}

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Show the skills radar and proficiency bars",
		Args:  cobra.NoArgs,
		RunE:  runSkillsCmd,
	}
	cmd.Flags().IntVar(&skillsSize, "size", 0, "radar radius in rows (0 uses the default)")
	cmd.Flags().IntVar(&skillsBarWidth, "bar-width", 20, "proficiency bar width")
	return cmd
}

func runSkillsCmd(cmd *cobra.Command, _ []string) error {
	opts, err := chart.NewRadarOptions(skillsSize, true, colorEnabled())
	if err != nil {
		return fmt.Errorf("invalid --size value: %w", err)
	}
	if skillsBarWidth <= 0 {
		return fmt.Errorf("--bar-width must be > 0")
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := report.RenderSkills(out, catalog.Skills, opts, skillsBarWidth); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out, ""); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := report.RenderLocation(out, catalog.Location, 60, 12); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the demo data table and chart",
		Args:  cobra.NoArgs,
		RunE:  runDataCmd,
	}
	cmd.Flags().Int64Var(&dataSeed, "seed", 0, "demo data seed (0 picks a random seed)")
	cmd.Flags().StringVar(&dataChart, "chart", defaultChart, "chart type (line, bar, area)")
	cmd.Flags().IntVar(&dataWidth, "width", 0, "plot width (0 fits the terminal)")
	cmd.Flags().IntVar(&dataHeight, "height", 0, "plot height")
	return cmd
}

func runDataCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyInt64Config(cmd, "seed", &dataSeed, fileCfg.App.Seed)
	applyStringConfig(cmd, "chart", &dataChart, fileCfg.App.Chart)
	if dataSeed < 0 {
		return fmt.Errorf("--seed must be >= 0")
	}
	kind, err := model.ParseChartKind(dataChart)
	if err != nil {
		return fmt.Errorf("invalid --chart value: %w", err)
	}
	opts, err := chart.NewOptions(kind, dataWidth, dataHeight, false)
	if err != nil {
		return err
	}
	gen := demo.New(dataSeed)
	return report.RenderData(cmd.OutOrStdout(), gen.DefaultTable(), gen.Seed(), opts)
}

func newVisitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "Show recorded page views",
		Args:  cobra.NoArgs,
		RunE:  runVisitsCmd,
	}
	cmd.Flags().StringVar(&visitsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&visitsPruneDays, "prune-days", 0, "delete views older than N days first")
	return cmd
}

func runVisitsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if visitsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", visitsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if visitsPruneDays < 0 {
		return fmt.Errorf("--prune-days must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	now := time.Now()
	if visitsPruneDays > 0 {
		removed, err := st.Prune(ctx, now.AddDate(0, 0, -visitsPruneDays))
		if err != nil {
			return fmt.Errorf("failed to prune visits: %w", err)
		}
		logErrln(fmt.Sprintf("Pruned %d visits older than %d days", removed, visitsPruneDays))
	}
	counts, err := st.VisitCounts(ctx, sinceTime)
	if err != nil {
		return fmt.Errorf("failed to load visits: %w", err)
	}
	return report.RenderVisits(cmd.OutOrStdout(), counts, now)
}
