package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danfiner/projsa/internal/config"
	"github.com/danfiner/projsa/internal/loader"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateCmd parses the configured CSVs and reports shape problems
// without seeding or annealing. It exists to catch the blank-row/
// blank-column hazard that comes with preference sheets exported from
// a spreadsheet.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check preference and workload CSVs for shape errors",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	prefs, err := loader.ReadPreferences(cfg.PreferencePath, cfg.Projects, cfg.Pairs)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.PreferencePath, err)
	}
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("%s: %w", cfg.PreferencePath, err)
	}
	fmt.Printf("%s: %d projects x %d pairs, OK\n", cfg.PreferencePath, prefs.Projects(), prefs.Pairs())

	workloads, err := loader.ReadWorkloads(cfg.WorkloadPath, cfg.Projects, cfg.Supervisors)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.WorkloadPath, err)
	}
	if err := workloads.Validate(); err != nil {
		return fmt.Errorf("%s: %w", cfg.WorkloadPath, err)
	}
	fmt.Printf("%s: %d projects x %d supervisors, OK\n", cfg.WorkloadPath, workloads.Projects(), workloads.Supervisors())
	return nil
}
