// Command projsa assigns student pairs to supervised projects by
// simulated annealing. Subcommands are registered from their own
// files' init(), the way tutu-network/tutu's internal/cli package
// registers "tutu agent ...".
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "projsa",
	Short: "Assign pairs to projects by simulated annealing",
	Long: `projsa reads a preference matrix and a supervisor workload matrix,
seeds a feasible initial assignment, and runs a combined
shift-register-driven simulated annealing schedule to minimize
preference-rank cost subject to uniqueness and workload constraints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
		log.SetLevel(parsed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to projsa.toml")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return "", fmt.Errorf("--config is required")
	}
	return path, nil
}
