package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/anneal"
	"github.com/danfiner/projsa/internal/config"
	"github.com/danfiner/projsa/internal/loader"
	"github.com/danfiner/projsa/internal/metrics"
	"github.com/danfiner/projsa/internal/prng"
	"github.com/danfiner/projsa/internal/report"
	"github.com/danfiner/projsa/internal/seedinit"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed an assignment and run the annealing schedule",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	runLog := log.WithField("runId", runID)

	prefs, err := loader.ReadPreferences(cfg.PreferencePath, cfg.Projects, cfg.Pairs)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	workloads, err := loader.ReadWorkloads(cfg.WorkloadPath, cfg.Projects, cfg.Supervisors)
	if err != nil {
		return fmt.Errorf("load workloads: %w", err)
	}

	weights, err := resolveWeights(cfg)
	if err != nil {
		return fmt.Errorf("resolve weights: %w", err)
	}

	rng, err := prng.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed PRNG: %w", err)
	}

	state := alloc.NewState(cfg.Pairs)
	if err := seedinit.Seed(state, prefs, workloads, rng, seedinit.DefaultIterationCap); err != nil {
		return fmt.Errorf("seed initial assignment: %w", err)
	}

	annealCfg := resolveAnnealConfig(cfg)

	collector := metrics.NewCollector()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := collector.Serve(ctx, cfg.MetricsAddr); err != nil {
				runLog.WithError(err).Warn("metrics server stopped")
			}
		}()
	}

	scheduler := anneal.New(state, prefs, workloads, weights, rng, annealCfg,
		anneal.WithRecorder(collector),
		anneal.WithLogger(runLog),
	)

	started := time.Now()
	result, err := scheduler.Run(ctx)
	collector.ObserveRunDuration(time.Since(started))
	if err != nil {
		return fmt.Errorf("annealing run: %w", err)
	}

	if err := writeReport(cfg, runID, state, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	runLog.WithFields(logrus.Fields{
		"finalEnergy": result.FinalEnergy,
		"epochs":      result.Epochs,
	}).Info("run complete")
	return nil
}

func resolveWeights(cfg config.Config) (alloc.Weights, error) {
	if cfg.Weights != nil {
		return alloc.NewWeights(cfg.Weights.W1, cfg.Weights.W2, cfg.Weights.W3, cfg.Weights.W4)
	}
	return alloc.DefaultWeights(cfg.Pairs)
}

func resolveAnnealConfig(cfg config.Config) anneal.Config {
	a := cfg.Annealing
	if a.T0 == 0 && a.DeltaT == 0 && a.MovesCapFactor == 0 && a.SuccessCapFactor == 0 {
		return anneal.DefaultConfig()
	}
	return anneal.NewConfig(a.T0, a.DeltaT, a.MovesCapFactor, a.SuccessCapFactor)
}

func writeReport(cfg config.Config, runID string, state *alloc.State, result anneal.Result) error {
	w, err := report.NewWriter(cfg.OutputPath)
	if err != nil {
		return err
	}
	assignments := make([]report.Assignment, 0, state.Pairs())
	for n := 0; n < state.Pairs(); n++ {
		pair1, proj1 := n+1, state.Proj[n]+1
		if err := w.WritePair(pair1, proj1, state.Pref[n]); err != nil {
			return err
		}
		assignments = append(assignments, report.Assignment{Pair: pair1, Project: proj1, Pref: state.Pref[n]})
	}
	if err := w.Finish(result.FinalEnergy); err != nil {
		return err
	}

	if cfg.JSONOutputPath == "" {
		return nil
	}
	return report.WriteJSON(cfg.JSONOutputPath, report.Summary{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Assignments: assignments,
		FinalEnergy: result.FinalEnergy,
	})
}
