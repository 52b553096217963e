package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fieldwave/driver"
	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/fixpoint"
	"github.com/katalvlaran/fieldwave/phase"
	"github.com/katalvlaran/fieldwave/unfold"
	"github.com/katalvlaran/fieldwave/vecmath"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldsim",
		Short: "Field simulation - waves, harvests and phase analysis",
		Long: `fieldsim drives the fieldwave engine from the command line.

It seeds waves into a 2-D field, harvests them into landmarks, sweeps
density through its phase thresholds, checks harvest convergence and
streams attractor events.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newConvergeCmd(),
		newPhasesCmd(),
		newUnfoldCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fieldsim version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Harvest the seeds of a YAML scenario file",
		Long: `Run a scenario: optionally redistribute attractor strengths, then
seed and harvest every wave in order against the evolving field.

Example scenario:

  attractors:
    origin: 0.7
    meridian: 0.7
    horizon: 0.4
    zenith: 0.2
  seeds:
    - origin: demo
      a: -1.0
      b: -1.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("scenario")

			sc, err := LoadScenario(path)
			if err != nil {
				return err
			}

			f, results, err := sc.Apply(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, res := range results {
				fmt.Fprintf(out, "%d. %s: %s, mass %.2f at (%.2f, %.2f)\n",
					i+1, res.Wave.Origin, res.Wave.Status, res.Wave.Mass,
					res.Wave.Pos.A, res.Wave.Pos.B)
			}
			m := f.Metrics()
			fmt.Fprintln(out)
			fmt.Fprintf(out, "density:   %.4f\n", m.Density)
			fmt.Fprintf(out, "phase:     %s\n", m.Phase)
			fmt.Fprintf(out, "landmarks: %d\n", m.Landmarks)
			fmt.Fprintf(out, "in-flight: %d\n", m.Waves)
			return nil
		},
	}

	cmd.Flags().String("scenario", "", "Path to YAML scenario file (required)")
	cmd.MarkFlagRequired("scenario")

	return cmd
}

func newConvergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Iterate harvests on one seed until a fixpoint is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _ := cmd.Flags().GetFloat64("a")
			b, _ := cmd.Flags().GetFloat64("b")
			mass, _ := cmd.Flags().GetFloat64("mass")
			epsilon, _ := cmd.Flags().GetFloat64("epsilon")
			iterations, _ := cmd.Flags().GetInt("iterations")

			w := field.NewSeedAt("converge", vecmath.Position{A: a, B: b}).WithMass(mass)
			conv := fixpoint.Converge(w, field.New(), &fixpoint.Options{
				Epsilon:       epsilon,
				MaxIterations: iterations,
			})

			out := cmd.OutOrStdout()
			for i, step := range conv.Steps {
				fmt.Fprintf(out, "step %d: mass %.4f, delta %.4f\n", i+1, step.Mass, step.Delta)
			}
			fmt.Fprintf(out, "converged: %v after %d steps\n", conv.Converged, len(conv.Steps))
			fmt.Fprintf(out, "landmarks: %d\n", len(conv.Field.Landmarks))
			return nil
		},
	}

	cmd.Flags().Float64("a", field.DefaultSeedPosition.A, "Seed position on axis-A")
	cmd.Flags().Float64("b", field.DefaultSeedPosition.B, "Seed position on axis-B")
	cmd.Flags().Float64("mass", field.DefaultSeedMass, "Seed mass in [0,1]")
	cmd.Flags().Float64("epsilon", fixpoint.DefaultEpsilon, "Fixpoint distance threshold")
	cmd.Flags().Int("iterations", fixpoint.DefaultMaxIterations, "Maximum harvest iterations")

	return cmd
}

func newPhasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "Sweep density through the phase thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			step, _ := cmd.Flags().GetFloat64("step")
			if step <= 0 || step > 1 {
				return fmt.Errorf("step must be in (0,1], got %v", step)
			}

			var ascending []float64
			for d := 0.0; d <= 1.0+1e-9; d += step {
				if d > 1 {
					d = 1
				}
				ascending = append(ascending, d)
			}
			descending := make([]float64, len(ascending))
			for i, d := range ascending {
				descending[len(ascending)-1-i] = d
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "density  phase")
			for _, d := range ascending {
				fmt.Fprintf(out, "%.3f    %s\n", d, field.Classify(d))
			}

			up := phase.SampleDensities(ascending)
			down := phase.SampleDensities(descending)
			report, ok := phase.DetectHysteresis(up, down)
			fmt.Fprintln(out)
			if !ok {
				fmt.Fprintln(out, "hysteresis: not measurable (no transition in one of the sweeps)")
				return nil
			}
			fmt.Fprintf(out, "hysteresis: width %.3f (ascending %.3f, descending %.3f), hysteretic: %v\n",
				report.Width, report.AscendingDensity, report.DescendingDensity, report.Hysteretic)
			return nil
		},
	}

	cmd.Flags().Float64("step", 0.1, "Density increment per sweep step")

	return cmd
}

func newUnfoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unfold",
		Short: "Stream events from one named attractor",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("attractor")
			count, _ := cmd.Flags().GetInt("events")
			threshold, _ := cmd.Flags().GetFloat64("threshold")

			f := field.New()
			var attractor field.Attractor
			found := false
			for _, a := range f.Attractors {
				if a.Name == field.AttractorName(name) {
					attractor = a
					found = true
				}
			}
			if !found {
				return fmt.Errorf("unknown attractor %q", name)
			}

			events, _ := unfold.Stream(attractor, f, vecmath.Position{}, count,
				&unfold.Options{Threshold: threshold})

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintf(out, "%s is dormant (strength %.2f below threshold)\n",
					attractor.Name, attractor.Strength)
				return nil
			}
			for i, ev := range events {
				fmt.Fprintf(out, "%d. %s strength %.3f at (%.3f, %.3f)\n",
					i+1, ev.Source, ev.Strength, ev.At.A, ev.At.B)
			}
			fmt.Fprintf(out, "moves toward %s: %v\n", attractor.Name, unfold.MovesToward(attractor, events))
			return nil
		},
	}

	cmd.Flags().String("attractor", string(field.Meridian), "Attractor name (origin, meridian, horizon, zenith)")
	cmd.Flags().Int("events", 5, "Maximum events to stream")
	cmd.Flags().Float64("threshold", unfold.ActivationThreshold, "Activation threshold")

	return cmd
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the periodic driver for a number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, _ := cmd.Flags().GetDuration("interval")
			ticks, _ := cmd.Flags().GetInt("ticks")
			if ticks <= 0 {
				return fmt.Errorf("ticks must be positive, got %d", ticks)
			}

			out := cmd.OutOrStdout()
			done := make(chan struct{})
			var once sync.Once

			d := driver.New(&driver.Options{
				Interval: interval,
				OnTick: func(tick uint64, density float64, ph field.Phase) {
					fmt.Fprintf(out, "tick %3d  density %.3f  %s\n", tick, density, ph)
					if tick >= uint64(ticks) {
						once.Do(func() { close(done) })
					}
				},
			})

			go d.Run()
			<-done
			d.Stop()
			return nil
		},
	}

	cmd.Flags().Duration("interval", time.Second, "Wall-clock spacing between ticks")
	cmd.Flags().Int("ticks", 10, "Number of ticks to run before stopping")

	return cmd
}
