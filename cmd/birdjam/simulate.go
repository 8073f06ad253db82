package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdjam/internal/core"
	"github.com/vovakirdan/birdjam/internal/game"
	"github.com/vovakirdan/birdjam/internal/platform"
)

var (
	flagTicks int
	flagRuns  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <mode>",
	Short: "Run a mode headless with the autopilot",
	Long: `Play a mode without a terminal. A simple autopilot flaps, steers and
aims the tongue; each run ends on a win, a loss or after --ticks play ticks.
Output is deterministic for a given --seed.

Examples:
  birdjam simulate flappy --seed 1
  birdjam simulate gold --seed 7 --runs 5
  birdjam simulate frog --ticks 20000 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum play ticks per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

// simResult summarizes one headless run.
type simResult struct {
	Ticks  int
	Score  int
	Result string // win, lose or timeout
}

func runSimulate(cmd *cobra.Command, args []string) error {
	mode, err := game.ParseMode(args[0])
	if err != nil {
		return err
	}
	if flagTicks <= 0 || flagRuns <= 0 {
		return fmt.Errorf("--ticks and --runs must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed()
	session, err := game.New(cfg, seed)
	if err != nil {
		return err
	}
	reporter := platform.NewReporter(logger.With("headless", true), nil)
	pilot := game.NewAutopilot(mode)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mode=%s seed=%d\n", mode, seed)
	best := 0
	for run := 1; run <= flagRuns; run++ {
		res := simulate(session, pilot, reporter, flagTicks)
		best = max(best, res.Score)
		fmt.Fprintf(out, "run=%d ticks=%d score=%d result=%s\n", run, res.Ticks, res.Score, res.Result)
	}
	if flagRuns > 1 {
		fmt.Fprintf(out, "best=%d finished=%d\n", best, reporter.Runs())
	}
	return nil
}

// simulate plays one run starting from the menu and leaves the session
// back on the menu.
func simulate(s *game.Session, pilot *game.Autopilot, reporter *platform.Reporter, maxTicks int) simResult {
	for s.State().Kind != game.StatePlay {
		reporter.Report(s.Tick(pilot.Input(s)))
	}

	var snap game.Snapshot
	for {
		res := s.Tick(pilot.Input(s))
		reporter.Report(res)
		snap = res.State
		if snap.GameOver() || snap.Tick >= maxTicks {
			break
		}
	}

	result := simResult{Ticks: snap.Tick, Score: snap.Score, Result: snap.State.Kind.String()}
	if !snap.GameOver() {
		result.Result = "timeout"
		reporter.Report(s.Abandon())
		return result
	}

	in := core.NewInputFrame()
	in.PointerPress(core.Vec{})
	reporter.Report(s.Tick(in))
	return result
}
