// Package main runs the seminar 06 exercises: character pairing, exam score
// standardization and activation curve plotting.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/seminar06/kadai/internal/backend/cpu"
	"github.com/seminar06/kadai/internal/curves"
	"github.com/seminar06/kadai/internal/pairing"
	"github.com/seminar06/kadai/internal/scores"
)

const (
	version   = "v0.1.0"
	graphPath = "graph.png"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("kadai %s\n", version)
		return
	}

	logger := newLogger(os.Stderr, slog.LevelInfo)
	if err := run(os.Stdout, logger, graphPath); err != nil {
		logger.Error("exercise failed", "error", err)
		os.Exit(1)
	}
}

// run executes the three exercises in order, writing results to out and the
// activation figure to graph.
func run(out io.Writer, logger *slog.Logger, graph string) error {
	if err := runPairing(out); err != nil {
		return err
	}
	if err := runScores(out); err != nil {
		return err
	}
	return runCurves(logger, graph)
}

func runPairing(out io.Writer) error {
	a, b := pairing.Inputs()
	pairs, err := pairing.Pair(a, b)
	if err != nil {
		return fmt.Errorf("pairing: %w", err)
	}

	fmt.Fprintf(out, "%q\n", pairs)
	return nil
}

func runScores(out io.Writer) error {
	exam := scores.Scores()
	z, err := scores.ZScores(exam)
	if err != nil {
		return fmt.Errorf("z-scores: %w", err)
	}

	sum, err := scores.Summarize(exam, scores.PassThreshold)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	fmt.Fprintf(out, "pass (>= %d): %d/%d\n", scores.PassThreshold, sum.Passed, sum.Count)
	fmt.Fprintf(out, "mean: %.2f std: %.2f\n", sum.Mean, sum.StdDev)
	fmt.Fprintf(out, "z: %.8f\n", z)
	return nil
}

func runCurves(logger *slog.Logger, graph string) error {
	backend := cpu.New()
	cfg := curves.DefaultConfig()

	c, err := curves.Compute(backend, cfg)
	if err != nil {
		return err
	}
	logger.Info("curves computed", "points", c.Len(), "softmax_sum", fmt.Sprintf("%.6f", c.SoftmaxSum(backend)))

	if err := curves.Save(c, cfg, graph); err != nil {
		return err
	}
	logger.Info("graph saved", "path", graph)
	return nil
}
