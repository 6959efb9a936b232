/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/notargets/avs/chart2d"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/samg/InputParameters"
	"github.com/notargets/samg/iterative"
	"github.com/notargets/samg/model_problems"
	"github.com/notargets/samg/multigrid"
	"github.com/notargets/samg/utils"
)

// SolveRun carries the resolved parameters for one solve
type SolveRun struct {
	N             int
	Theta         float64
	Omega         float64
	Tolerance     float64
	MaxIterations int
	Smoother      string
	CoarseSize    int
	Graph         bool
	GraphDelay    time.Duration
}

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Build the hierarchy for a model problem and solve it",
	Long: `
Assembles the 5-point Laplacian on an N x N grid, builds the smoothed
aggregation hierarchy and runs V-cycle iterations on a right-hand side of
all ones,

samg solve -n 33 --theta 0.25`,
	Run: func(cmd *cobra.Command, args []string) {
		sr := &SolveRun{}
		sr.N, _ = cmd.Flags().GetInt("n")
		sr.Theta, _ = cmd.Flags().GetFloat64("theta")
		sr.Omega, _ = cmd.Flags().GetFloat64("omega")
		sr.Tolerance, _ = cmd.Flags().GetFloat64("tol")
		sr.MaxIterations, _ = cmd.Flags().GetInt("maxiter")
		sr.Smoother, _ = cmd.Flags().GetString("smoother")
		sr.CoarseSize, _ = cmd.Flags().GetInt("coarseSize")
		sr.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		sr.GraphDelay = time.Duration(dr) * time.Millisecond

		if ipFile, _ := cmd.Flags().GetString("inputFile"); ipFile != "" {
			applyInputFile(sr, ipFile)
		}
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		RunSolve(sr)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntP("n", "n", 33, "grid dimension N for the N x N model problem")
	solveCmd.Flags().Float64("theta", 0.25, "strength of connection threshold")
	solveCmd.Flags().Float64("omega", multigrid.DefaultOmega, "damping parameter")
	solveCmd.Flags().Float64("tol", 1.e-8, "relative residual tolerance")
	solveCmd.Flags().Int("maxiter", 20, "outer iteration budget")
	solveCmd.Flags().String("smoother", "chebyshev", "level smoother: chebyshev or jacobi")
	solveCmd.Flags().Int("coarseSize", multigrid.DefaultCoarseSize, "direct solve threshold")
	solveCmd.Flags().StringP("inputFile", "I", "", "YAML solver parameters file")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
	solveCmd.Flags().Bool("graph", false, "display the residual history")
	solveCmd.Flags().IntP("delay", "d", 5000, "milliseconds to keep the graph up after the solve")
}

func applyInputFile(sr *SolveRun, fileName string) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		slog.Error("unable to read input file", "file", fileName, "err", err)
		os.Exit(1)
	}
	var sp InputParameters.SolverParameters
	if err = sp.Parse(data); err != nil {
		slog.Error("unable to parse input file", "file", fileName, "err", err)
		os.Exit(1)
	}
	sp.Print()
	if sp.GridSize != 0 {
		sr.N = sp.GridSize
	}
	if sp.Theta != 0 {
		sr.Theta = sp.Theta
	}
	if sp.Omega != 0 {
		sr.Omega = sp.Omega
	}
	if sp.Tolerance != 0 {
		sr.Tolerance = sp.Tolerance
	}
	if sp.MaxIterations != 0 {
		sr.MaxIterations = sp.MaxIterations
	}
	if sp.Smoother != "" {
		sr.Smoother = sp.Smoother
	}
	if sp.CoarseSize != 0 {
		sr.CoarseSize = sp.CoarseSize
	}
}

func RunSolve(sr *SolveRun) {
	A := model_problems.Poisson2D(sr.N)
	nr, _ := A.Dims()
	slog.Info("assembled model problem", "grid", sr.N, "unknowns", nr, "nonzeros", A.Nnz())

	opts := multigrid.DefaultOptions(sr.Theta)
	opts.Omega = sr.Omega
	opts.CoarseSize = sr.CoarseSize
	if sr.Smoother == "jacobi" {
		opts.Smoother = multigrid.JacobiSmoother
	}

	start := time.Now()
	sa, err := multigrid.NewWithOptions(A, opts)
	if err != nil {
		slog.Error("hierarchy construction failed", "err", err)
		os.Exit(1)
	}
	slog.Info("hierarchy built", "levels", len(sa.Levels), "elapsed", time.Since(start))
	sa.PrintStats()

	var (
		b  = utils.ConstArray(nr, 1)
		x  = make([]float64, nr)
		mn = iterative.NewMonitor(b, sr.Tolerance, sr.MaxIterations)
	)
	start = time.Now()
	err = sa.Solve(b, x, mn)
	switch {
	case errors.Is(err, multigrid.ErrMaxIterations):
		slog.Warn("solve did not converge", "iterations", mn.Iterations(),
			"residual", mn.ResidualNorm(), "elapsed", time.Since(start))
	case err != nil:
		slog.Error("solve failed", "err", err)
		os.Exit(1)
	default:
		slog.Info("converged", "iterations", mn.Iterations(),
			"residual", mn.ResidualNorm(), "elapsed", time.Since(start))
	}

	if sr.Graph {
		plotHistory(mn.History, sr.GraphDelay)
	}
}

// plotHistory displays log10 of the residual norm per outer iteration.
func plotHistory(history []float64, delay time.Duration) {
	var (
		xs = make([]float64, len(history))
		ys = make([]float64, len(history))
	)
	ymin, ymax := math.MaxFloat64, -math.MaxFloat64
	for i, r := range history {
		xs[i] = float64(i)
		ys[i] = math.Log10(r)
		ymin = math.Min(ymin, ys[i])
		ymax = math.Max(ymax, ys[i])
	}
	chart := chart2d.NewChart2D(1024, 768, 0, float32(len(history)-1),
		float32(ymin), float32(ymax))
	go chart.Plot()
	if err := chart.AddSeries("residual", xs, ys,
		chart2d.CrossGlyph, chart2d.Dashed, utils.GetColor(utils.Blue)); err != nil {
		panic("unable to add graph series")
	}
	time.Sleep(delay)
}
