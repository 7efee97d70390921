// SPDX-License-Identifier: MIT

// Command crs loads a sparse system from a YAML problem file and prints,
// transposes or solves it.
//
//	crs show problem.yaml
//	crs transpose problem.yaml
//	crs solve problem.yaml --method sor --plot conv.png -v
//	crs compare problem.yaml
package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crs/internal/config"
	"github.com/katalvlaran/crs/iterative"
	"github.com/katalvlaran/crs/progress"
	"github.com/katalvlaran/crs/sparse"
)

// app carries the flags and the logger shared by all subcommands.
type app struct {
	verbose bool
	method  string
	plot    string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "crs",
		Short: "Compressed-row sparse matrices and iterative solvers",
		Long: `crs reads a YAML problem file (matrix triplets, right-hand side and
solver settings) and renders or solves the system with Jacobi,
Gauss-Seidel, SOR or Conjugate Gradient.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every solver iteration")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the matrix of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
	transposeCmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "Print the transposed matrix of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTranspose,
	}
	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve A·x = b and print x, one value per line",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSolve,
	}
	solveCmd.Flags().StringVarP(&a.method, "method", "m", "", "jacobi | gauss-seidel | sor | cg (overrides the file)")
	solveCmd.Flags().StringVar(&a.plot, "plot", "", "Save the convergence chart to this path (png, svg, pdf)")

	compareCmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Run every method concurrently and tabulate iterations and final metric",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCompare,
	}
	compareCmd.Flags().StringVar(&a.plot, "plot", "", "Save the combined convergence chart to this path")

	root.AddCommand(showCmd, transposeCmd, solveCmd, compareCmd)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads the problem file and builds its matrix.
func (a *app) load(path string) (*config.Problem, *sparse.Matrix[float64], error) {
	p, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := p.Matrix()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("Loaded problem",
		zap.String("path", path),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("nnz", m.NNZ()))

	return p, m, nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	_, m, err := a.load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), m)

	return nil
}

func (a *app) runTranspose(cmd *cobra.Command, args []string) error {
	_, m, err := a.load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sparse.Transpose(m))

	return nil
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	p, m, err := a.load(args[0])
	if err != nil {
		return err
	}
	if a.method != "" {
		p.Solver.MethodName = a.method
	}
	method, err := p.Solver.Method()
	if err != nil {
		return err
	}
	opts, err := p.Solver.Options()
	if err != nil {
		return err
	}

	var rec *progress.Recorder
	reporter := iterative.Reporter(progress.NewLogger(a.logger))
	if a.plot != "" {
		rec = &progress.Recorder{}
		reporter = progress.Tee(reporter, rec)
	}
	opts = append(opts, iterative.WithReporter(reporter))

	res, err := iterative.Solve(method, m, p.Rhs, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("Solved",
		zap.Stringer("method", method),
		zap.Int("iterations", res.Iterations),
		zap.Float64("metric", res.Metric))

	out := cmd.OutOrStdout()
	for _, v := range res.X {
		fmt.Fprintln(out, v)
	}

	if rec != nil {
		if err := rec.SavePlot(a.plot); err != nil {
			return fmt.Errorf("failed to save plot: %w", err)
		}
		a.logger.Debug("Saved plot", zap.String("path", a.plot))
	}

	return nil
}

// outcome is one row of the compare table.
type outcome struct {
	method iterative.Method
	res    iterative.Result[float64]
	err    error
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	p, m, err := a.load(args[0])
	if err != nil {
		return err
	}
	opts, err := p.Solver.Options()
	if err != nil {
		return err
	}

	rec := &progress.Recorder{}
	opts = append(opts, iterative.WithReporter(progress.Tee(progress.NewLogger(a.logger), rec)))
	methods := []iterative.Method{
		iterative.MethodJacobi, iterative.MethodGaussSeidel, iterative.MethodSOR, iterative.MethodCG,
	}
	outcomes := make([]outcome, len(methods))

	// Failures are per method; the group itself never fails.
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, method := range methods {
		i, method := i, method
		eg.Go(func() error {
			res, err := iterative.Solve(method, m, p.Rhs, opts...)
			outcomes[i] = outcome{method: method, res: res, err: err}
			return nil
		})
	}
	_ = eg.Wait()

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tITERATIONS\tMETRIC\tERROR")
	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			a.logger.Debug("Method failed", zap.Stringer("method", o.method), zap.Error(o.err))
			fmt.Fprintf(tw, "%s\t-\t-\t%v\n", o.method, o.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3e\t\n", o.method, o.res.Iterations, o.res.Metric)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if a.plot != "" {
		if err := rec.SavePlot(a.plot); err != nil {
			return fmt.Errorf("failed to save plot: %w", err)
		}
	}
	if failed == len(methods) {
		return fmt.Errorf("compare: every method failed: %w", outcomes[0].err)
	}

	return nil
}
