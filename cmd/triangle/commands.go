package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jugglefest/internal/logging"
	"github.com/katalvlaran/jugglefest/triangle"
)

type globalOptions struct {
	verbose bool
}

func newRootCommand() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:           "triangle COMMAND",
		Short:         "Find the maximum top-to-bottom path through a number triangle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to the console")
	cmd.AddCommand(newSolveCommand(&opts), newGenerateCommand(&opts))
	return cmd
}

func newLogger(cmd *cobra.Command, opts *globalOptions) (*logrus.Logger, io.Closer, error) {
	return logging.New(logging.Options{Console: cmd.ErrOrStderr(), Verbose: opts.verbose})
}

type solveOptions struct {
	singleRow bool
}

func newSolveCommand(g *globalOptions) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve [OPTIONS] INPUT",
		Short: "Print the maximum path total and the values along it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&opts.singleRow, "single-row", false, "Keep one rolling row and print only the total")
	return cmd
}

func runSolve(cmd *cobra.Command, g *globalOptions, opts solveOptions, path string) error {
	log, closer, err := newLogger(cmd, g)
	if err != nil {
		return err
	}
	defer closer.Close()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := triangle.Parse(f)
	if err != nil {
		return err
	}
	log.WithField("rows", t.Rows()).Debug("parsed triangle")

	mo := triangle.DefaultOptions()
	if opts.singleRow {
		mo = triangle.Options{MemoryMode: triangle.SingleRow}
	}
	res, err := triangle.MaxPath(t, &mo)
	if err != nil {
		return err
	}
	log.WithField("total", res.Total).Debug("solved triangle")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "total: %d\n", res.Total)
	if res.Path != nil {
		vals := make([]string, len(res.Values))
		for i, v := range res.Values {
			vals[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(out, "path: %s\n", strings.Join(vals, " "))
	}
	return nil
}

type generateOptions struct {
	seed int64
	min  int
	max  int
}

func newGenerateCommand(g *globalOptions) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [OPTIONS] ROWS OUTPUT",
		Short: "Write a random triangle; OUTPUT - writes to stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, opts, args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.Int64Var(&opts.seed, "seed", 1, "Random seed; equal seeds give equal triangles")
	flags.IntVar(&opts.min, "min", 1, "Smallest value")
	flags.IntVar(&opts.max, "max", 99, "Largest value")
	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, opts generateOptions, rowsArg, path string) (err error) {
	log, closer, err := newLogger(cmd, g)
	if err != nil {
		return err
	}
	defer closer.Close()

	rows, err := strconv.Atoi(rowsArg)
	if err != nil {
		return fmt.Errorf("%w: ROWS %q", triangle.ErrBadInput, rowsArg)
	}
	t, err := triangle.Generate(rows, opts.seed, opts.min, opts.max)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if path != "-" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	log.WithFields(logrus.Fields{"rows": rows, "seed": opts.seed, "output": path}).Debug("generated triangle")
	return triangle.Write(out, t)
}
