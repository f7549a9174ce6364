package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/jugglefest/internal/config"
	"github.com/katalvlaran/jugglefest/internal/logging"
	"github.com/katalvlaran/jugglefest/juggle"
	"github.com/katalvlaran/jugglefest/jugglefile"
)

type rootOptions struct {
	verbose    bool
	logFile    string
	format     string
	configFile string
	verify     bool
	flags      *pflag.FlagSet
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "jugglefest [OPTIONS] INPUT [OUTPUT]",
		Short:         "Assign jugglers to circuits by preference and skill",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.flags = cmd.Flags()
			return runRoot(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every assignment to the console")
	flags.StringVarP(&opts.logFile, "log", "l", "", "Write a diagnostic log to `file`")
	flags.Lookup("log").NoOptDefVal = logging.DefaultFile
	flags.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or yaml")
	flags.StringVar(&opts.configFile, "config", "", "Read settings from a YAML `file`")
	flags.BoolVar(&opts.verify, "verify", false, "Check the assignment for stability before writing it")

	return cmd
}

// settings merges the config file with flags that were set explicitly.
func settings(opts rootOptions) (config.Config, error) {
	c := config.Default()
	if opts.configFile != "" {
		var err error
		if c, err = config.Load(opts.configFile); err != nil {
			return config.Config{}, err
		}
	}
	if opts.flags.Changed("log") {
		c.Log.File = opts.logFile
	}
	if opts.flags.Changed("format") || opts.configFile == "" {
		c.Output.Format = opts.format
	}
	if opts.flags.Changed("verify") {
		c.Verify = opts.verify
	}
	return c, nil
}

func runRoot(cmd *cobra.Command, opts rootOptions, args []string) (err error) {
	c, err := settings(opts)
	if err != nil {
		return err
	}
	format, err := jugglefile.ParseFormat(c.Output.Format)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{
		Console: cmd.ErrOrStderr(),
		Level:   c.Log.Level,
		Verbose: opts.verbose,
		Format:  c.Log.Format,
		File:    c.Log.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	festival, err := jugglefile.Load(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"circuits": len(festival.Circuits()),
		"jugglers": len(festival.Jugglers()),
		"capacity": festival.Circuits()[0].Capacity(),
	}).Info("loaded festival")

	res, allocErr := festival.Allocate(juggle.WithLogger(log))
	if res == nil {
		return allocErr
	}
	log.WithFields(logrus.Fields{
		"waves":         res.Waves,
		"placements":    res.Placements,
		"displacements": res.Displacements,
		"unplaced":      len(res.Unplaced),
	}).Info("allocation finished")

	if allocErr == nil && c.Verify {
		if err := festival.Stable(); err != nil {
			log.WithError(err).Error("verification failed")
			return err
		}
		log.Info("assignment verified stable")
	}

	var out io.Writer = cmd.OutOrStdout()
	if len(args) == 2 {
		f, ferr := os.Create(args[1])
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
	if err := jugglefile.Write(out, festival, format); err != nil {
		return err
	}
	return allocErr
}
