package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type faultsConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	json       bool
}

func (c *faultsConfig) Exec(ctx context.Context, _ []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintf(c.err, "faults\n")
	}

	d, closer, err := newL9733(ctx, c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	report, err := d.Faults(ctx)
	if err != nil {
		return err
	}

	return writeReport(c.out, report, c.json)
}

func newFaultsCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := faultsConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("l9733 faults", flag.ExitOnError)
	fs.BoolVar(&cfg.json, "json", false, "output in json mode")
	rootConfig.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "faults",
		ShortUsage: "faults",
		ShortHelp:  "Samples and prints the per-channel fault report.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	})
}
