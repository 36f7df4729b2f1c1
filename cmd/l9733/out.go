package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type outConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	json       bool
}

func (c *outConfig) Exec(ctx context.Context, args []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintf(c.err, "out\n")
	}

	d, closer, err := newL9733(ctx, c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	bits, err := parseChannelArgs(args, d.Outputs().Bits)
	if err != nil {
		return err
	}

	report, err := d.WriteOutputStatus(ctx, l9733conf.OutputStatus{Bits: bits})
	if err != nil {
		return err
	}

	return writeReport(c.out, report, c.json)
}

func newOutCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := outConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("l9733 out", flag.ExitOnError)
	fs.BoolVar(&cfg.json, "json", false, "output in json mode")
	rootConfig.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "out",
		ShortUsage: "out <0xNN | ch=on ...>",
		ShortHelp:  "Programs the output status register. A 1 turns the output on.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	})
}
