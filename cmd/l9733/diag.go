package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type diagConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	json       bool
}

func (c *diagConfig) Exec(ctx context.Context, args []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintf(c.err, "diag\n")
	}

	d, closer, err := newL9733(ctx, c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	bits, err := parseChannelArgs(args, d.DiagnosisMode().Bits)
	if err != nil {
		return err
	}

	report, err := d.WriteDiagnosisMode(ctx, l9733conf.DiagnosisMode{Bits: bits})
	if err != nil {
		return err
	}

	return writeReport(c.out, report, c.json)
}

func newDiagCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := diagConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("l9733 diag", flag.ExitOnError)
	fs.BoolVar(&cfg.json, "json", false, "output in json mode")
	rootConfig.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "diag",
		ShortUsage: "diag <0xNN | ch=on ...>",
		ShortHelp:  "Programs the diagnosis mode register. A 1 latches faults until read.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	})
}
