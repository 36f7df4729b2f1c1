package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type protectConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	json       bool
}

func (c *protectConfig) Exec(ctx context.Context, args []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintf(c.err, "protect\n")
	}

	d, closer, err := newL9733(ctx, c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	bits, err := parseChannelArgs(args, d.OvercurrentProtection().Bits)
	if err != nil {
		return err
	}

	report, err := d.WriteOvercurrentProtection(ctx, l9733conf.OvercurrentProtection{Bits: bits})
	if err != nil {
		return err
	}

	return writeReport(c.out, report, c.json)
}

func newProtectCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := protectConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("l9733 protect", flag.ExitOnError)
	fs.BoolVar(&cfg.json, "json", false, "output in json mode")
	rootConfig.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "protect",
		ShortUsage: "protect <0xNN | ch=on ...>",
		ShortHelp:  "Programs the overcurrent protection register. A 1 enables protection.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	})
}
