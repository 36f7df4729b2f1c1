package main

import (
	"context"
	"flag"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type rootConfig struct {
	verbose  bool
	iface    string
	port     string
	hz       string
	mode     int
	devIndex int
}

func (c *rootConfig) registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "increase log verbosity")
	fs.StringVar(&c.iface, "i", "spi", "interface type, spi or hid")
	fs.StringVar(&c.port, "port", "", "spi port to use, empty for the first available")
	fs.StringVar(&c.hz, "hz", "", "spi clock frequency, eg 1MHz")
	fs.IntVar(&c.mode, "mode", 1, "spi clock mode, 0 to 3")
	fs.IntVar(&c.devIndex, "dev-index", 0, "device index when enumerating hid kits")
}

func (c *rootConfig) Exec(context.Context, []string) error {
	return flag.ErrHelp
}

func newRootCmd() (*ffcli.Command, *rootConfig) {
	var cfg rootConfig

	fs := flag.NewFlagSet("l9733", flag.ExitOnError)
	cfg.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "l9733",
		ShortUsage: "l9733 [flags] <subcommand>",
		ShortHelp:  "Utilities to program and diagnose the L9733 octal output driver.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}), &cfg
}

var l9733LongHelp = `

GENERAL
Register arguments accept either a single register byte in hex (eg 0x55,
channel 1 at bit 0) or a list of per-channel assignments (eg 1=on 5=off).
Channels not named keep the value last written in this invocation, starting
from the power-on default (all off).

The device reports fault status alongside every register write, so each
subcommand prints a fault report.`
