package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/irimescu/go-l9733/l9733"
	"github.com/irimescu/go-l9733/l9733/l9733conf"
	"github.com/peterbourgon/ff/v3/ffcli"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func newL9733(ctx context.Context, c *rootConfig) (*l9733.Dev, io.Closer, error) {
	switch c.iface {
	case "spi":
		return newL9733SPI(ctx, c)
	case "hid":
		return newL9733Kit(ctx, c)
	default:
		return nil, nil, errors.New("l9733: unknown interface")
	}
}

func newL9733SPI(_ context.Context, c *rootConfig) (*l9733.Dev, io.Closer, error) {
	mode, err := getSPIMode(c.mode)
	if err != nil {
		return nil, nil, err
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	port, err := spireg.Open(c.port)
	if err != nil {
		return nil, nil, fmt.Errorf("l9733: failed to open port: %w", err)
	}

	cfg := l9733.ConfigL9733SPIDefault(port)
	cfg.Debug = newLogger(c.verbose)
	cfg.SPI.Mode = mode
	if c.hz != "" {
		if err := cfg.SPI.Freq.Set(c.hz); err != nil {
			port.Close()
			return nil, nil, err
		}
	}

	d, err := l9733.NewSPIDev(cfg)
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	return d, port, nil
}

func newL9733Kit(ctx context.Context, c *rootConfig) (*l9733.Dev, io.Closer, error) {
	cfg := l9733.ConfigL9733KitHIDDefault()
	cfg.Debug = newLogger(c.verbose)
	cfg.HID.DevIndex = c.devIndex

	return l9733.NewKitDev(ctx, cfg)
}

func getSPIMode(mode int) (spi.Mode, error) {
	switch mode {
	case 0:
		return spi.Mode0, nil
	case 1:
		return spi.Mode1, nil
	case 2:
		return spi.Mode2, nil
	case 3:
		return spi.Mode3, nil
	default:
		return 0, errors.New("l9733: spi mode out of range")
	}
}

// parseChannelArgs merges channel assignments into the register byte cur.
//
// A single argument without '=' replaces the whole register with a hex byte.
// Otherwise each argument assigns one channel, eg "3=on" or "7=off".
func parseChannelArgs(args []string, cur uint8) (uint8, error) {
	if len(args) == 0 {
		return 0, errors.New("l9733: no register arguments")
	}

	if len(args) == 1 && !strings.ContainsRune(args[0], '=') {
		v, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 8)
		if err != nil {
			return 0, err
		}
		return uint8(v), nil
	}

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return 0, fmt.Errorf("l9733: invalid channel assignment %q", arg)
		}
		ch, err := strconv.Atoi(name)
		if err != nil {
			return 0, err
		}
		if ch < 1 || ch > l9733conf.NumChannels {
			return 0, fmt.Errorf("l9733: channel %d out of range", ch)
		}

		mask := uint8(1) << (ch - 1)
		switch value {
		case "on", "1":
			cur |= mask
		case "off", "0":
			cur &^= mask
		default:
			return 0, fmt.Errorf("l9733: invalid channel state %q", value)
		}
	}
	return cur, nil
}

const faultReportTemplate = `
Fault report:
{{- range . }}
    output {{ .Channel }}: {{ .Status }}
{{- end }}
`

type faultRow struct {
	Channel int    `json:"channel"`
	Status  string `json:"status"`
}

func faultRows(r l9733.FaultReport) []faultRow {
	rows := make([]faultRow, 0, l9733conf.NumChannels)
	for ch := 1; ch <= l9733conf.NumChannels; ch++ {
		rows = append(rows, faultRow{ch, r.Channel(ch).String()})
	}
	return rows
}

func writeReport(w io.Writer, r l9733.FaultReport, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, faultRows(r))
	}

	t, err := template.New("faults").Parse(faultReportTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, faultRows(r))
}

func writeJSON(w io.Writer, data any) error {
	j, err := json.MarshalIndent(data, "", " ")
	if err != nil {
		return err
	}
	_, err = w.Write(j)
	return err
}

func addLongHelp(cmd *ffcli.Command) *ffcli.Command {
	if cmd.LongHelp == "" {
		cmd.LongHelp = cmd.ShortHelp
	}

	cmd.LongHelp += l9733LongHelp

	return cmd
}

func newLogger(verbose bool) l9733.Logger {
	if verbose {
		return log.New(os.Stderr, "", 0)
	} else {
		return nil
	}
}
