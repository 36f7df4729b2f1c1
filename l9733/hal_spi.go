package l9733

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
)

// NewSPIDev returns a device that communicates over an SPI port.
//
// The port stays owned by the caller and must outlive the device.
func NewSPIDev(cfg IfaceConfig) (*Dev, error) {
	conn, err := cfg.SPI.Port.Connect(cfg.SPI.Freq, cfg.SPI.Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("l9733: failed to connect to port: %w", err)
	}
	return New(&halSPI{conn}, cfg), nil
}

type halSPI struct {
	conn spi.Conn
}

func (h *halSPI) Tx(w, r []byte) error {
	return h.conn.Tx(w, r)
}
