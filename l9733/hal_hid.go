package l9733

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/karalabe/usb"
)

// ErrUSBNotSupported is returned when the USB support is missing.
//
// When building, CGO is required for USB support. If CGO is not enabled, the
// HID interface will not be available.
var ErrUSBNotSupported = errors.New("l9733: usb support is missing")

// NewKitDev returns a device that communicates through a USB HID bridge
// speaking the kit protocol.
func NewKitDev(ctx context.Context, cfg IfaceConfig) (*Dev, io.Closer, error) {
	if !usb.Supported() {
		return nil, nil, ErrUSBNotSupported
	}

	deviceInfos, err := usb.EnumerateHid(cfg.HID.VendorID, cfg.HID.ProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("l9733: failed to get hid devices: %w", err)
	}
	for _, di := range deviceInfos {
		hid, e := di.Open()
		if e != nil {
			err = e
			continue
		}

		hal, err := newHALKit(ctx, &halHID{hid}, cfg)
		if err != nil {
			hid.Close()
			return nil, nil, err
		}
		return New(hal, cfg), hid, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("l9733: %w", err)
	} else {
		return nil, nil, errors.New("l9733: no hid devices found")
	}
}

type halHID struct {
	usb usb.Device
}

func (h *halHID) Write(p []byte) (int, error) {
	return h.usb.Write(p)
}

func (h *halHID) Read(p []byte) (int, error) {
	return h.usb.Read(p)
}
