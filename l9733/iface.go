package l9733

import (
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

type IfaceType int

const (
	IfaceSPI IfaceType = iota
	IfaceHID
)

// IfaceConfig is the configuration object for a device.
//
// Logical device configurations describe the physical interface and how
// failed exchanges are retried.
type IfaceConfig struct {
	// IfaceType affects how communication with the device is done.
	IfaceType IfaceType
	// SPI contains SPI specific configuration.
	SPI SPIConfig
	// HID contains HID specific configuration.
	HID HIDConfig
	// TxDelay defines the time to wait before re-transmitting a frame.
	TxDelay time.Duration
	// TxRetries is the number of retries to attempt for one exchange.
	TxRetries int
	// Debug is used for debug output.
	Debug Logger
}

type SPIConfig struct {
	// Port is the SPI port the device chip select is wired to.
	Port spi.Port
	// Freq is the bus clock frequency.
	Freq physic.Frequency
	// Mode is the SPI clock mode.
	Mode spi.Mode
}

type HIDConfig struct {
	// DevIndex is the HID enumeration index to use.
	DevIndex int

	// VendorID of the kit.
	VendorID uint16

	// ProductID of the kit.
	ProductID uint16

	// PacketSize is the size of the USB packet.
	PacketSize int
}

// ConfigL9733SPIDefault returns a default config for a direct SPI hookup.
//
// The device input stage is rated well above 1 MHz, which keeps one frame
// comfortably inside the chip select window on slow hosts.
func ConfigL9733SPIDefault(port spi.Port) IfaceConfig {
	return IfaceConfig{
		IfaceType: IfaceSPI,
		TxDelay:   200 * time.Microsecond,
		TxRetries: 5,
		SPI: SPIConfig{
			Port: port,
			Freq: physic.MegaHertz,
			Mode: spi.Mode1,
		},
	}
}

const (
	vendorST = 0x0483

	productEvalKit = 0x5740
)

// ConfigL9733KitHIDDefault returns a configuration for the kit protocol.
func ConfigL9733KitHIDDefault() IfaceConfig {
	return IfaceConfig{
		IfaceType: IfaceHID,
		TxDelay:   time.Millisecond,
		TxRetries: 5,
		HID: HIDConfig{
			DevIndex:   0,
			VendorID:   vendorST,
			ProductID:  productEvalKit,
			PacketSize: 64,
		},
	}
}
