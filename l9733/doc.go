// Package l9733 is a driver for the ST L9733 octal output driver in Go.
//
// It supports communication over SPI and over USB HID bridge kits.
//
// The L9733 carries three write-only 8 bit configuration registers: output
// status, diagnosis latch mode and overcurrent protection. Every register
// write clocks a 16 bit diagnostic word out of the device on the same frame,
// so each write operation also yields a per-channel fault report.
//
// # Datasheets
//
// Find the device datasheet on the ST product page.
// https://www.st.com/en/automotive-analog-and-power/l9733.html
package l9733
