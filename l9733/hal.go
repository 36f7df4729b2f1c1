package l9733

// HAL is the transport used to exchange frames with the device.
type HAL interface {
	// Tx performs one full-duplex exchange: w is clocked out to the device
	// while len(r) bytes are clocked in, with chip select asserted for the
	// whole frame.
	Tx(w, r []byte) error
}
