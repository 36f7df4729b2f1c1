// Package l9733conf contains the configuration register layouts of the
// L9733 octal output driver.
//
// Each register is a packed byte with one flag per output channel. Channel 1
// sits at the least significant bit, channel 8 at the most significant.
package l9733conf

import "encoding/json"

// NumChannels is the number of physical output channels on the device.
const NumChannels = 8

// channelMask returns the register mask for channel ch.
//
// Channels are numbered 1 through 8, matching the device pinout. A channel
// outside that range is a programming error.
func channelMask(ch int) uint8 {
	if ch < 1 || ch > NumChannels {
		panic("l9733conf: channel out of range")
	}
	return 1 << (ch - 1)
}

// OutputStatus is the output status register.
//
// Writing a 0 turns the corresponding output off. Writing a 1 turns it on.
type OutputStatus struct {
	// Bits contains one enable flag per channel, channel 1 at bit 0.
	Bits uint8
}

// Channel reports whether output ch is enabled.
func (o OutputStatus) Channel(ch int) bool {
	return o.Bits&channelMask(ch) != 0
}

// SetChannel enables or disables output ch.
func (o *OutputStatus) SetChannel(ch int, on bool) {
	if on {
		o.Bits |= channelMask(ch)
	} else {
		o.Bits &^= channelMask(ch)
	}
}

// Clear turns every output flag off, regardless of the previous value.
func (o *OutputStatus) Clear() { o.Bits = 0x00 }

// SetAll turns every output flag on, regardless of the previous value.
func (o *OutputStatus) SetAll() { o.Bits = 0xff }

type outputStatusBits struct {
	Out1 bool `json:"out_1"`
	Out2 bool `json:"out_2"`
	Out3 bool `json:"out_3"`
	Out4 bool `json:"out_4"`
	Out5 bool `json:"out_5"`
	Out6 bool `json:"out_6"`
	Out7 bool `json:"out_7"`
	Out8 bool `json:"out_8"`
}

func (o OutputStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputStatusBits{
		Out1: o.Channel(1),
		Out2: o.Channel(2),
		Out3: o.Channel(3),
		Out4: o.Channel(4),
		Out5: o.Channel(5),
		Out6: o.Channel(6),
		Out7: o.Channel(7),
		Out8: o.Channel(8),
	})
}

// DiagnosisMode is the diagnosis mode register.
//
// Writing a 0 sets the corresponding output in no latch mode: the fault
// flags follow the live condition. Writing a 1 sets the output in latch
// mode: a fault stays reported until the diagnostic is read back.
type DiagnosisMode struct {
	// Bits contains one latch flag per channel, channel 1 at bit 0.
	Bits uint8
}

// Channel reports whether output ch is in latch mode.
func (d DiagnosisMode) Channel(ch int) bool {
	return d.Bits&channelMask(ch) != 0
}

// SetChannel puts output ch in latch (true) or no latch (false) mode.
func (d *DiagnosisMode) SetChannel(ch int, latch bool) {
	if latch {
		d.Bits |= channelMask(ch)
	} else {
		d.Bits &^= channelMask(ch)
	}
}

// Clear puts every output in no latch mode, regardless of the previous value.
func (d *DiagnosisMode) Clear() { d.Bits = 0x00 }

// SetAll puts every output in latch mode, regardless of the previous value.
func (d *DiagnosisMode) SetAll() { d.Bits = 0xff }

type diagnosisModeBits struct {
	Diagnosis1 bool `json:"diagnosis_1"`
	Diagnosis2 bool `json:"diagnosis_2"`
	Diagnosis3 bool `json:"diagnosis_3"`
	Diagnosis4 bool `json:"diagnosis_4"`
	Diagnosis5 bool `json:"diagnosis_5"`
	Diagnosis6 bool `json:"diagnosis_6"`
	Diagnosis7 bool `json:"diagnosis_7"`
	Diagnosis8 bool `json:"diagnosis_8"`
}

func (d DiagnosisMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(diagnosisModeBits{
		Diagnosis1: d.Channel(1),
		Diagnosis2: d.Channel(2),
		Diagnosis3: d.Channel(3),
		Diagnosis4: d.Channel(4),
		Diagnosis5: d.Channel(5),
		Diagnosis6: d.Channel(6),
		Diagnosis7: d.Channel(7),
		Diagnosis8: d.Channel(8),
	})
}

// OvercurrentProtection is the overcurrent protection register.
//
// Writing a 0 turns the overcurrent protection off on the corresponding
// output. Writing a 1 turns it on.
type OvercurrentProtection struct {
	// Bits contains one protection flag per channel, channel 1 at bit 0.
	Bits uint8
}

// Channel reports whether overcurrent protection is enabled on output ch.
func (p OvercurrentProtection) Channel(ch int) bool {
	return p.Bits&channelMask(ch) != 0
}

// SetChannel enables or disables overcurrent protection on output ch.
func (p *OvercurrentProtection) SetChannel(ch int, on bool) {
	if on {
		p.Bits |= channelMask(ch)
	} else {
		p.Bits &^= channelMask(ch)
	}
}

// Clear disables protection on every output, regardless of the previous value.
func (p *OvercurrentProtection) Clear() { p.Bits = 0x00 }

// SetAll enables protection on every output, regardless of the previous value.
func (p *OvercurrentProtection) SetAll() { p.Bits = 0xff }

type overcurrentProtectionBits struct {
	Ilim1 bool `json:"ilim_1"`
	Ilim2 bool `json:"ilim_2"`
	Ilim3 bool `json:"ilim_3"`
	Ilim4 bool `json:"ilim_4"`
	Ilim5 bool `json:"ilim_5"`
	Ilim6 bool `json:"ilim_6"`
	Ilim7 bool `json:"ilim_7"`
	Ilim8 bool `json:"ilim_8"`
}

func (p OvercurrentProtection) MarshalJSON() ([]byte, error) {
	return json.Marshal(overcurrentProtectionBits{
		Ilim1: p.Channel(1),
		Ilim2: p.Channel(2),
		Ilim3: p.Channel(3),
		Ilim4: p.Channel(4),
		Ilim5: p.Channel(5),
		Ilim6: p.Channel(6),
		Ilim7: p.Channel(7),
		Ilim8: p.Channel(8),
	})
}
