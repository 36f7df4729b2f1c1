package l9733

import (
	"encoding/json"
	"fmt"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
)

// FaultStatus is the diagnostic state of a single output channel.
type FaultStatus uint8

const (
	NoFault FaultStatus = iota
	OpenLoad
	ShortCircuitOvercurrent
)

func (s FaultStatus) String() string {
	switch s {
	case NoFault:
		return "no fault"
	case OpenLoad:
		return "open load"
	case ShortCircuitOvercurrent:
		return "short circuit or overcurrent"
	default:
		return "unknown"
	}
}

func (s FaultStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FaultStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	switch str {
	case "no fault":
		*s = NoFault
	case "open load":
		*s = OpenLoad
	case "short circuit or overcurrent":
		*s = ShortCircuitOvercurrent
	default:
		return fmt.Errorf("l9733: unknown fault status %q", str)
	}
	return nil
}

// FaultReport is the diagnostic snapshot the device shifts out during a
// register write, one status per output channel.
type FaultReport [l9733conf.NumChannels]FaultStatus

// Channel returns the fault status of output ch (1 through 8).
func (r FaultReport) Channel(ch int) FaultStatus {
	if ch < 1 || ch > l9733conf.NumChannels {
		panic("l9733: channel out of range")
	}
	return r[ch-1]
}

// Faulted reports whether any channel reports a fault.
func (r FaultReport) Faulted() bool {
	for _, s := range r {
		if s != NoFault {
			return true
		}
	}
	return false
}

// decodeFaultWord decodes the 16 bit diagnostic word.
//
// The high byte carries the short circuit and overcurrent flags, the low
// byte the open load flags, channel 1 at bit 0 of each byte. A channel with
// both flags raised reports short circuit.
func decodeFaultWord(word uint16) FaultReport {
	var r FaultReport
	oc := uint8(word >> 8)
	ol := uint8(word)
	for i := range r {
		mask := uint8(1) << i
		switch {
		case oc&mask != 0:
			r[i] = ShortCircuitOvercurrent
		case ol&mask != 0:
			r[i] = OpenLoad
		}
	}
	return r
}
