package l9733

// writeKey is the fixed key nibble carried in bits 15..12 of every command
// word. The device ignores frames whose key does not match.
const writeKey = 0xa

// register selects one of the three configuration registers.
type register uint8

// Configuration register addresses, carried in bits 11..8 of a command word.
const (
	regOutput     register = 0x0 // output status register
	regDiagnosis  register = 0x1 // diagnosis mode register
	regProtection register = 0x2 // overcurrent protection register
)

func (r register) String() string {
	switch r {
	case regOutput:
		return "output"
	case regDiagnosis:
		return "diagnosis"
	case regProtection:
		return "protection"
	default:
		return "unknown"
	}
}
