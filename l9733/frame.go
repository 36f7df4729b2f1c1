package l9733

import (
	"encoding/binary"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
)

// frameSize is the size of one transaction in bytes. Every exchange clocks
// a 16 bit command word in and a 16 bit diagnostic word out.
const frameSize = 2

// frame represents one L9733 command word.
type frame struct {
	reg  register
	data uint8
}

func newOutputFrame(c l9733conf.OutputStatus) frame {
	return frame{regOutput, c.Bits}
}

func newDiagnosisFrame(c l9733conf.DiagnosisMode) frame {
	return frame{regDiagnosis, c.Bits}
}

func newProtectionFrame(c l9733conf.OvercurrentProtection) frame {
	return frame{regProtection, c.Bits}
}

// frameEncoder encodes command words.
type frameEncoder struct {
}

// Encode packs the frame into its on-wire form, most significant byte first:
// key nibble, register address nibble, then the register data.
func (e *frameEncoder) Encode(f frame) []byte {
	word := uint16(writeKey)<<12 | uint16(f.reg)<<8 | uint16(f.data)
	b := make([]byte, frameSize)
	binary.BigEndian.PutUint16(b, word)
	return b
}
