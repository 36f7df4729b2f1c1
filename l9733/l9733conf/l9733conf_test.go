package l9733conf

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
)

// bitfield is the common surface of the three register types.
type bitfield interface {
	Channel(ch int) bool
	SetChannel(ch int, on bool)
	Clear()
	SetAll()
}

func TestChannelBitOrder(t *testing.T) {
	fields := map[string]bitfield{
		"output":     &OutputStatus{},
		"diagnosis":  &DiagnosisMode{},
		"protection": &OvercurrentProtection{},
	}

	for name, f := range fields {
		t.Run(name, func(t *testing.T) {
			for ch := 1; ch <= NumChannels; ch++ {
				f.Clear()
				f.SetChannel(ch, true)
				if !f.Channel(ch) {
					t.Errorf("channel %d not set", ch)
				}

				want := uint8(1) << (ch - 1)
				if got := bitsOf(f); got != want {
					t.Errorf("channel %d: got bits %#02x, want %#02x", ch, got, want)
				}

				f.SetChannel(ch, false)
				if got := bitsOf(f); got != 0 {
					t.Errorf("channel %d: clear left bits %#02x", ch, got)
				}
			}
		})
	}
}

func TestClearSetAll(t *testing.T) {
	// Neither bulk operation may depend on the initial value.
	initials := []uint8{0x00, 0x55, 0xaa, 0xff}

	for _, init := range initials {
		t.Run(strconv.FormatUint(uint64(init), 16), func(t *testing.T) {
			fields := []bitfield{
				&OutputStatus{Bits: init},
				&DiagnosisMode{Bits: init},
				&OvercurrentProtection{Bits: init},
			}
			for _, f := range fields {
				f.SetAll()
				if got := bitsOf(f); got != 0xff {
					t.Errorf("%T: SetAll got %#02x, want 0xff", f, got)
				}
				f.Clear()
				if got := bitsOf(f); got != 0x00 {
					t.Errorf("%T: Clear got %#02x, want 0x00", f, got)
				}
			}
		})
	}
}

func TestOutputStatusAlternating(t *testing.T) {
	var o OutputStatus
	for _, ch := range []int{1, 3, 5, 7} {
		o.SetChannel(ch, true)
	}
	if o.Bits != 0x55 {
		t.Errorf("got %#02x, want 0x55", o.Bits)
	}

	o.Clear()
	if o.Bits != 0x00 {
		t.Errorf("Clear: got %#02x, want 0x00", o.Bits)
	}
	o.SetAll()
	if o.Bits != 0xff {
		t.Errorf("SetAll: got %#02x, want 0xff", o.Bits)
	}
}

func TestChannelOutOfRangePanics(t *testing.T) {
	for _, ch := range []int{0, 9, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("channel %d: no panic", ch)
				}
			}()
			var o OutputStatus
			o.Channel(ch)
		}()
	}
}

func TestMarshalJSON(t *testing.T) {
	testCases := []struct {
		name string
		v    interface{ MarshalJSON() ([]byte, error) }
		want string
	}{
		{
			"output", OutputStatus{Bits: 0x05},
			`{"out_1":true,"out_2":false,"out_3":true,"out_4":false,` +
				`"out_5":false,"out_6":false,"out_7":false,"out_8":false}`,
		},
		{
			"diagnosis", DiagnosisMode{Bits: 0x80},
			`{"diagnosis_1":false,"diagnosis_2":false,"diagnosis_3":false,` +
				`"diagnosis_4":false,"diagnosis_5":false,"diagnosis_6":false,` +
				`"diagnosis_7":false,"diagnosis_8":true}`,
		},
		{
			"protection", OvercurrentProtection{Bits: 0xff},
			`{"ilim_1":true,"ilim_2":true,"ilim_3":true,"ilim_4":true,` +
				`"ilim_5":true,"ilim_6":true,"ilim_7":true,"ilim_8":true}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.v)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(string(b)); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func bitsOf(f bitfield) uint8 {
	switch f := f.(type) {
	case *OutputStatus:
		return f.Bits
	case *DiagnosisMode:
		return f.Bits
	case *OvercurrentProtection:
		return f.Bits
	default:
		panic("unknown bitfield type")
	}
}
