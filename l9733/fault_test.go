package l9733

import (
	"encoding/json"
	"strconv"
	"testing"
)

func TestDecodeFaultWord(t *testing.T) {
	testCases := []struct {
		word uint16
		want FaultReport
	}{
		{0x0000, FaultReport{}},
		{
			// open load on channel 2 only
			0x0002,
			FaultReport{NoFault, OpenLoad},
		},
		{
			// short circuit on channel 8 only
			0x8000,
			FaultReport{7: ShortCircuitOvercurrent},
		},
		{
			// both flags raised on channel 1: short circuit wins
			0x0101,
			FaultReport{ShortCircuitOvercurrent},
		},
		{
			// open load on odd channels, short circuit on even
			0xaa55,
			FaultReport{
				OpenLoad, ShortCircuitOvercurrent,
				OpenLoad, ShortCircuitOvercurrent,
				OpenLoad, ShortCircuitOvercurrent,
				OpenLoad, ShortCircuitOvercurrent,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(strconv.FormatUint(uint64(tc.word), 16), func(t *testing.T) {
			if got := decodeFaultWord(tc.word); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFaultReportChannel(t *testing.T) {
	r := decodeFaultWord(0x0002)
	if got := r.Channel(2); got != OpenLoad {
		t.Errorf("got %v, want %v", got, OpenLoad)
	}
	for _, ch := range []int{1, 3, 4, 5, 6, 7, 8} {
		if got := r.Channel(ch); got != NoFault {
			t.Errorf("channel %d: got %v, want %v", ch, got, NoFault)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("channel 0: no panic")
		}
	}()
	r.Channel(0)
}

func TestFaultReportFaulted(t *testing.T) {
	if (FaultReport{}).Faulted() {
		t.Error("empty report reports faulted")
	}
	if !decodeFaultWord(0x0080).Faulted() {
		t.Error("open load report not faulted")
	}
}

func TestFaultReportJSONRoundTrip(t *testing.T) {
	// Channel 2 open load, everything else clean. The round trip must not
	// alter the non-faulted channels.
	in := FaultReport{NoFault, OpenLoad}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out FaultReport
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %v, want %v", out, in)
	}
}

func TestFaultStatusString(t *testing.T) {
	testCases := []struct {
		s    FaultStatus
		want string
	}{
		{NoFault, "no fault"},
		{OpenLoad, "open load"},
		{ShortCircuitOvercurrent, "short circuit or overcurrent"},
		{FaultStatus(99), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
