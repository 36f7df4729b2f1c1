package l9733

import (
	"fmt"
	"testing"
)

func TestHexDump(t *testing.T) {
	want := "h -> \n00000000  a0 55                                             " +
		"|.U|\n\n <- h"
	got := fmt.Sprintf("h -> %s <- h", hexDump([]byte{0xa0, 0x55}))
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestGetLogger(t *testing.T) {
	if getLogger(IfaceConfig{}) != nullLogger {
		t.Error("nil debug logger not replaced with null logger")
	}
}
