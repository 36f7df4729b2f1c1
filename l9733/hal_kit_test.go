package l9733

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseKitDevice(t *testing.T) {
	buf := []byte("L9733 SPI 00(00)")

	dev, err := parseKitDevice(buf)
	if err != nil {
		t.Fatal(err)
	}
	if dev.ID != "L9733" {
		t.Errorf("%q != %q", dev.ID, "L9733")
	}
	if dev.Iface != "SPI" {
		t.Errorf("%q != %q", dev.Iface, "SPI")
	}
	if dev.Address != 0x00 {
		t.Errorf("x%02x != x00", dev.Address)
	}
}

func TestParseKitDeviceErrors(t *testing.T) {
	if _, err := parseKitDevice([]byte("no_device")); !errors.Is(err, errNoDevice) {
		t.Errorf("got %v, want %v", err, errNoDevice)
	}
	if _, err := parseKitDevice([]byte("ECC608B TWI 00(6C)")); err == nil {
		t.Error("foreign kit id accepted")
	}
}

func TestKitParseRsp(t *testing.T) {
	var dst [2]byte
	n, err := kitParseRsp([]byte("00(A0FF)"), dst[:])
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || !bytes.Equal(dst[:], []byte{0xa0, 0xff}) {
		t.Errorf("got % x (%d), want a0 ff (2)", dst[:n], n)
	}

	if _, err := kitParseRsp([]byte("03()"), dst[:]); !errors.Is(err, errKitParse) {
		t.Errorf("got %v, want %v", err, errKitParse)
	}
	if _, err := kitParseRsp([]byte("00(A0FF"), dst[:]); err == nil {
		t.Error("unterminated frame accepted")
	}
	var small [1]byte
	if _, err := kitParseRsp([]byte("00(A0FF)"), small[:]); !errors.Is(err, errRecvBuffer) {
		t.Errorf("got %v, want %v", err, errRecvBuffer)
	}
}

// fakeKitPhy replays canned kit responses padded to the packet size.
type fakeKitPhy struct {
	pktSize int
	reads   []string
	writes  []string
}

func (f *fakeKitPhy) Write(p []byte) (int, error) {
	end := bytes.IndexByte(p, 0)
	if end == -1 {
		end = len(p)
	}
	f.writes = append(f.writes, string(p[:end]))
	return len(p), nil
}

func (f *fakeKitPhy) Read(p []byte) (int, error) {
	if len(f.reads) == 0 {
		return 0, errors.New("no scripted response")
	}
	rsp := f.reads[0]
	f.reads = f.reads[1:]

	buf := make([]byte, f.pktSize)
	copy(buf, rsp)
	return copy(p, buf), nil
}

func TestHALKitTx(t *testing.T) {
	phy := &fakeKitPhy{
		pktSize: 64,
		reads: []string{
			"L9733 SPI 00(00)\n", // board:device(00)
			"00()\n",             // physical:select
			"00(00FF)\n",         // talk
		},
	}
	cfg := ConfigL9733KitHIDDefault()

	kit, err := newHALKit(context.Background(), phy, cfg)
	if err != nil {
		t.Fatal(err)
	}

	var r [2]byte
	if err := kit.Tx([]byte{0xa0, 0x55}, r[:]); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r[:], []byte{0x00, 0xff}) {
		t.Errorf("got % x, want 00 ff", r)
	}

	wantWrites := []string{
		"board:device(00)\n",
		"L:physical:select(00)\n",
		"L:t(A055)\n",
	}
	if len(phy.writes) != len(wantWrites) {
		t.Fatalf("got %d writes, want %d: %q", len(phy.writes), len(wantWrites), phy.writes)
	}
	for i, want := range wantWrites {
		if !strings.HasPrefix(phy.writes[i], want) {
			t.Errorf("write %d: got %q, want prefix %q", i, phy.writes[i], want)
		}
	}
}
