package l9733

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// halKit speaks the ASCII kit protocol used by USB bench bridges.
//
// Commands are text frames like "L:t(A0FF)\n"; responses carry a status
// byte and a hex payload, "00(FFFF)\n". The bridge owns chip select and
// performs the actual SPI exchange.
type halKit struct {
	phy kitPhy
	buf []byte
	cfg IfaceConfig
}

// kitPhy is the byte stream under the kit protocol, typically a USB HID
// device exchanging fixed size reports.
type kitPhy interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

var errNoDevice = errors.New("l9733: no device found")

// kitID is the device identifier the bridge reports for an L9733 target.
// The first letter doubles as the command prefix.
const kitID = "L9733"

const kitMaxScanCount = 8

func newHALKit(ctx context.Context, phy kitPhy, cfg IfaceConfig) (*halKit, error) {
	buf := make([]byte, cfg.HID.PacketSize)
	kit := &halKit{phy, buf, cfg}
	return kit, kit.init(ctx)
}

func (h *halKit) init(ctx context.Context) error {
	// Iterate to find the target device
	for i := 0; i < kitMaxScanCount; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dev, err := h.getKitDeviceByIndex(i)
		if errors.Is(err, errNoDevice) {
			continue
		} else if err != nil {
			return err
		}

		// Check if the returned device is a device we want to pick
		if h.cfg.HID.DevIndex != 0 && h.cfg.HID.DevIndex != i {
			continue
		}
		if dev.Iface != "SPI" {
			continue
		}

		return h.selectDevice(dev.Address)
	}

	return errors.New("l9733: failed to discover device")
}

// Tx exchanges one frame through the bridge talk command.
func (h *halKit) Tx(w, r []byte) error {
	payload := strings.ToUpper(hex.EncodeToString(w))
	command := fmt.Sprintf("%c:t(%s)\n", kitID[0], payload)

	if _, err := h.phySend([]byte(command)); err != nil {
		return err
	}
	n, err := h.phyRecv(h.buf)
	if err != nil {
		return err
	}

	m, err := kitParseRsp(h.buf[:n], r)
	if err != nil {
		return err
	}
	if m != len(r) {
		return errShortResponse
	}
	return nil
}

func (h *halKit) getKitDeviceByIndex(index int) (kitDevice, error) {
	command := fmt.Sprintf("board:device(%02X)\n", index)
	if _, err := h.phySend([]byte(command)); err != nil {
		return kitDevice{}, err
	}

	if n, err := h.phyRecv(h.buf); err != nil {
		return kitDevice{}, err
	} else {
		return parseKitDevice(h.buf[:n])
	}
}

func (h *halKit) selectDevice(address uint8) error {
	command := fmt.Sprintf("%c:physical:select(%02X)\n", kitID[0], address)
	if _, err := h.phySend([]byte(command)); err != nil {
		return err
	}

	n, err := h.phyRecv(h.buf)
	if err != nil {
		return err
	}
	var data [2]byte
	_, err = kitParseRsp(h.buf[:n], data[:])
	return err
}

type kitDevice struct {
	ID      string
	Iface   string
	Address uint8
}

func parseKitDevice(buf []byte) (kitDevice, error) {
	var (
		id      string
		iface   string
		index   uint8
		address uint8
	)
	if bytes.HasPrefix(buf, []byte("no_device")) {
		return kitDevice{}, errNoDevice
	}
	_, err := fmt.Sscanf(
		string(buf), "%s %s %02X(%02X)", &id, &iface, &index, &address,
	)
	if err != nil {
		return kitDevice{}, fmt.Errorf("l9733: invalid kit device: %w", err)
	}

	if !strings.HasPrefix(id, kitID) {
		return kitDevice{}, errors.New("l9733: unknown kit device id")
	}
	return kitDevice{id, iface, address}, nil
}

// phySend writes the command padded to the physical packet size.
func (h *halKit) phySend(txData []byte) (int, error) {
	left := len(txData)
	sent := 0
	for left > 0 {
		n := copy(h.buf, txData[sent:])
		for ; n < cap(h.buf); n++ {
			h.buf[n] = 0
		}

		n, err := h.phy.Write(h.buf)
		if err != nil {
			return sent, err
		}

		left -= n
		sent += n
	}

	return sent, nil
}

// phyRecv reads packets until the response terminator is seen.
func (h *halKit) phyRecv(data []byte) (int, error) {
	left := len(data)
	read := 0
	for left > 0 {
		n, err := h.phy.Read(h.buf)
		if err != nil {
			return read, err
		}

		// end early on response end
		if index := bytes.IndexByte(h.buf, '\n'); index != -1 {
			copy(data[read:], h.buf[:index]) // ignore return for overflow check below
			read += index
			break
		}

		copy(data[read:], h.buf) // ignore return for overflow check below
		read += n
		left -= n
	}

	// error out to make sure we never lose any data
	if read > cap(data) {
		return read, errors.New("l9733: buffer overflow")
	}

	return read, nil
}

// kitParseRsp validates a kit response and hex-decodes its payload into dst.
func kitParseRsp(reply []byte, dst []byte) (int, error) {
	if len(reply) < 4 {
		return 0, errors.New("l9733: kit response too short")
	}

	var status [1]byte
	n, err := hex.Decode(status[:], reply[0:2])
	if err != nil {
		return 0, err
	} else if err := validateKitStatus(status[:n]); err != nil {
		return 0, err
	}

	index := bytes.IndexByte(reply[3:], ')')
	if index == -1 {
		return 0, errors.New("l9733: failed to find end of frame")
	}
	size := hex.DecodedLen(index)
	if size > cap(dst) {
		return 0, errRecvBuffer
	}

	body := reply[3 : 3+index]
	return hex.Decode(dst, body)
}
