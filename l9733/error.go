package l9733

import (
	"errors"
)

// Kit protocol status errors.
//
// The status byte is the first field of every kit response and reports how
// the bridge handled the command.
var (
	// errKitParse is used when the bridge did not understand the command.
	errKitParse = errors.New("l9733: kit protocol error")

	errKitExecution = errors.New("l9733: kit execution error")

	// errKitComm is used for a bus level failure between bridge and device.
	//
	// This is a transient error and the command should be re-transmitted.
	errKitComm = errors.New("l9733: kit communication error")

	errKitUnknown = errors.New("l9733: unknown kit error")
)

// validateKitStatus validates the status code returned by the kit protocol.
func validateKitStatus(status []byte) error {
	if len(status) == 0 {
		return errors.New("l9733: empty response")
	}

	switch status[0] {
	case 0x00:
		return nil
	case 0x03:
		return errKitParse
	case 0x0f:
		return errKitExecution
	case 0xff:
		return errKitComm
	default:
		return errKitUnknown
	}
}

// Package errors.
var (
	errRecvBuffer    = errors.New("l9733: recv buffer too small")
	errShortResponse = errors.New("l9733: short diagnostic response")
)
