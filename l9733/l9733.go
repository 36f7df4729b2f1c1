package l9733

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/irimescu/go-l9733/l9733/l9733conf"
)

// Dev is a handle to a L9733 device.
//
// The three configuration registers are write-only in hardware. Dev keeps a
// shadow copy of the last value written to each so callers can flip single
// channels and resample diagnostics without tracking register state
// themselves. The shadow copies start at the power-on reset value of the
// device, all zero.
type Dev struct {
	mu  sync.Mutex
	hal HAL
	cfg IfaceConfig
	enc frameEncoder
	log Logger

	out  l9733conf.OutputStatus
	diag l9733conf.DiagnosisMode
	prot l9733conf.OvercurrentProtection
}

// New returns a new L9733 device using the supplied HAL for communication.
func New(hal HAL, cfg IfaceConfig) *Dev {
	d := &Dev{
		hal: hal,
		cfg: cfg,
		log: getLogger(cfg),
	}
	d.hal = &halDebug{"l9733", getLogger(cfg), d.hal}
	return d
}

// WriteOutputStatus programs the output status register.
//
// It returns the fault snapshot taken by the device at the time of this
// write. Device-reported faults are data, not errors: the call fails only
// when the transport does.
func (d *Dev) WriteOutputStatus(ctx context.Context, c l9733conf.OutputStatus) (FaultReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.exchange(ctx, newOutputFrame(c))
	if err != nil {
		return FaultReport{}, err
	}
	d.out = c
	return report, nil
}

// WriteDiagnosisMode programs per-channel latch or no latch fault reporting.
//
// It returns the fault snapshot taken by the device at the time of this
// write.
func (d *Dev) WriteDiagnosisMode(ctx context.Context, c l9733conf.DiagnosisMode) (FaultReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.exchange(ctx, newDiagnosisFrame(c))
	if err != nil {
		return FaultReport{}, err
	}
	d.diag = c
	return report, nil
}

// WriteOvercurrentProtection programs the per-channel overcurrent protection
// enable.
//
// It returns the fault snapshot taken by the device at the time of this
// write.
func (d *Dev) WriteOvercurrentProtection(ctx context.Context, c l9733conf.OvercurrentProtection) (FaultReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	report, err := d.exchange(ctx, newProtectionFrame(c))
	if err != nil {
		return FaultReport{}, err
	}
	d.prot = c
	return report, nil
}

// Faults resamples the per-channel diagnostics.
//
// The device reports status only while a register write is clocked through,
// so this re-writes the shadow copy of the output status register. The write
// does not change device state.
func (d *Dev) Faults(ctx context.Context) (FaultReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exchange(ctx, newOutputFrame(d.out))
}

// SetOutput switches a single output channel, leaving the other channels as
// last written.
func (d *Dev) SetOutput(ctx context.Context, ch int, on bool) (FaultReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.out
	c.SetChannel(ch, on)
	report, err := d.exchange(ctx, newOutputFrame(c))
	if err != nil {
		return FaultReport{}, err
	}
	d.out = c
	return report, nil
}

// Outputs returns the shadow copy of the output status register.
func (d *Dev) Outputs() l9733conf.OutputStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.out
}

// DiagnosisMode returns the shadow copy of the diagnosis mode register.
func (d *Dev) DiagnosisMode() l9733conf.DiagnosisMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.diag
}

// OvercurrentProtection returns the shadow copy of the overcurrent
// protection register.
func (d *Dev) OvercurrentProtection() l9733conf.OvercurrentProtection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prot
}

// exchange performs one register write and decodes the diagnostic word the
// device shifts out on the same frame.
//
// Transient transport errors are re-transmitted per the interface
// configuration. Callers must hold d.mu: the bus carries one transaction at
// a time.
func (d *Dev) exchange(ctx context.Context, f frame) (FaultReport, error) {
	w := d.enc.Encode(f)
	r := make([]byte, frameSize)

	var err error
	for i := -1; i < d.cfg.TxRetries; i++ {
		if i >= 0 {
			select {
			case <-ctx.Done():
				return FaultReport{}, ctx.Err()
			case <-time.After(d.cfg.TxDelay):
			}
		}

		if err = d.hal.Tx(w, r); err == nil {
			break
		} else if !retryable(err) {
			return FaultReport{}, err
		}
		d.log.Printf("write %s: retrying: %v", f.reg, err)
	}
	if err != nil {
		return FaultReport{}, err
	}

	return decodeFaultWord(binary.BigEndian.Uint16(r)), nil
}

// retryable reports whether an exchange error is worth re-transmitting.
//
// Kit status errors describe a command the bridge could not run and will
// fail the same way again, except for the communication class which is
// transient.
func retryable(err error) bool {
	switch {
	case errors.Is(err, errKitParse),
		errors.Is(err, errKitExecution),
		errors.Is(err, errKitUnknown):
		return false
	default:
		return true
	}
}
