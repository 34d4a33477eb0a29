package jdxi

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Device wires the byte-level core to a MIDI output port. All protocol work
// stays in the pure core; Device only moves buffers and waits for replies.
type Device struct {
	out        drivers.Out
	registries *RegistrySet
	composer   *Composer
	parser     *Parser
}

// ReplyTimeout bounds how long request calls wait for the JD-Xi to answer.
const ReplyTimeout = 5 * time.Second

// OpenDevice opens the MIDI output with the given port index and returns
// the device together with a closer for the port and driver.
func OpenDevice(deviceID byte, portIndex int) (*Device, func(), error) {
	outs, err := drivers.Outs()
	if err != nil {
		return nil, nil, err
	}

	if portIndex < 0 || portIndex >= len(outs) {
		return nil, nil, fmt.Errorf("output port index %d out of range", portIndex)
	}

	out := outs[portIndex]
	if err := out.Open(); err != nil {
		return nil, nil, err
	}

	closer := func() {
		_ = out.Close()
		drivers.Close()
	}

	rs := NewRegistrySet()
	composer := NewComposer(rs)
	composer.SetDeviceID(deviceID)

	log.Println("Opened JD-Xi MIDI output port", out.String())
	return &Device{
		out:        out,
		registries: rs,
		composer:   composer,
		parser:     NewParser(rs),
	}, closer, nil
}

// Registries exposes the registry set the device was built with.
func (d *Device) Registries() *RegistrySet {
	return d.registries
}

// Composer exposes the composer bound to the device id.
func (d *Device) Composer() *Composer {
	return d.composer
}

// Send transmits a MIDI message to the output port.
func (d *Device) Send(msg midi.Message) error {
	if !d.out.IsOpen() {
		if err := d.out.Open(); err != nil {
			return err
		}
	}
	return d.out.Send(msg.Bytes())
}

// SendSysEx transmits a raw SysEx frame.
func (d *Device) SendSysEx(data []byte) error {
	return d.Send(midi.Message(data))
}

// SetParameter composes and sends a single DT1 parameter write.
func (d *Device) SetParameter(base Address, name string, display int, partial int) error {
	msg, err := d.composer.ComposeSet(base, name, display, partial)
	if err != nil {
		return err
	}
	if err := d.SendSysEx(msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send %s write: %w", name, err)
	}
	return nil
}

// RequestBlockDump sends an RQ1 for a tone block and waits for the DT1
// reply, returning its decoded tone data.
func (d *Device) RequestBlockDump(in drivers.In, base Address, family Family, partial int, size uint32) (*ToneData, error) {
	req, err := d.composer.ComposeBlockRequest(base, family, partial, size)
	if err != nil {
		return nil, err
	}

	reply, err := d.roundTrip(in, req.Bytes())
	if err != nil {
		return nil, err
	}
	return d.parser.Parse(reply)
}

// RequestIdentity broadcasts a Universal Identity Request and decodes the
// reply.
func (d *Device) RequestIdentity(in drivers.In) (*IdentityReply, error) {
	reply, err := d.roundTrip(in, IdentityRequest())
	if err != nil {
		return nil, err
	}
	return ParseIdentity(reply)
}

// roundTrip sends a request and waits for the next inbound SysEx frame.
func (d *Device) roundTrip(in drivers.In, request []byte) ([]byte, error) {
	msgCh := make(chan midi.Message, 1)

	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if len(msg) > 0 && msg[0] == SysExStart {
			select {
			case msgCh <- msg:
			default:
			}
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(2048))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for reply: %w", err)
	}
	defer stop()

	if err := d.SendSysEx(request); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	select {
	case msg := <-msgCh:
		return []byte(msg), nil
	case <-time.After(ReplyTimeout):
		log.Println("Timed out waiting for reply")
	}

	return nil, errors.New("timed out waiting for reply")
}
