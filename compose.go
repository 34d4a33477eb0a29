package jdxi

import "fmt"

// Message is a fully framed JD-Xi SysEx message, immutable once built.
type Message struct {
	Command byte
	Address Address
	Data    []byte

	raw []byte
}

// Bytes returns the complete frame, F0 through F7.
func (m *Message) Bytes() []byte {
	out := make([]byte, len(m.raw))
	copy(out, m.raw)
	return out
}

// Hex renders the frame as space-separated hex bytes.
func (m *Message) Hex() string {
	return fmt.Sprintf("% X", m.raw)
}

// Checksum returns the checksum byte of the frame.
func (m *Message) Checksum() byte {
	return m.raw[len(m.raw)-2]
}

// Composer builds DT1 writes and RQ1 requests against a registry set.
type Composer struct {
	registries *RegistrySet
	deviceID   byte
}

// NewComposer returns a composer targeting the default device id.
func NewComposer(rs *RegistrySet) *Composer {
	return &Composer{registries: rs, deviceID: DefaultDeviceID}
}

// SetDeviceID overrides the device id byte placed in composed frames.
func (c *Composer) SetDeviceID(id byte) {
	c.deviceID = id
}

// ComposeSet builds the DT1 frame that writes one parameter value.
//
// base selects the temporary area; the parameter is resolved by name among
// the families reachable from it. partial selects the digital partial (1-3)
// or drum key (1-36) for families that need one, and is 0 otherwise.
func (c *Composer) ComposeSet(base Address, name string, display int, partial int) (*Message, error) {
	p, err := c.resolveParam(base, name)
	if err != nil {
		return nil, err
	}

	raw, err := p.ToMIDI(display)
	if err != nil {
		return nil, err
	}

	addr, err := c.resolveAddress(base, p, partial)
	if err != nil {
		return nil, err
	}

	data := encodeValue(p, raw)
	return c.finish(CmdDT1, addr, data)
}

// ComposeGet builds the RQ1 frame requesting one parameter's current value.
func (c *Composer) ComposeGet(base Address, name string, partial int) (*Message, error) {
	p, err := c.resolveParam(base, name)
	if err != nil {
		return nil, err
	}
	addr, err := c.resolveAddress(base, p, partial)
	if err != nil {
		return nil, err
	}
	return c.ComposeRequest(addr, uint32(p.Size))
}

// ComposeRequest builds an RQ1 frame asking the device to transmit size
// bytes starting at addr. The size travels as four 7-bit groups.
func (c *Composer) ComposeRequest(addr Address, size uint32) (*Message, error) {
	if size == 0 || size > 0x0FFFFFFF {
		return nil, fmt.Errorf("request size %d: %w", size, ErrValueOutOfRange)
	}
	enc := EncodeRoland7Bit(size)
	return c.finish(CmdRQ1, addr, enc[:])
}

// ComposeBlockRequest builds the RQ1 frame requesting a whole tone block:
// the common block of the area, or one partial's block when the family
// needs a selector.
func (c *Composer) ComposeBlockRequest(base Address, family Family, partial int, size uint32) (*Message, error) {
	lmb := blockOffset(family)
	if requiresPartial(family) {
		if partial == 0 {
			return nil, fmt.Errorf("%s needs a partial selector: %w", family, ErrAddressResolution)
		}
		stride, err := PartialOffset(family, partial)
		if err != nil {
			return nil, err
		}
		lmb += stride
	}
	addr, err := base.Offset(0, 0, lmb, 0)
	if err != nil {
		return nil, err
	}
	return c.ComposeRequest(addr, size)
}

// resolveParam finds the descriptor among the families reachable from the
// base address.
func (c *Composer) resolveParam(base Address, name string) (*Param, error) {
	area := AreaOf(base)
	families, ok := areaFamilies[area]
	if !ok {
		return nil, fmt.Errorf("no parameter families at %s: %w", base.Hex(), ErrUnknownParameter)
	}
	for _, f := range families {
		if p, found := c.registries.Family(f).ByName(name); found {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%q not registered under %s: %w", name, area, ErrUnknownParameter)
}

// resolveAddress applies the family block offset, the partial stride and
// the parameter's byte offset to the area base.
func (c *Composer) resolveAddress(base Address, p *Param, partial int) (Address, error) {
	lmb := blockOffset(p.Family)
	if requiresPartial(p.Family) {
		if partial == 0 {
			return Address{}, fmt.Errorf("%s needs a partial selector: %w", p.Family, ErrAddressResolution)
		}
		stride, err := PartialOffset(p.Family, partial)
		if err != nil {
			return Address{}, err
		}
		lmb += stride
	}
	return base.Offset(0, 0, lmb, p.Offset)
}

// encodeValue encodes a raw value into the parameter's payload bytes:
// four nibbles for 4-byte parameters, otherwise a single 7-bit-safe byte.
func encodeValue(p *Param, raw int) []byte {
	if p.Size == 4 {
		n := Split16(uint16(raw))
		return n[:]
	}
	return NibbleData([]byte{byte(raw)})
}

// finish assembles and self-checks the frame before handing it back.
func (c *Composer) finish(cmd byte, addr Address, data []byte) (*Message, error) {
	body := make([]byte, 0, 4+len(data))
	body = append(body, addr[:]...)
	body = append(body, data...)

	raw := make([]byte, 0, minFrameLen+len(data))
	raw = append(raw, SysExStart, ManufacturerRoland, c.deviceID)
	raw = append(raw, ModelID[:]...)
	raw = append(raw, cmd)
	raw = append(raw, body...)
	raw = append(raw, Checksum(body), SysExEnd)

	if !ValidateFrame(raw) || !hasJDXiHeader(raw) {
		return nil, fmt.Errorf("assembled frame failed self-check: %w", ErrHeaderMismatch)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return &Message{Command: cmd, Address: addr, Data: out, raw: raw}, nil
}
