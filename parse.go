package jdxi

import (
	"fmt"
	"strings"
)

// ToneData is the structured result of decoding one DT1 reply. It is
// created per message and handed to the caller; the parser keeps nothing.
type ToneData struct {
	Area    Area
	Tone    Tone
	DrumKey int // 1-36, valid when Tone == ToneDrumKey
	Address Address

	// Name is the 12-character tone name when the block carries one and
	// the reply covers it.
	Name string

	// Values maps parameter names to display values.
	Values map[string]int

	// Successes lists decoded parameter names in registry offset order.
	Successes []string

	// Failures lists parameters whose offsets fell outside the data the
	// device sent. Misses are diagnostics, not errors.
	Failures []string

	// Unmatched lists absolute block offsets that carried data but match
	// no registered descriptor.
	Unmatched []int
}

// Parser decodes inbound DT1 frames against a registry set. It is
// stateless between calls and safe for concurrent use.
type Parser struct {
	registries *RegistrySet
}

func NewParser(rs *RegistrySet) *Parser {
	return &Parser{registries: rs}
}

// Parse decodes a DT1 frame into tone data.
//
// Framing, header and checksum problems reject the whole message. Past the
// header everything is best effort: an unrecognized tone block or a
// parameter whose offset lies outside the transmitted data never aborts the
// parse; the result records what could and could not be decoded.
func (p *Parser) Parse(msg []byte) (*ToneData, error) {
	if len(msg) < minDT1Len {
		return nil, fmt.Errorf("%d bytes, want at least %d: %w", len(msg), minDT1Len, ErrTruncatedMessage)
	}
	if msg[0] != SysExStart || msg[len(msg)-1] != SysExEnd {
		return nil, fmt.Errorf("missing SysEx framing: %w", ErrHeaderMismatch)
	}
	if !hasJDXiHeader(msg) {
		return nil, fmt.Errorf("manufacturer/model bytes do not match a JD-Xi: %w", ErrHeaderMismatch)
	}
	if msg[cmdIndex] != CmdDT1 {
		return nil, fmt.Errorf("command %#02x is not DT1: %w", msg[cmdIndex], ErrHeaderMismatch)
	}

	body := msg[addrIndex : len(msg)-2]
	if !ValidateChecksum(body, msg[len(msg)-2]) {
		return nil, fmt.Errorf("expected %#02x, got %#02x: %w",
			Checksum(body), msg[len(msg)-2], ErrChecksumMismatch)
	}

	addr := Address{msg[addrIndex], msg[addrIndex+1], msg[addrIndex+2], msg[addrIndex+3]}
	data := msg[dataIndex : len(msg)-2]

	out := &ToneData{
		Area:    AreaOf(addr),
		Tone:    ToneUnknown,
		Address: addr,
		Values:  make(map[string]int),
	}

	family, tone, key, ok := resolveBlock(out.Area, addr[2])
	if !ok {
		return out, nil
	}
	out.Tone = tone
	out.DrumKey = key

	// Offsets in the data are relative to the address LSB: a full block
	// dump starts at 0, a single-parameter write starts at that
	// parameter's own offset.
	start := int(addr[3])
	covered := make([]bool, len(data))

	if start == 0 && blockHasName(family) && len(data) >= ToneNameLength {
		out.Name = trimToneName(data[:ToneNameLength])
		for i := 0; i < ToneNameLength; i++ {
			covered[i] = true
		}
	}

	for _, param := range p.registries.Family(family).Params() {
		rel := param.Offset - start
		if rel < 0 || rel+param.Size > len(data) {
			out.Failures = append(out.Failures, param.Name)
			continue
		}

		raw, ok := decodeValue(param, data[rel:rel+param.Size])
		if !ok {
			out.Failures = append(out.Failures, param.Name)
			continue
		}
		for i := 0; i < param.Size; i++ {
			covered[rel+i] = true
		}
		out.Values[param.Name] = param.FromMIDI(raw)
		out.Successes = append(out.Successes, param.Name)
	}

	for i, c := range covered {
		if !c {
			out.Unmatched = append(out.Unmatched, start+i)
		}
	}
	return out, nil
}

// ParseValue decodes a single-parameter DT1 reply and returns the one
// display value it carries.
func (p *Parser) ParseValue(msg []byte, name string) (int, error) {
	td, err := p.Parse(msg)
	if err != nil {
		return 0, err
	}
	v, ok := td.Values[name]
	if !ok {
		return 0, fmt.Errorf("%q not present in reply at %s: %w", name, td.Address.Hex(), ErrUnknownParameter)
	}
	return v, nil
}

// decodeValue reads a parameter's raw value from its payload bytes. Corrupt
// nibbles in 4-byte values are a decode miss, not a panic.
func decodeValue(param *Param, b []byte) (int, bool) {
	if param.Size == 4 {
		var n [4]byte
		for i := range n {
			if b[i] > 0x0F {
				return 0, false
			}
			n[i] = b[i]
		}
		return int(Join16(n)), true
	}
	return int(b[0]), true
}

// trimToneName strips non-printable bytes and trailing padding from the
// fixed-width name field.
func trimToneName(b []byte) string {
	cleaned := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x20 && c < 0x7F {
			cleaned = append(cleaned, c)
		}
	}
	return strings.TrimRight(string(cleaned), " ")
}
