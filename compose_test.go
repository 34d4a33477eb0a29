package jdxi

import (
	"bytes"
	"errors"
	"testing"
)

func TestComposeAnalogAmpLevel(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	msg, err := c.ComposeSet(AddrAnalog, "AMP_LEVEL", 100, 0)
	if err != nil {
		t.Fatalf("ComposeSet failed: %v", err)
	}

	want := []byte{0xF0, 0x41, 0x10, 0x00, 0x00, 0x00, 0x0E, 0x12, 0x19, 0x40, 0x00, 0x15, 0x64, 0x2E, 0xF7}
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("frame = % X, want % X", msg.Bytes(), want)
	}
	if msg.Command != CmdDT1 {
		t.Errorf("command %#x", msg.Command)
	}
	if msg.Address != NewAddress(0x19, 0x40, 0x00, 0x15) {
		t.Errorf("address %s", msg.Address.Hex())
	}
	if msg.Checksum() != 0x2E {
		t.Errorf("checksum %#x", msg.Checksum())
	}
}

func TestComposedChecksumInvariant(t *testing.T) {
	rs := NewRegistrySet()
	c := NewComposer(rs)

	for _, tc := range familyComposeTargets() {
		for _, p := range rs.Family(tc.family).Params() {
			msg, err := c.ComposeSet(tc.base, p.Name, p.DisplayMin, tc.partial)
			if err != nil {
				t.Fatalf("%s/%s: %v", tc.family, p.Name, err)
			}

			raw := msg.Bytes()
			sum := 0
			for _, b := range raw[addrIndex : len(raw)-1] {
				sum += int(b)
			}
			if sum%128 != 0 {
				t.Errorf("%s/%s: address+data+checksum sum %d not a multiple of 128", tc.family, p.Name, sum)
			}
		}
	}
}

func TestComposeUnknownParameter(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	if _, err := c.ComposeSet(AddrAnalog, "NO_SUCH_PARAM", 0, 0); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("made-up name: got %v", err)
	}

	// Registered elsewhere, but not reachable from the analog area.
	if _, err := c.ComposeSet(AddrAnalog, "ARP_STYLE", 0, 0); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("foreign family: got %v", err)
	}

	// No families are reachable from an unmapped base at all.
	if _, err := c.ComposeSet(NewAddress(0x7F, 0x00, 0x00, 0x00), "AMP_LEVEL", 0, 0); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("unmapped base: got %v", err)
	}
}

func TestComposeMissingPartial(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	if _, err := c.ComposeSet(AddrDigital1, "OSC_WAVE", 0, 0); !errors.Is(err, ErrAddressResolution) {
		t.Errorf("digital partial without selector: got %v", err)
	}
	if _, err := c.ComposeSet(AddrDrum, "PARTIAL_LEVEL", 64, 0); !errors.Is(err, ErrAddressResolution) {
		t.Errorf("drum key without selector: got %v", err)
	}
	if _, err := c.ComposeSet(AddrDrum, "PARTIAL_LEVEL", 64, 37); !errors.Is(err, ErrAddressResolution) {
		t.Errorf("drum key out of table: got %v", err)
	}
}

func TestComposeValueOutOfRange(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	if _, err := c.ComposeSet(AddrAnalog, "AMP_LEVEL", 128, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("above range: got %v", err)
	}
	if _, err := c.ComposeSet(AddrAnalog, "FILTER_SWITCH", 2, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("switch above 1: got %v", err)
	}
	if _, err := c.ComposeSet(AddrAnalog, "AMP_LEVEL", -1, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("negative on unipolar: got %v", err)
	}
}

func TestComposeRequest(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	msg, err := c.ComposeRequest(AddrDigital1, 0x40)
	if err != nil {
		t.Fatalf("ComposeRequest failed: %v", err)
	}

	want := []byte{0xF0, 0x41, 0x10, 0x00, 0x00, 0x00, 0x0E, 0x11,
		0x19, 0x01, 0x00, 0x00, // address
		0x00, 0x00, 0x00, 0x40, // size, four 7-bit groups
	}
	want = append(want, Checksum(want[addrIndex:]), 0xF7)
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("frame = % X, want % X", msg.Bytes(), want)
	}

	if _, err := c.ComposeRequest(AddrDigital1, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("zero size: got %v", err)
	}
}

func TestComposeBlockRequest(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	msg, err := c.ComposeBlockRequest(AddrDigital1, FamilyDigitalPartial, 2, 0x40)
	if err != nil {
		t.Fatalf("ComposeBlockRequest failed: %v", err)
	}
	if msg.Address != NewAddress(0x19, 0x01, 0x21, 0x00) {
		t.Fatalf("address %s", msg.Address.Hex())
	}

	if _, err := c.ComposeBlockRequest(AddrDigital1, FamilyDigitalPartial, 0, 0x40); !errors.Is(err, ErrAddressResolution) {
		t.Errorf("missing partial: got %v", err)
	}

	msg, err = c.ComposeBlockRequest(AddrProgram, FamilyArpeggio, 0, 0x0C)
	if err != nil {
		t.Fatalf("ComposeBlockRequest failed: %v", err)
	}
	if msg.Address != NewAddress(0x18, 0x00, 0x40, 0x00) {
		t.Fatalf("arpeggio block address %s", msg.Address.Hex())
	}
}

func TestComposeFourByteValue(t *testing.T) {
	c := NewComposer(NewRegistrySet())

	msg, err := c.ComposeSet(AddrProgram, "PROGRAM_TEMPO", 12000, 0)
	if err != nil {
		t.Fatalf("ComposeSet failed: %v", err)
	}
	// 12000 = 0x2EE0 as four nibbles.
	if !bytes.Equal(msg.Data, []byte{0x02, 0x0E, 0x0E, 0x00}) {
		t.Fatalf("tempo payload = % X", msg.Data)
	}
	if msg.Address != NewAddress(0x18, 0x00, 0x00, ProgramTempoOffsetEditor) {
		t.Fatalf("tempo address %s", msg.Address.Hex())
	}
}

// familyComposeTargets pairs each family with a base address and partial
// selector that reaches it.
func familyComposeTargets() []struct {
	family  Family
	base    Address
	partial int
} {
	return []struct {
		family  Family
		base    Address
		partial int
	}{
		{FamilyAnalog, AddrAnalog, 0},
		{FamilyDigitalCommon, AddrDigital1, 0},
		{FamilyDigitalPartial, AddrDigital2, 2},
		{FamilyDrumPartial, AddrDrum, 10},
		{FamilyProgramCommon, AddrProgram, 0},
		{FamilyArpeggio, AddrProgram, 0},
		{FamilyVocalFx, AddrProgram, 0},
	}
}
