package jdxi

import (
	"errors"
	"testing"
)

func TestRegistrySetConstruction(t *testing.T) {
	rs := NewRegistrySet()

	for f := Family(0); f < numFamilies; f++ {
		reg := rs.Family(f)
		if reg == nil {
			t.Fatalf("no registry for family %s", f)
		}
		if reg.Len() == 0 {
			t.Fatalf("registry %s is empty", f)
		}

		prev := -1
		for _, p := range reg.Params() {
			if p.Family != f {
				t.Errorf("%s: descriptor %q tagged %s", f, p.Name, p.Family)
			}
			if p.Offset <= prev {
				t.Errorf("%s: descriptors not in ascending offset order at %q", f, p.Name)
			}
			prev = p.Offset

			if p.Size != 1 && p.Size != 4 {
				t.Errorf("%s/%q: size %d", f, p.Name, p.Size)
			}
			if p.Min > p.Max {
				t.Errorf("%s/%q: raw range [%d, %d] inverted", f, p.Name, p.Min, p.Max)
			}
			if p.DisplayMin != p.Min-p.Zero || p.DisplayMax != p.Max-p.Zero {
				t.Errorf("%s/%q: display range [%d, %d] inconsistent with raw [%d, %d] center %d",
					f, p.Name, p.DisplayMin, p.DisplayMax, p.Min, p.Max, p.Zero)
			}

			byName, ok := reg.ByName(p.Name)
			if !ok || byName != p {
				t.Errorf("%s: ByName(%q) did not return the descriptor", f, p.Name)
			}
			byOffset, ok := reg.ByOffset(p.Offset)
			if !ok || byOffset != p {
				t.Errorf("%s: ByOffset(%#x) did not return %q", f, p.Offset, p.Name)
			}
		}
	}
}

func TestBipolarConversion(t *testing.T) {
	rs := NewRegistrySet()
	p, ok := rs.Family(FamilyAnalog).ByName("OSC_PITCH_COARSE")
	if !ok {
		t.Fatal("OSC_PITCH_COARSE not registered")
	}
	if !p.Bipolar() {
		t.Fatal("OSC_PITCH_COARSE not bipolar")
	}
	if p.DisplayMin != -24 || p.DisplayMax != 24 {
		t.Fatalf("display range [%d, %d]", p.DisplayMin, p.DisplayMax)
	}

	cases := []struct{ display, raw int }{{-24, 40}, {0, 64}, {24, 88}}
	for _, tc := range cases {
		raw, err := p.ToMIDI(tc.display)
		if err != nil {
			t.Fatalf("ToMIDI(%d) failed: %v", tc.display, err)
		}
		if raw != tc.raw {
			t.Errorf("ToMIDI(%d) = %d, want %d", tc.display, raw, tc.raw)
		}
		if got := p.FromMIDI(tc.raw); got != tc.display {
			t.Errorf("FromMIDI(%d) = %d, want %d", tc.raw, got, tc.display)
		}
	}

	if _, err := p.ToMIDI(25); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("ToMIDI(25): got %v", err)
	}
	if _, err := p.ToMIDI(-25); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("ToMIDI(-25): got %v", err)
	}
}

func TestValidateValueClamps(t *testing.T) {
	p := &Param{Name: "X", Min: 10, Max: 20, Size: 1}
	if got := p.ValidateValue(5); got != 10 {
		t.Errorf("clamp below: %d", got)
	}
	if got := p.ValidateValue(25); got != 20 {
		t.Errorf("clamp above: %d", got)
	}
	if got := p.ValidateValue(15); got != 15 {
		t.Errorf("clamp inside: %d", got)
	}

	// FromMIDI tolerates out-of-range echoes by clamping first.
	bip := &Param{Name: "Y", Min: 1, Max: 127, Zero: 64, Size: 1}
	if got := bip.FromMIDI(0); got != -63 {
		t.Errorf("FromMIDI(0) = %d, want clamped -63", got)
	}
}

func TestPartialOffset(t *testing.T) {
	cases := []struct {
		family  Family
		partial int
		want    int
		ok      bool
	}{
		{FamilyDigitalPartial, 1, 0x20, true},
		{FamilyDigitalPartial, 2, 0x21, true},
		{FamilyDigitalPartial, 3, 0x22, true},
		{FamilyDigitalPartial, 0, 0, false},
		{FamilyDigitalPartial, 4, 0, false},
		{FamilyDrumPartial, 1, 0x2E, true},
		{FamilyDrumPartial, 2, 0x30, true},
		{FamilyDrumPartial, 36, 0x74, true},
		{FamilyDrumPartial, 0, 0, false},
		{FamilyDrumPartial, 37, 0, false},
		{FamilyAnalog, 0, 0, true},
		{FamilyProgramCommon, 9, 0, true},
	}
	for _, tc := range cases {
		got, err := PartialOffset(tc.family, tc.partial)
		if tc.ok && err != nil {
			t.Errorf("PartialOffset(%s, %d) failed: %v", tc.family, tc.partial, err)
			continue
		}
		if !tc.ok {
			if !errors.Is(err, ErrAddressResolution) {
				t.Errorf("PartialOffset(%s, %d): got %v", tc.family, tc.partial, err)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("PartialOffset(%s, %d) = %#x, want %#x", tc.family, tc.partial, got, tc.want)
		}
	}
}

func TestLookupAcrossFamilies(t *testing.T) {
	rs := NewRegistrySet()

	p, ok := rs.Lookup("ARP_STYLE")
	if !ok || p.Family != FamilyArpeggio {
		t.Fatalf("Lookup(ARP_STYLE) = %+v, %v", p, ok)
	}
	if _, ok := rs.Lookup("NO_SUCH_PARAM"); ok {
		t.Fatal("Lookup invented a descriptor")
	}
}

func TestProgramOffsetCandidates(t *testing.T) {
	// Both documented candidates stay available until hardware settles the
	// disagreement; the registry is bound to the editor offsets.
	if ProgramLevelOffsetEditor == ProgramLevelOffsetGuide {
		t.Fatal("level candidates collapsed")
	}
	if ProgramTempoOffsetEditor == ProgramTempoOffsetGuide {
		t.Fatal("tempo candidates collapsed")
	}

	rs := NewRegistrySet()
	level, ok := rs.Family(FamilyProgramCommon).ByName("PROGRAM_LEVEL")
	if !ok || level.Offset != ProgramLevelOffsetEditor {
		t.Fatalf("PROGRAM_LEVEL bound to %#x", level.Offset)
	}
	tempo, ok := rs.Family(FamilyProgramCommon).ByName("PROGRAM_TEMPO")
	if !ok || tempo.Offset != ProgramTempoOffsetEditor {
		t.Fatalf("PROGRAM_TEMPO bound to %#x", tempo.Offset)
	}
	if tempo.Size != 4 {
		t.Fatalf("PROGRAM_TEMPO size %d", tempo.Size)
	}
}
