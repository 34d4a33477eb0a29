package jdxi

import (
	"errors"
	"testing"
)

func TestAddressOffsetDeterminism(t *testing.T) {
	base := AddrDigital1

	a, err := base.Offset(0, 0, 0x20, 0x05)
	if err != nil {
		t.Fatalf("offset failed: %v", err)
	}
	b, err := base.Offset(0, 0, 0x20, 0x00)
	if err != nil {
		t.Fatalf("offset failed: %v", err)
	}
	b, err = b.Offset(0, 0, 0x00, 0x05)
	if err != nil {
		t.Fatalf("offset failed: %v", err)
	}
	if a != b {
		t.Fatalf("split offsets disagree: %s vs %s", a.Hex(), b.Hex())
	}
	if a != NewAddress(0x19, 0x01, 0x20, 0x05) {
		t.Fatalf("unexpected resolved address %s", a.Hex())
	}
}

func TestAddressOffsetOverflow(t *testing.T) {
	base := NewAddress(0x19, 0x70, 0x7F, 0x00)

	if _, err := base.Offset(0, 0, 1, 0); !errors.Is(err, ErrAddressResolution) {
		t.Fatalf("component overflow not reported: %v", err)
	}
	if _, err := base.Offset(0, 0, 0, -1); !errors.Is(err, ErrAddressResolution) {
		t.Fatalf("negative underflow not reported: %v", err)
	}

	// No implicit carry: the neighbouring components must be untouched on
	// the success path.
	got, err := base.Offset(0, 0, -0x7F, 0x7F)
	if err != nil {
		t.Fatalf("offset failed: %v", err)
	}
	if got != NewAddress(0x19, 0x70, 0x00, 0x7F) {
		t.Fatalf("unexpected address %s", got.Hex())
	}
}

func TestAddressRendering(t *testing.T) {
	if got := AddrAnalog.Hex(); got != "19400000" {
		t.Fatalf("Hex() = %q", got)
	}
	if got := AddrAnalog.String(); got != "19 40 00 00" {
		t.Fatalf("String() = %q", got)
	}
	if got := AddrAnalog.Bytes(); got != [4]byte{0x19, 0x40, 0x00, 0x00} {
		t.Fatalf("Bytes() = % X", got[:])
	}
}

func TestAreaOf(t *testing.T) {
	cases := []struct {
		addr Address
		want Area
	}{
		{AddrSetup, AreaSetup},
		{AddrSystem, AreaSystem},
		{AddrProgram, AreaProgram},
		{AddrDigital1, AreaDigital1},
		{AddrDigital2, AreaDigital2},
		{AddrAnalog, AreaAnalog},
		{AddrDrum, AreaDrum},
		{NewAddress(0x7F, 0x00, 0x00, 0x00), AreaUnknown},
	}
	for _, tc := range cases {
		if got := AreaOf(tc.addr); got != tc.want {
			t.Errorf("AreaOf(%s) = %s, want %s", tc.addr.Hex(), got, tc.want)
		}
	}
}
