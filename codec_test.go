package jdxi

import (
	"bytes"
	"testing"
)

func TestSplitJoinByte(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		hi, lo := SplitByte(byte(v))
		if hi > 0x0F || lo > 0x0F {
			t.Fatalf("SplitByte(%#x) produced oversized nibble: hi=%#x lo=%#x", v, hi, lo)
		}
		if got := JoinNibbles(hi, lo); got != byte(v) {
			t.Fatalf("JoinNibbles(SplitByte(%#x)) = %#x", v, got)
		}
	}
}

func TestSplit16RoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		if got := Join16(Split16(uint16(v))); got != uint16(v) {
			t.Fatalf("Join16(Split16(%#x)) = %#x", v, got)
		}
	}
}

func TestSplit32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 0x0F, 0xFF, 0x1234, 0xABCDEF01, 0xFFFFFFFF}
	for v := uint32(0); v < 0xFFFF0000; v += 0x10001 {
		values = append(values, v)
	}
	for _, v := range values {
		if got := Join32(Split32(v)); got != v {
			t.Fatalf("Join32(Split32(%#x)) = %#x", v, got)
		}
	}
}

func TestNibbleData(t *testing.T) {
	in := []byte{0x00, 0x12, 0x7F, 0x80, 0xFF}
	want := []byte{0x00, 0x12, 0x7F, 0x08, 0x00, 0x0F, 0x0F}
	if got := NibbleData(in); !bytes.Equal(got, want) {
		t.Fatalf("NibbleData(% X) = % X, want % X", in, got, want)
	}

	// 7-bit-safe input passes through untouched.
	safe := []byte{0x01, 0x40, 0x7F}
	if got := NibbleData(safe); !bytes.Equal(got, safe) {
		t.Fatalf("NibbleData(% X) = % X, want unchanged", safe, got)
	}
}

func TestEncodeRoland7Bit(t *testing.T) {
	if got := EncodeRoland7Bit(0x0FFFFFFF); got != [4]byte{0x7F, 0x7F, 0x7F, 0x7F} {
		t.Fatalf("EncodeRoland7Bit(max) = % X", got[:])
	}
	if got := EncodeRoland7Bit(0x40); got != [4]byte{0x00, 0x00, 0x00, 0x40} {
		t.Fatalf("EncodeRoland7Bit(0x40) = % X", got[:])
	}
	if got := EncodeRoland7Bit(0x80); got != [4]byte{0x00, 0x00, 0x01, 0x00} {
		t.Fatalf("EncodeRoland7Bit(0x80) = % X", got[:])
	}

	for v := uint32(0); v <= 0x0FFFFFFF; v += 0x1771 {
		if got := DecodeRoland7Bit(EncodeRoland7Bit(v)); got != v {
			t.Fatalf("DecodeRoland7Bit(EncodeRoland7Bit(%#x)) = %#x", v, got)
		}
	}
}

func TestEncode14Bit(t *testing.T) {
	for v := 0; v <= 0x3FFF; v++ {
		enc := Encode14Bit(uint16(v))
		if enc[0] > 0x7F || enc[1] > 0x7F {
			t.Fatalf("Encode14Bit(%#x) not 7-bit safe: % X", v, enc[:])
		}
		if got := Decode14Bit(enc); got != uint16(v) {
			t.Fatalf("Decode14Bit(Encode14Bit(%#x)) = %#x", v, got)
		}
	}
}

func TestCodecPanicsOnOversizedInput(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"JoinNibbles", func() { JoinNibbles(0x10, 0x00) }},
		{"Join16", func() { Join16([4]byte{0x10, 0, 0, 0}) }},
		{"Join32", func() { Join32([8]byte{0x10}) }},
		{"EncodeRoland7Bit", func() { EncodeRoland7Bit(0x10000000) }},
		{"Encode14Bit", func() { Encode14Bit(0x4000) }},
		{"Decode14Bit", func() { Decode14Bit([2]byte{0x80, 0x00}) }},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic on oversized input", tc.name)
				}
			}()
			tc.fn()
		}()
	}
}
