package jdxi

import "fmt"

// Checksum implements the Roland sum-to-zero rule over the address and data
// bytes of a frame: (0x80 - (sum mod 0x80)) mod 0x80. Adding the checksum
// to the summed bytes always yields a multiple of 128.
func Checksum(addressAndData []byte) byte {
	sum := 0
	for _, b := range addressAndData {
		sum += int(b)
	}
	return byte((0x80 - sum%0x80) % 0x80)
}

// ValidateChecksum recomputes the checksum over the address and data bytes
// and compares it against the received one.
func ValidateChecksum(addressAndData []byte, checksum byte) bool {
	return Checksum(addressAndData) == checksum
}

// ValidateFrame checks only the SysEx start/end bytes and the minimum
// length. Header content is checked separately so callers can tell "not
// SysEx" apart from "not a JD-Xi message".
func ValidateFrame(msg []byte) bool {
	return len(msg) >= minFrameLen && msg[0] == SysExStart && msg[len(msg)-1] == SysExEnd
}

// hasJDXiHeader reports whether bytes 1..7 carry the Roland manufacturer id
// and the JD-Xi model id. The device id byte in between is not pinned; the
// hardware lets users change it.
func hasJDXiHeader(msg []byte) bool {
	if len(msg) < minFrameLen || msg[1] != ManufacturerRoland {
		return false
	}
	for i, b := range ModelID {
		if msg[3+i] != b {
			return false
		}
	}
	return true
}

// IdentityReply is the decoded form of a Universal Identity Reply frame:
// F0 7E <dev> 06 02 41 10 00 00 00 0E <r0 r1 r2 r3> F7.
type IdentityReply struct {
	DeviceID byte
	IsRoland bool
	IsJDXi   bool
	Version  string // "v1.00" style, from the last two revision bytes
	Revision [4]byte
}

const (
	universalNonRealtime = 0x7E
	subIDGeneralInfo     = 0x06
	subIDIdentityRequest = 0x01
	subIDIdentityReply   = 0x02

	identityReplyLen = 16
)

// IdentityRequest builds the broadcast Universal Identity Request frame.
func IdentityRequest() []byte {
	return []byte{SysExStart, universalNonRealtime, 0x7F, subIDGeneralInfo, subIDIdentityRequest, SysExEnd}
}

// ParseIdentity decodes an Identity Reply. Non-Roland replies still decode
// (IsRoland false) so callers can log what answered; malformed frames fail.
func ParseIdentity(msg []byte) (*IdentityReply, error) {
	if len(msg) != identityReplyLen {
		return nil, fmt.Errorf("identity reply is %d bytes, want %d: %w", len(msg), identityReplyLen, ErrTruncatedMessage)
	}
	if msg[0] != SysExStart || msg[len(msg)-1] != SysExEnd {
		return nil, fmt.Errorf("identity reply not SysEx framed: %w", ErrHeaderMismatch)
	}
	if msg[1] != universalNonRealtime || msg[3] != subIDGeneralInfo || msg[4] != subIDIdentityReply {
		return nil, fmt.Errorf("not an identity reply: %w", ErrHeaderMismatch)
	}

	r := &IdentityReply{DeviceID: msg[2]}
	copy(r.Revision[:], msg[11:15])
	r.IsRoland = msg[5] == ManufacturerRoland
	r.IsJDXi = r.IsRoland &&
		msg[6] == 0x10 && msg[7] == 0x00 &&
		msg[8] == 0x00 && msg[9] == 0x00 && msg[10] == 0x0E
	r.Version = fmt.Sprintf("v%d.%02d", msg[13], msg[14])
	return r, nil
}
