// Package jdxi implements the Roland JD-Xi System Exclusive dialect: the
// hierarchical memory-address model, the per-family parameter tables, DT1
// write and RQ1 request composing, and tolerant parsing of device replies.
//
// The protocol core is pure and transport-free; it only consumes and
// produces byte buffers. Device (device.go) is a thin gomidi adapter that
// moves those buffers over real MIDI ports. Build one RegistrySet at
// startup and share it; nothing in the package mutates after construction,
// so concurrent reads need no locking.
package jdxi

const (
	SysExStart = 0xF0
	SysExEnd   = 0xF7

	// ManufacturerRoland is the Roland manufacturer id.
	ManufacturerRoland = 0x41

	// DefaultDeviceID is the JD-Xi device id unless reconfigured on the
	// hardware.
	DefaultDeviceID = 0x10

	CmdRQ1 = 0x11 // data request
	CmdDT1 = 0x12 // data set
)

// ModelID is the 4-byte JD-Xi model id that follows the device id in every
// DT1/RQ1 frame.
var ModelID = [4]byte{0x00, 0x00, 0x00, 0x0E}

// Frame layout: F0 41 <dev> 00 00 00 0E <cmd> <addr*4> <data...> <sum> F7.
const (
	cmdIndex  = 7
	addrIndex = 8
	dataIndex = 12

	// minFrameLen is a frame with a four byte address and no data.
	minFrameLen = 14
	// minDT1Len is a DT1 carrying at least one data byte.
	minDT1Len = 15
)

// ToneNameLength is the fixed width of the ASCII name field at the start of
// blocks that carry one.
const ToneNameLength = 12

// Area identifies a temporary memory area resolved from the first two
// address bytes.
type Area int

const (
	AreaUnknown Area = iota
	AreaSetup
	AreaSystem
	AreaProgram
	AreaDigital1
	AreaDigital2
	AreaAnalog
	AreaDrum
)

func (a Area) String() string {
	switch a {
	case AreaSetup:
		return "Setup"
	case AreaSystem:
		return "System"
	case AreaProgram:
		return "Program"
	case AreaDigital1:
		return "Digital Synth 1"
	case AreaDigital2:
		return "Digital Synth 2"
	case AreaAnalog:
		return "Analog Synth"
	case AreaDrum:
		return "Drum Kit"
	default:
		return "Unknown"
	}
}

// Base addresses of the temporary areas, per the JD-Xi MIDI implementation
// address map.
var (
	AddrSetup    = Address{0x01, 0x00, 0x00, 0x00}
	AddrSystem   = Address{0x02, 0x00, 0x00, 0x00}
	AddrProgram  = Address{0x18, 0x00, 0x00, 0x00}
	AddrDigital1 = Address{0x19, 0x01, 0x00, 0x00}
	AddrDigital2 = Address{0x19, 0x21, 0x00, 0x00}
	AddrAnalog   = Address{0x19, 0x40, 0x00, 0x00}
	AddrDrum     = Address{0x19, 0x70, 0x00, 0x00}
)

// temporaryAreas maps the (msb, umb) pair of an address to its area.
var temporaryAreas = map[[2]byte]Area{
	{0x01, 0x00}: AreaSetup,
	{0x02, 0x00}: AreaSystem,
	{0x18, 0x00}: AreaProgram,
	{0x19, 0x01}: AreaDigital1,
	{0x19, 0x21}: AreaDigital2,
	{0x19, 0x40}: AreaAnalog,
	{0x19, 0x70}: AreaDrum,
}

// AreaOf resolves the temporary area an address belongs to from its first
// two bytes. Addresses outside the documented map yield AreaUnknown.
func AreaOf(addr Address) Area {
	if area, ok := temporaryAreas[[2]byte{addr[0], addr[1]}]; ok {
		return area
	}
	return AreaUnknown
}

// BaseAddress returns the base address of an area.
func BaseAddress(a Area) (Address, bool) {
	switch a {
	case AreaSetup:
		return AddrSetup, true
	case AreaSystem:
		return AddrSystem, true
	case AreaProgram:
		return AddrProgram, true
	case AreaDigital1:
		return AddrDigital1, true
	case AreaDigital2:
		return AddrDigital2, true
	case AreaAnalog:
		return AddrAnalog, true
	case AreaDrum:
		return AddrDrum, true
	}
	return Address{}, false
}

// Tone identifies the tone or partial a message refers to within its area.
type Tone int

const (
	ToneUnknown Tone = iota
	ToneCommon
	TonePartial1
	TonePartial2
	TonePartial3
	ToneDrumKey // one drum voice; the key number travels alongside
)

func (t Tone) String() string {
	switch t {
	case ToneCommon:
		return "Common"
	case TonePartial1:
		return "Partial 1"
	case TonePartial2:
		return "Partial 2"
	case TonePartial3:
		return "Partial 3"
	case ToneDrumKey:
		return "Drum Key"
	default:
		return "Unknown"
	}
}

// Family tags the parameter table a descriptor belongs to.
type Family int

const (
	FamilyAnalog Family = iota
	FamilyDigitalCommon
	FamilyDigitalPartial
	FamilyDrumPartial
	FamilyProgramCommon
	FamilyArpeggio
	FamilyVocalFx

	numFamilies
)

func (f Family) String() string {
	switch f {
	case FamilyAnalog:
		return "Analog"
	case FamilyDigitalCommon:
		return "Digital Common"
	case FamilyDigitalPartial:
		return "Digital Partial"
	case FamilyDrumPartial:
		return "Drum Partial"
	case FamilyProgramCommon:
		return "Program Common"
	case FamilyArpeggio:
		return "Arpeggio"
	case FamilyVocalFx:
		return "Vocal FX"
	default:
		return "Unknown"
	}
}

// LMB strides selecting tones and partials within an area.
const (
	digitalPartialBase = 0x20 // partials 1-3 at 0x20, 0x21, 0x22

	// Drum voices sit at a fixed per-key stride from a documented base.
	drumKeyBase   = 0x2E
	drumKeyStride = 0x02
	NumDrumKeys   = 36
)

// Block offsets of the program sub-blocks relative to the program base.
const (
	vocalFxBlockLMB  = 0x01
	arpeggioBlockLMB = 0x40
)

// areaFamilies lists the parameter families reachable from each area.
var areaFamilies = map[Area][]Family{
	AreaAnalog:   {FamilyAnalog},
	AreaDigital1: {FamilyDigitalCommon, FamilyDigitalPartial},
	AreaDigital2: {FamilyDigitalCommon, FamilyDigitalPartial},
	AreaDrum:     {FamilyDrumPartial},
	AreaProgram:  {FamilyProgramCommon, FamilyVocalFx, FamilyArpeggio},
}

// blockOffset returns the LMB of a family's block relative to its area
// base. Partial-addressed families add their partial stride on top.
func blockOffset(f Family) int {
	switch f {
	case FamilyVocalFx:
		return vocalFxBlockLMB
	case FamilyArpeggio:
		return arpeggioBlockLMB
	default:
		return 0x00
	}
}

// requiresPartial reports whether a family cannot be addressed without a
// partial selector.
func requiresPartial(f Family) bool {
	return f == FamilyDigitalPartial || f == FamilyDrumPartial
}

// blockHasName reports whether a family's block starts with the fixed
// 12-byte ASCII name field.
func blockHasName(f Family) bool {
	switch f {
	case FamilyAnalog, FamilyDigitalCommon, FamilyDrumPartial, FamilyProgramCommon:
		return true
	}
	return false
}

// resolveBlock recovers the parameter family, tone tag and drum key (when
// applicable) from an area and the LMB address byte. An unrecognized LMB is
// not a hard failure; it resolves to ToneUnknown.
func resolveBlock(area Area, lmb byte) (Family, Tone, int, bool) {
	switch area {
	case AreaAnalog:
		if lmb == 0x00 {
			return FamilyAnalog, ToneCommon, 0, true
		}
	case AreaDigital1, AreaDigital2:
		switch lmb {
		case 0x00:
			return FamilyDigitalCommon, ToneCommon, 0, true
		case digitalPartialBase:
			return FamilyDigitalPartial, TonePartial1, 0, true
		case digitalPartialBase + 1:
			return FamilyDigitalPartial, TonePartial2, 0, true
		case digitalPartialBase + 2:
			return FamilyDigitalPartial, TonePartial3, 0, true
		}
	case AreaDrum:
		n := int(lmb)
		if n >= drumKeyBase && n < drumKeyBase+drumKeyStride*NumDrumKeys && (n-drumKeyBase)%drumKeyStride == 0 {
			return FamilyDrumPartial, ToneDrumKey, (n-drumKeyBase)/drumKeyStride + 1, true
		}
	case AreaProgram:
		switch lmb {
		case 0x00:
			return FamilyProgramCommon, ToneCommon, 0, true
		case vocalFxBlockLMB:
			return FamilyVocalFx, ToneCommon, 0, true
		case arpeggioBlockLMB:
			return FamilyArpeggio, ToneCommon, 0, true
		}
	}
	return 0, ToneUnknown, 0, false
}
