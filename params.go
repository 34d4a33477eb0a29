package jdxi

import (
	"fmt"
	"sort"
)

// Param describes one addressable JD-Xi parameter: where it lives inside
// its family's block, the raw byte range the device accepts, and how raw
// wire values map to the values a user sees.
type Param struct {
	Name   string
	Family Family
	Offset int // byte offset within the owning block

	// Raw range as transmitted.
	Min, Max int

	// Display range. Filled from Min/Max and Zero at registry
	// construction when left empty in the tables.
	DisplayMin, DisplayMax int

	// Zero is the raw value displayed as 0. Bipolar parameters set it to
	// their center (display = raw - Zero); unipolar parameters leave it 0.
	Zero int

	Switch bool // boolean-valued parameter
	Size   int  // payload size in bytes: 1, or 4 for nibbled values
	Hint   string
}

// Bipolar reports whether the display range is centered on a nonzero raw
// value.
func (p *Param) Bipolar() bool {
	return p.Zero != 0
}

// ValidateValue clamps a raw value into the declared range. Devices
// occasionally echo slightly out-of-range bytes, so the tolerance policy is
// clamping, not rejection.
func (p *Param) ValidateValue(raw int) int {
	if raw < p.Min {
		return p.Min
	}
	if raw > p.Max {
		return p.Max
	}
	return raw
}

// ToMIDI converts a display value to the raw value sent on the wire,
// applying the bipolar center when present. A display value whose raw image
// cannot be clamped back without changing it is rejected.
func (p *Param) ToMIDI(display int) (int, error) {
	raw := display + p.Zero
	if clamped := p.ValidateValue(raw); clamped != raw {
		return 0, fmt.Errorf("%s: display %d maps to raw %d outside [%d, %d]: %w",
			p.Name, display, raw, p.Min, p.Max, ErrValueOutOfRange)
	}
	return raw, nil
}

// FromMIDI converts a raw wire value to its display value, clamping first.
func (p *Param) FromMIDI(raw int) int {
	return p.ValidateValue(raw) - p.Zero
}

// Registry owns every descriptor of one parameter family plus a reverse
// index keyed by byte offset, used while parsing replies.
type Registry struct {
	family   Family
	params   []*Param
	byName   map[string]*Param
	byOffset map[int]*Param
}

func newRegistry(family Family, defs []Param) *Registry {
	r := &Registry{
		family:   family,
		byName:   make(map[string]*Param, len(defs)),
		byOffset: make(map[int]*Param, len(defs)),
	}
	for i := range defs {
		p := &defs[i]
		p.Family = family
		if p.Size == 0 {
			p.Size = 1
		}
		if p.DisplayMin == 0 && p.DisplayMax == 0 {
			p.DisplayMin = p.Min - p.Zero
			p.DisplayMax = p.Max - p.Zero
		}
		// Duplicate names or offsets are table bugs; fail at startup.
		if _, dup := r.byName[p.Name]; dup {
			panic(fmt.Sprintf("jdxi: duplicate parameter name %q in %s", p.Name, family))
		}
		if _, dup := r.byOffset[p.Offset]; dup {
			panic(fmt.Sprintf("jdxi: duplicate offset %#02x in %s", p.Offset, family))
		}
		r.byName[p.Name] = p
		r.byOffset[p.Offset] = p
		r.params = append(r.params, p)
	}
	sort.Slice(r.params, func(i, j int) bool { return r.params[i].Offset < r.params[j].Offset })
	return r
}

// Family returns the family this registry describes.
func (r *Registry) Family() Family {
	return r.family
}

// ByName looks up a descriptor by its unique name.
func (r *Registry) ByName(name string) (*Param, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// ByOffset looks up a descriptor by the byte offset it starts at.
func (r *Registry) ByOffset(offset int) (*Param, bool) {
	p, ok := r.byOffset[offset]
	return p, ok
}

// Params returns all descriptors in ascending offset order. Callers must
// not mutate the returned descriptors.
func (r *Registry) Params() []*Param {
	return r.params
}

func (r *Registry) Len() int {
	return len(r.params)
}

// Span returns the number of block bytes a full dump of this family covers,
// from offset zero through the end of the last parameter. Useful as the RQ1
// request size for a whole block.
func (r *Registry) Span() int {
	if len(r.params) == 0 {
		return 0
	}
	last := r.params[len(r.params)-1]
	return last.Offset + last.Size
}

// RegistrySet holds one registry per parameter family. Build it once at
// process start and share it; it is never mutated afterwards.
type RegistrySet struct {
	registries map[Family]*Registry
}

// NewRegistrySet constructs every family registry.
func NewRegistrySet() *RegistrySet {
	rs := &RegistrySet{registries: make(map[Family]*Registry, int(numFamilies))}
	rs.registries[FamilyAnalog] = newRegistry(FamilyAnalog, analogParams())
	rs.registries[FamilyDigitalCommon] = newRegistry(FamilyDigitalCommon, digitalCommonParams())
	rs.registries[FamilyDigitalPartial] = newRegistry(FamilyDigitalPartial, digitalPartialParams())
	rs.registries[FamilyDrumPartial] = newRegistry(FamilyDrumPartial, drumPartialParams())
	rs.registries[FamilyProgramCommon] = newRegistry(FamilyProgramCommon, programCommonParams())
	rs.registries[FamilyArpeggio] = newRegistry(FamilyArpeggio, arpeggioParams())
	rs.registries[FamilyVocalFx] = newRegistry(FamilyVocalFx, vocalFxParams())
	return rs
}

// Family returns the registry for one family.
func (rs *RegistrySet) Family(f Family) *Registry {
	return rs.registries[f]
}

// Lookup finds a descriptor by name across all families. Names are unique
// within a family but not across them, so the owning family disambiguates
// at compose time via the base address.
func (rs *RegistrySet) Lookup(name string) (*Param, bool) {
	for f := Family(0); f < numFamilies; f++ {
		if r := rs.registries[f]; r != nil {
			if p, ok := r.ByName(name); ok {
				return p, true
			}
		}
	}
	return nil, false
}

// PartialOffset returns the LMB address adjustment selecting one partial
// within a multi-partial family. Digital tones carry three partials at
// fixed strides; drum kits address up to 36 voices from a per-key table.
// Families without partials return 0 for any selector.
func PartialOffset(f Family, partial int) (int, error) {
	switch f {
	case FamilyDigitalPartial:
		if partial < 1 || partial > 3 {
			return 0, fmt.Errorf("digital partial %d not in 1-3: %w", partial, ErrAddressResolution)
		}
		return digitalPartialBase + partial - 1, nil
	case FamilyDrumPartial:
		if partial < 1 || partial > NumDrumKeys {
			return 0, fmt.Errorf("drum key %d not in 1-%d: %w", partial, NumDrumKeys, ErrAddressResolution)
		}
		return drumKeyBase + drumKeyStride*(partial-1), nil
	}
	return 0, nil
}
