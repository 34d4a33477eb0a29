package jdxi

import "fmt"

// Address identifies a JD-Xi memory region as the four address bytes of a
// DT1/RQ1 frame: most significant, upper middle, lower middle and least
// significant. It is an immutable value type; Offset returns a new address.
type Address [4]byte

// NewAddress assembles an address from its four components.
func NewAddress(msb, umb, lmb, lsb byte) Address {
	return Address{msb, umb, lmb, lsb}
}

// Offset returns a new address with the per-component deltas applied. Every
// component must land in 0x00-0x7F; carries between components are never
// implicit, so a delta that overflows its component is an error rather than
// a silent wrap into the neighbouring byte.
func (a Address) Offset(dmsb, dumb, dlmb, dlsb int) (Address, error) {
	deltas := [4]int{dmsb, dumb, dlmb, dlsb}
	var out Address
	for i := range a {
		v := int(a[i]) + deltas[i]
		if v < 0 || v > 0x7F {
			return Address{}, fmt.Errorf("component %d of %s overflows to %#x after offset: %w",
				i, a.Hex(), v, ErrAddressResolution)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// Bytes returns the four address bytes in transmission order.
func (a Address) Bytes() [4]byte {
	return a
}

// Hex renders the address as eight lowercase hex characters.
func (a Address) Hex() string {
	return fmt.Sprintf("%02x%02x%02x%02x", a[0], a[1], a[2], a[3])
}

func (a Address) String() string {
	return fmt.Sprintf("%02X %02X %02X %02X", a[0], a[1], a[2], a[3])
}
