package gif

// bitField is a sub-field occupying a fixed, contiguous bit range of a
// packed field byte.
type bitField struct {
	name  string
	mask  byte
	shift uint
}

// max returns the largest value the field can hold.
func (f bitField) max() byte {
	return f.mask >> f.shift
}

// get extracts the field value from b.
func (f bitField) get(b byte) byte {
	return (b & f.mask) >> f.shift
}

// set returns b with the field replaced by v. Other bits of b are kept.
// b is returned unchanged along with a *RangeError if v does not fit.
func (f bitField) set(b, v byte) (byte, error) {
	if v > f.max() {
		return b, &RangeError{Field: f.name, Value: v, Max: f.max()}
	}
	return (b &^ f.mask) | ((v << f.shift) & f.mask), nil
}

// isSet reports whether any bit of the field is set in b.
func (f bitField) isSet(b byte) bool {
	return b&f.mask != 0
}

// setFlag returns b with every bit of the field set or cleared.
func (f bitField) setFlag(b byte, on bool) byte {
	if on {
		return b | f.mask
	}
	return b &^ f.mask
}
