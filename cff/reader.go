package cff

// reader is a bounds-checked cursor over a CFF table's raw bytes. All
// multi-byte fields in a CFF file are big-endian; reader centralises the
// width-1..4 decoding used by the header and INDEX readers.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) len() int { return len(r.data) - r.pos }

func (r *reader) seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return errf(Truncated, "seek out of range")
	}
	r.pos = pos
	return nil
}

func (r *reader) skip(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return errf(Truncated, "skip past end of data")
	}
	r.pos += n
	return nil
}

// bytes reads n raw bytes and advances the cursor.
func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errf(Truncated, "need %d bytes, have %d", n, r.len())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (r *reader) u24() (uint32, error) {
	b, err := r.bytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// offset reads a big-endian unsigned integer of the given byte width
// (1..4), as used for CFF Offset and OffSize fields.
func (r *reader) offset(width int) (uint32, error) {
	switch width {
	case 1:
		v, err := r.u8()
		return uint32(v), err
	case 2:
		return r.u16AsU32()
	case 3:
		return r.u24()
	case 4:
		return r.u32()
	default:
		return 0, errf(CorruptIndex, "invalid offset width %d", width)
	}
}

func (r *reader) u16AsU32() (uint32, error) {
	v, err := r.u16()
	return uint32(v), err
}

// bigEndian decodes a 1-4 byte big-endian unsigned integer from b,
// matching the width-dispatch used throughout the CFF format's framed
// tables (INDEX offsets, DICT reals are exempt, FDSelect ranges, etc).
func bigEndian(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}
