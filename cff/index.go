package cff

// header holds the fixed-size CFF Header that precedes the Name INDEX.
type header struct {
	Major   byte
	Minor   byte
	HdrSize byte
	OffSize byte
}

func readHeader(r *reader) (*header, error) {
	major, err := r.u8()
	if err != nil {
		return nil, errf(Truncated, "header: %v", err)
	}
	minor, err := r.u8()
	if err != nil {
		return nil, errf(Truncated, "header: %v", err)
	}
	hdrSize, err := r.u8()
	if err != nil {
		return nil, errf(Truncated, "header: %v", err)
	}
	offSize, err := r.u8()
	if err != nil {
		return nil, errf(Truncated, "header: %v", err)
	}
	h := &header{Major: major, Minor: minor, HdrSize: hdrSize, OffSize: offSize}
	// hdrSize may exceed the 4 fields read above if the font carries
	// vendor extensions; skip to the declared start of the Name INDEX.
	if int(hdrSize) > 4 {
		if err := r.seek(int(hdrSize)); err != nil {
			return nil, errf(Truncated, "header: %v", err)
		}
	}
	return h, nil
}

// cffIndex is a decoded INDEX: an array of opaque byte strings, indexed
// from 0 (the on-disk offsets are 1-based; the slice is not).
// An empty INDEX is exactly two bytes (a count of 0, no offset array, no
// data).
type cffIndex [][]byte

// readIndex decodes one INDEX starting at r's current position and
// leaves r positioned just past it.
func readIndex(r *reader) (cffIndex, error) {
	count, err := r.u16()
	if err != nil {
		return nil, errf(Truncated, "index count: %v", err)
	}
	if count == 0 {
		return cffIndex{}, nil
	}

	offSize, err := r.u8()
	if err != nil {
		return nil, errf(Truncated, "index offSize: %v", err)
	}
	if offSize < 1 || offSize > 4 {
		return nil, errf(CorruptIndex, "invalid offSize %d", offSize)
	}

	offsets := make([]uint32, int(count)+1)
	for i := range offsets {
		off, err := r.offset(int(offSize))
		if err != nil {
			return nil, errf(Truncated, "index offset %d: %v", i, err)
		}
		offsets[i] = off
	}
	if offsets[0] != 1 {
		return nil, errf(CorruptIndex, "index data starts at offset %d, want 1", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, errf(CorruptIndex, "index offsets not monotonic at entry %d", i)
		}
	}

	dataLen := int(offsets[len(offsets)-1] - 1)
	data, err := r.bytes(dataLen)
	if err != nil {
		return nil, errf(Truncated, "index data: %v", err)
	}

	out := make(cffIndex, count)
	for i := 0; i < int(count); i++ {
		start := offsets[i] - 1
		end := offsets[i+1] - 1
		out[i] = data[start:end]
	}
	return out, nil
}

// encode serialises an INDEX back to its on-disk form. It exists only so
// that tests can build fixtures and round-trip them through readIndex;
// the package never writes a CFF file as output.
func (idx cffIndex) encode() []byte {
	if len(idx) == 0 {
		return []byte{0, 0}
	}

	maxOffset := 1
	for _, d := range idx {
		maxOffset += len(d)
	}
	offSize := bytesNeeded(uint32(maxOffset))

	buf := make([]byte, 0, 2+1+(len(idx)+1)*offSize+maxOffset-1)
	buf = append(buf, byte(len(idx)>>8), byte(len(idx)))
	buf = append(buf, byte(offSize))

	off := 1
	for i := 0; i <= len(idx); i++ {
		buf = appendOffset(buf, uint32(off), offSize)
		if i < len(idx) {
			off += len(idx[i])
		}
	}
	for _, d := range idx {
		buf = append(buf, d...)
	}
	return buf
}

func bytesNeeded(v uint32) int {
	switch {
	case v <= 0xff:
		return 1
	case v <= 0xffff:
		return 2
	case v <= 0xffffff:
		return 3
	default:
		return 4
	}
}

func appendOffset(buf []byte, v uint32, width int) []byte {
	switch width {
	case 1:
		return append(buf, byte(v))
	case 2:
		return append(buf, byte(v>>8), byte(v))
	case 3:
		return append(buf, byte(v>>16), byte(v>>8), byte(v))
	default:
		return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
}
