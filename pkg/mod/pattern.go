package mod

import (
	"io"

	"github.com/pkg/errors"
)

// PatternReader pulls raw pattern cells from a seekable MOD byte source on
// demand, one row at a time.
type PatternReader struct {
	r     io.ReadSeeker
	file  *File
	buf   []byte
	cells []Cell
}

// NewPatternReader wraps r, which must contain the whole MOD file starting at
// offset 0.
func NewPatternReader(r io.ReadSeeker, f *File) *PatternReader {
	return &PatternReader{
		r:     r,
		file:  f,
		buf:   make([]byte, f.NumChannels*cellSize),
		cells: make([]Cell, f.NumChannels),
	}
}

// ReadRow decodes one row of the given pattern, one cell per channel. The
// returned slice is reused by the next call.
func (pr *PatternReader) ReadRow(pattern, row int) ([]Cell, error) {
	offset := int64(HeaderSize) +
		int64(pattern)*int64(pr.file.PatternSize()) +
		int64(row)*int64(len(pr.buf))
	if _, err := pr.r.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seeking pattern %d row %d", pattern, row)
	}
	if _, err := io.ReadFull(pr.r, pr.buf); err != nil {
		return nil, errors.Wrapf(err, "reading pattern %d row %d", pattern, row)
	}
	for ch := range pr.cells {
		pr.cells[ch] = decodeCell(pr.buf[ch*cellSize : ch*cellSize+cellSize])
	}
	return pr.cells, nil
}

// decodeCell splits the packed 4-byte cell layout: the period's high nibble
// and the sample index's fifth bit share the first byte, the sample's low
// nibble and the command share the third.
func decodeCell(data []byte) Cell {
	return Cell{
		Period:    uint16(data[0]&0x0F)<<8 | uint16(data[1]),
		Sample:    data[2]>>4 | data[0]&0x10,
		Command:   data[2] & 0x0F,
		Parameter: data[3],
	}
}
