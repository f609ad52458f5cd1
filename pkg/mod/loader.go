package mod

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	// HeaderSize is the fixed size of a MOD header; pattern data always
	// starts at this offset.
	HeaderSize = 1084

	// MaxOrders is the number of slots in a MOD order list.
	MaxOrders = 128

	// RowsPerPattern is fixed for every MOD pattern.
	RowsPerPattern = 64

	sampleDescSize = 30
	cellSize       = 4
)

// Format errors detected while loading the header, before any output exists.
var (
	ErrBadSignature  = errors.New("cannot identify input file (MOD signature is not 1CHN, 2CHN, 3CHN or M.K.)")
	ErrTooManyOrders = errors.New("input file is malformed (claims > 128 orders)")
)

var magicChannels = map[string]int{
	"1CHN": 1,
	"2CHN": 2,
	"3CHN": 3,
	"M.K.": 4,
}

// LoadHeader reads and validates the fixed 1084-byte MOD header from r.
func LoadHeader(r io.Reader) (*File, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "reading MOD header")
	}

	f := &File{Name: string(buf[0:20])}
	offset := 20
	for i := range f.Samples {
		f.Samples[i] = parseSampleHeader(buf[offset : offset+sampleDescSize])
		offset += sampleDescSize
	}
	f.NumOrders = buf[offset]
	f.RestartPos = buf[offset+1]
	offset += 2
	copy(f.Orders[:], buf[offset:offset+MaxOrders])
	offset += MaxOrders
	f.Magic = string(buf[offset : offset+4])

	f.NumChannels = magicChannels[f.Magic]
	if f.NumChannels == 0 {
		return nil, ErrBadSignature
	}
	if int(f.NumOrders) > MaxOrders {
		return nil, ErrTooManyOrders
	}
	return f, nil
}

func parseSampleHeader(data []byte) SampleHeader {
	return SampleHeader{
		Name:       string(data[0:22]),
		Length:     binary.BigEndian.Uint16(data[22:24]),
		Finetune:   data[24],
		Volume:     data[25],
		LoopStart:  binary.BigEndian.Uint16(data[26:28]),
		LoopLength: binary.BigEndian.Uint16(data[28:30]),
	}
}

// NumPatterns derives the stored pattern count from the highest pattern index
// referenced anywhere in the order list, including slots past NumOrders.
func (f *File) NumPatterns() int {
	n := 0
	for _, pat := range f.Orders {
		if int(pat) < MaxOrders && n <= int(pat) {
			n = int(pat) + 1
		}
	}
	return n
}

// PatternSize returns the size of one stored pattern in bytes.
func (f *File) PatternSize() int {
	return f.NumChannels * RowsPerPattern * cellSize
}
