package mod

import (
	"io"

	"github.com/pkg/errors"
)

// LoadSampleData reads the raw signed 8-bit PCM for all 31 sample slots,
// stored back to back after the pattern data. Slots with a zero length get a
// nil slice.
func (f *File) LoadSampleData(r io.ReadSeeker) ([31][]int8, error) {
	var pcm [31][]int8

	offset := int64(HeaderSize) + int64(f.NumPatterns())*int64(f.PatternSize())
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return pcm, errors.Wrap(err, "seeking sample data")
	}

	for i, sample := range f.Samples {
		size := int(sample.Length) * 2
		if size == 0 {
			continue
		}
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return pcm, errors.Wrapf(err, "reading sample %d", i+1)
		}
		data := make([]int8, size)
		for pos, b := range buf {
			data[pos] = int8(b)
		}
		pcm[i] = data
	}
	return pcm, nil
}
