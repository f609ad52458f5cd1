package mus

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/sagamusix/mod2mus/pkg/mod"
)

// WriteSamples translates the 31 sample slots into SMPL chunks, copying the
// payload verbatim from the source. Slots shorter than two words produce no
// chunk at all, but their payload bytes are still consumed so the read
// position keeps advancing the way the chunk sizes dictate.
func WriteSamples(w io.Writer, f *mod.File, r io.ReadSeeker) error {
	offset := int64(mod.HeaderSize) + int64(f.NumPatterns())*int64(f.PatternSize())
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return errors.Wrap(err, "seeking sample data")
	}

	for i, sample := range f.Samples {
		loopStart, size := sampleLayout(sample)

		data := make([]byte, size)
		if _, err := io.ReadFull(r, data); err != nil &&
			err != io.EOF && err != io.ErrUnexpectedEOF {
			return errors.Wrapf(err, "reading sample %d", i+1)
		}

		if sample.Length < minSampleWords {
			continue
		}

		hdr := make([]byte, sampleChunkSize)
		copy(hdr[0:4], "SMPL")
		binary.LittleEndian.PutUint32(hdr[4:8], sampleChunkSize+size)
		name := formatSampleName(i+1, sample.Name)
		copy(hdr[8:40], name[:])
		binary.LittleEndian.PutUint32(hdr[40:44], loopStart)
		binary.LittleEndian.PutUint32(hdr[44:48], size)

		if _, err := w.Write(hdr); err != nil {
			return errors.Wrapf(err, "writing sample %d header", i+1)
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrapf(err, "writing sample %d data", i+1)
		}
	}
	return nil
}

// sampleLayout computes a chunk's loop start and payload size in bytes.
// Looped samples are cut after the loop end; one-shot samples loop at their
// own end.
func sampleLayout(s mod.SampleHeader) (loopStart, size uint32) {
	if s.LoopLength > 1 && s.LoopStart < s.Length {
		loopStart = uint32(s.LoopStart) * 2
		size = loopStart + uint32(s.LoopLength)*2
		return loopStart, size
	}
	size = uint32(s.Length) * 2
	return size, size
}
