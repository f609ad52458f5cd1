package mus

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	songHeaderSize   = 1108
	sampleChunkSize  = 48
	nameFieldSize    = 32
	sampleRefSize    = 34
	maxSampleVolume  = 64
	minSampleWords   = 2
)

// EmptyName reports whether the source song carries no name at all; the
// conversion proceeds anyway, this is advisory only.
func (s *Song) EmptyName() bool {
	return len(s.Source.Name) == 0 || s.Source.Name[0] == 0
}

// WriteSong serializes the SONG chunk: the fixed little-endian header
// followed by the raw event stream.
func (s *Song) WriteSong(w io.Writer) error {
	buf := make([]byte, songHeaderSize)
	copy(buf[0:4], "SONG")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(songHeaderSize+len(s.Music)))

	name := formatSongName(s.Source.Name)
	copy(buf[8:40], name[:])

	offset := 40
	for i, sample := range s.Source.Samples {
		if sample.Length >= minSampleWords {
			ref := formatSampleName(i+1, sample.Name)
			copy(buf[offset:], ref[:])
			buf[offset+32] = sample.Finetune & 0x0F
			if sample.Volume < maxSampleVolume {
				buf[offset+33] = sample.Volume
			} else {
				buf[offset+33] = maxSampleVolume
			}
		}
		offset += sampleRefSize
	}

	offset += 2 // reserved u16, always 0
	binary.LittleEndian.PutUint32(buf[offset:], uint32(s.Source.NumChannels))
	binary.LittleEndian.PutUint32(buf[offset+4:], s.RestartPos)
	binary.LittleEndian.PutUint32(buf[offset+8:], uint32(len(s.Music)))

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "writing song header")
	}
	_, err := w.Write(s.Music)
	return errors.Wrap(err, "writing event stream")
}

// formatSongName copies the source name into the 32-byte song name field,
// truncated at the first NUL, control characters replaced with spaces.
func formatSongName(raw string) [nameFieldSize]byte {
	var out [nameFieldSize]byte
	name := truncateAtNul(raw)
	for i := 0; i < len(name) && i < nameFieldSize; i++ {
		out[i] = printable(name[i])
	}
	return out
}

// formatSampleName builds the 32-byte "NN:name" field shared by sample
// references and SMPL chunks, NN being the two-digit 1-based slot index.
func formatSampleName(index int, raw string) [nameFieldSize]byte {
	var out [nameFieldSize]byte
	out[0] = '0' + byte(index/10)
	out[1] = '0' + byte(index%10)
	out[2] = ':'
	name := truncateAtNul(raw)
	for i := 0; i < len(name) && 3+i < nameFieldSize; i++ {
		out[3+i] = printable(name[i])
	}
	return out
}

func truncateAtNul(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func printable(c byte) byte {
	if c > 0x00 && c < 0x20 {
		return ' '
	}
	return c
}
