package mus

import (
	"io"

	"github.com/pkg/errors"
)

// Decoder replays a compacted event stream row by row, reversing the
// run-length encoding. A leading byte below 0x80 starts a 4-byte event (note
// indices never reach 0x80); a leading byte of 0x80+n repeats the channel's
// previous event for n+1 rows.
//
// Rows the compactor dropped behind the effect-reuse flag are not
// recoverable from the stream alone (the flag lands on whatever byte was
// written last, which may legitimately carry its high bit); such rows are
// folded into their successor here.
type Decoder struct {
	data     []byte
	pos      int
	channels int
	last     []Event
	pending  []int
}

// NewDecoder prepares music, as produced by Convert, for decoding.
func NewDecoder(music []byte, channels int) *Decoder {
	return &Decoder{
		data:     music,
		channels: channels,
		last:     make([]Event, channels),
		pending:  make([]int, channels),
	}
}

// ReadRow returns the next row of events, one per channel. It returns io.EOF
// once the stream and all pending repeats are exhausted.
func (d *Decoder) ReadRow() ([]Event, error) {
	if !d.more() {
		return nil, io.EOF
	}
	row := make([]Event, d.channels)
	for ch := 0; ch < d.channels; ch++ {
		if d.pending[ch] > 0 {
			d.pending[ch]--
			row[ch] = d.last[ch]
			continue
		}
		if d.pos >= len(d.data) {
			// Stream ended mid-row; hold the channel's last event.
			row[ch] = d.last[ch]
			continue
		}
		b := d.data[d.pos]
		if b >= repeatMarker {
			d.pos++
			d.pending[ch] = int(b - repeatMarker)
			row[ch] = d.last[ch]
			continue
		}
		if d.pos+4 > len(d.data) {
			return nil, errors.New("truncated event stream")
		}
		ev := Event{
			Note:    d.data[d.pos],
			Instr:   d.data[d.pos+1],
			Command: d.data[d.pos+2],
			Param:   d.data[d.pos+3],
		}
		d.pos += 4
		d.last[ch] = ev
		row[ch] = ev
	}
	return row, nil
}

func (d *Decoder) more() bool {
	if d.pos < len(d.data) {
		return true
	}
	for _, n := range d.pending {
		if n > 0 {
			return true
		}
	}
	return false
}
