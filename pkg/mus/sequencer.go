package mus

import (
	"io"

	"github.com/sagamusix/mod2mus/pkg/mod"
)

// Song is the converted result: the source header it was built from, the
// compacted event stream and the restart offset into it.
type Song struct {
	Source     *mod.File
	RestartPos uint32
	Music      []byte
}

// TraceFunc observes each remapped row event in program order, before
// compaction. Channels of one row arrive consecutively starting at channel 0.
type TraceFunc func(order, row, channel int, ev Event)

// cursor tracks the sequencer's position in the order list. Control-flow
// directives rewrite it between rows instead of the loop variables.
type cursor struct {
	order     int
	resumeRow int
	jumpTo    int // pending jump target order, -1 when none
	truncate  bool
}

type sequencer struct {
	file    *mod.File
	rows    *mod.PatternReader
	states  []channelState
	music   eventStream
	restart uint32
	trace   TraceFunc
}

// Convert runs the single sequential pass that transcodes pattern data into
// the compacted MUS event stream. r must contain the whole MOD file and is
// only read from via seek-then-read.
func Convert(f *mod.File, r io.ReadSeeker) (*Song, error) {
	return ConvertTrace(f, r, nil)
}

// ConvertTrace is Convert with a trace callback; the preview player feeds on
// the uncompacted row events it reports.
func ConvertTrace(f *mod.File, r io.ReadSeeker, trace TraceFunc) (*Song, error) {
	seq := &sequencer{
		file:   f,
		rows:   mod.NewPatternReader(r, f),
		states: newChannelStates(f.NumChannels),
		trace:  trace,
	}
	if err := seq.run(); err != nil {
		return nil, err
	}
	return &Song{Source: f, RestartPos: seq.restart, Music: seq.music.Bytes()}, nil
}

func (s *sequencer) run() error {
	cur := cursor{jumpTo: -1}
	for cur.order < int(s.file.NumOrders) {
		if int(s.file.RestartPos) == cur.order {
			s.restart = uint32(s.music.Len())
		}

		pattern := int(s.file.Orders[cur.order])
		start := cur.resumeRow
		cur.resumeRow = 0
		cur.truncate = false

		for row := start; row < mod.RowsPerPattern && !cur.truncate; row++ {
			cells, err := s.rows.ReadRow(pattern, row)
			if err != nil {
				return err
			}
			for ch, cell := range cells {
				s.step(&cur, row, ch, cell)
			}
		}

		if cur.jumpTo >= 0 {
			cur.order = cur.jumpTo
			cur.jumpTo = -1
		} else {
			cur.order++
		}
	}
	return nil
}

// step remaps one cell, applies any control-flow directive to the cursor and
// feeds the event to the compactor. The row always finishes for all channels
// before a directive truncates the pattern.
func (s *sequencer) step(cur *cursor, row, ch int, cell mod.Cell) {
	command, param, dir := remapEffect(cell.Command, cell.Parameter)
	switch dir {
	case dirJump:
		// Forward jumps only; playback resumes at the order before the
		// encoded target. A backward target is ignored but still ends the
		// pattern.
		if int(cell.Parameter) > cur.order {
			cur.jumpTo = int(cell.Parameter) - 1
		}
		cur.resumeRow = 0
		cur.truncate = true
	case dirBreak:
		// TODO: the break's target row is discarded before use, so every
		// break resumes at row 0 of the next pattern; check against the
		// engines' player whether the encoded row should be honoured.
		cur.resumeRow = 0
		cur.truncate = true
	}

	ev := Event{
		Note:    QuantizeNote(cell.Period),
		Instr:   cell.Sample,
		Command: command,
		Param:   param,
	}
	if s.trace != nil {
		s.trace(cur.order, row, ch, ev)
	}
	s.music.compact(ev, &s.states[ch])
}
