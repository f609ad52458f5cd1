package mus

// Event is one decoded, remapped row event for a single channel, in output
// field order.
type Event struct {
	Note    byte
	Instr   byte
	Command byte
	Param   byte
}

const (
	// unset is the sentinel for channel state fields before the first event.
	unset = 0xFF

	// repeatMarker is a fresh marker byte's value, standing for one repeat of
	// the previous full event. It is incremented in place up to maxMarker.
	repeatMarker = 0x80
	maxMarker    = 0xFF
)

// channelState remembers the last event written for one channel, plus the
// stream offset of its pending repeat marker. Offset 0 means none: the first
// bytes of the stream are always a full event, never a marker.
type channelState struct {
	last         Event
	markerOffset int
}

func newChannelStates(n int) []channelState {
	states := make([]channelState, n)
	for i := range states {
		states[i].last = Event{Note: unset, Instr: unset, Command: unset, Param: unset}
	}
	return states
}

// eventStream owns the compacted output bytes. It grows append-only except
// for the two mutation points the format allows: bumping a previously written
// repeat marker and flagging the most recently written byte.
type eventStream struct {
	data []byte
}

func (s *eventStream) Len() int {
	return len(s.data)
}

func (s *eventStream) Bytes() []byte {
	return s.data
}

func (s *eventStream) appendEvent(ev Event) {
	s.data = append(s.data, ev.Note, ev.Instr, ev.Command, ev.Param)
}

func (s *eventStream) appendMarker() int {
	offset := len(s.data)
	s.data = append(s.data, repeatMarker)
	return offset
}

// bumpMarker extends the run the marker at offset stands for; it reports
// false once the marker byte has saturated.
func (s *eventStream) bumpMarker(offset int) bool {
	if s.data[offset] < maxMarker {
		s.data[offset]++
		return true
	}
	return false
}

// flagLast sets the high bit of the most recently written byte, signalling
// the player to reuse the previous effect without a new event.
func (s *eventStream) flagLast() {
	s.data[len(s.data)-1] |= 0x80
}

// compact applies the two-tier compaction scheme to one channel's event,
// first match wins: extend or start a repeat run on a full match, flag
// effect reuse on a command/parameter match, otherwise append the full
// 4-byte event. The channel's recorded state only changes in the last case.
func (s *eventStream) compact(ev Event, state *channelState) {
	if ev == state.last {
		if state.markerOffset != 0 && s.bumpMarker(state.markerOffset) {
			return
		}
		state.markerOffset = s.appendMarker()
		return
	}
	state.markerOffset = 0

	if ev.Command == state.last.Command && ev.Param == state.last.Param {
		s.flagLast()
		return
	}

	s.appendEvent(ev)
	state.last = ev
}
