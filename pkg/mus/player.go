package mus

import (
	"github.com/sagamusix/mod2mus/pkg/mod"
)

// palClock is the PAL Amiga clock the period values are relative to.
const palClock = 3546895

// Player renders a transcoded row stream through the source module's sample
// data, approximating what the target engines do with a converted song. It
// honours note pitch, instrument triggers, set volume and set speed; the
// finer effects are accepted but not synthesized. Preview quality only.
type Player struct {
	SampleRate uint32

	rows       [][]Event
	file       *mod.File
	pcm        [31][]int8
	chans      []playChannel
	row        int
	restartRow int

	speed            uint32
	tick             uint32
	tickSample       uint32
	samplesPerTick   uint32
	ticksPerOutputHz float32

	left, right float32
}

type playChannel struct {
	Muted bool

	sample uint8
	period uint32
	pos    float32
	size   uint32
	volume float32
}

// NewPlayer builds a preview player over the uncompacted row events reported
// by ConvertTrace and the PCM loaded from the source module. restartRow is
// the row index looped playback resumes at.
func NewPlayer(sampleRate uint32, f *mod.File, rows [][]Event, pcm [31][]int8, restartRow int) *Player {
	if restartRow < 0 || restartRow >= len(rows) {
		restartRow = 0
	}
	return &Player{
		SampleRate:       sampleRate,
		rows:             rows,
		file:             f,
		pcm:              pcm,
		chans:            make([]playChannel, f.NumChannels),
		row:              -1,
		restartRow:       restartRow,
		speed:            6,
		tick:             6,
		samplesPerTick:   sampleRate / 50,
		tickSample:       sampleRate / 50,
		ticksPerOutputHz: float32(palClock) / float32(sampleRate),
	}
}

// Row is the index of the row currently playing.
func (p *Player) Row() int {
	if p.row < 0 {
		return 0
	}
	return p.row
}

// NumRows is the total row count of the transcoded song.
func (p *Player) NumRows() int {
	return len(p.rows)
}

// RowEvents returns the events of one row, or nil when idx is out of range.
func (p *Player) RowEvents(idx int) []Event {
	if idx < 0 || idx >= len(p.rows) {
		return nil
	}
	return p.rows[idx]
}

// ToggleMute flips one channel's mute state.
func (p *Player) ToggleMute(channel int) {
	if channel >= 0 && channel < len(p.chans) {
		p.chans[channel].Muted = !p.chans[channel].Muted
	}
}

// Levels returns the most recent stereo output values.
func (p *Player) Levels() (float32, float32) {
	return p.left, p.right
}

// playRow applies one row of events to the channel states.
func (p *Player) playRow(row []Event) {
	for ch := range row {
		ev := row[ch]
		channel := &p.chans[ch]

		if ev.Instr > 0 && int(ev.Instr) <= len(p.file.Samples) {
			sample := p.file.Samples[ev.Instr-1]
			channel.sample = ev.Instr
			channel.volume = float32(sample.Volume)
			channel.size = uint32(sample.Length) * 2
		}
		if ev.Note > 0 {
			channel.period = uint32(NotePeriod(ev.Note))
			channel.pos = 0
			if channel.sample > 0 {
				channel.size = uint32(p.file.Samples[channel.sample-1].Length) * 2
			}
		}

		switch ev.Command {
		case CmdSetVolume:
			vol := float32(ev.Param)
			if vol > 64 {
				vol = 64
			}
			channel.volume = vol
		case CmdSampleOffset:
			if ev.Note > 0 && channel.sample > 0 {
				channel.pos = float32(uint32(ev.Param) << 8)
				if uint32(channel.pos) >= channel.size && channel.size > 0 {
					channel.pos = float32(uint32(channel.pos) % channel.size)
				}
			}
		case CmdSetSpeed:
			if ev.Param > 0 && ev.Param <= 31 {
				p.speed = uint32(ev.Param)
			}
		}
	}
}

// nextSample advances playback by one output sample and mixes all channels.
func (p *Player) nextSample() (left, right float32) {
	if p.tickSample >= p.samplesPerTick {
		p.tickSample = 0
		p.tick++
		if p.tick >= p.speed {
			p.tick = 0
			p.row++
			if p.row >= len(p.rows) {
				p.row = p.restartRow
			}
			p.playRow(p.rows[p.row])
		}
	}
	p.tickSample++

	for ch := range p.chans {
		channel := &p.chans[ch]
		if channel.sample == 0 || channel.period == 0 || channel.size <= 2 {
			continue
		}
		sample := p.file.Samples[channel.sample-1]
		data := p.pcm[channel.sample-1]
		if len(data) == 0 {
			continue
		}

		if channel.pos >= float32(channel.size) {
			if sample.LoopLength > 1 {
				overflow := channel.pos - float32(channel.size)
				channel.pos = float32(uint32(sample.LoopStart)*2) + overflow
				channel.size = uint32(sample.LoopStart+sample.LoopLength) * 2
				if channel.size <= 2 {
					continue
				}
			} else {
				channel.period = 0
				continue
			}
		}
		if int(channel.pos) >= len(data) {
			continue
		}

		value := float32(data[int(channel.pos)]) / 128 * channel.volume / 64
		channel.pos += p.ticksPerOutputHz / float32(channel.period)

		if channel.Muted {
			continue
		}

		// Amiga-style panning with a little bleed.
		if ch%4 == 0 || ch%4 == 3 {
			left += value
			right += value * 0.33
		} else {
			right += value
			left += value * 0.33
		}
	}
	p.left, p.right = left, right
	return left, right
}

// Stream fills samples for the speaker; playback loops at the restart row
// and never ends on its own.
func (p *Player) Stream(samples [][2]float32) (n int, ok bool) {
	if len(p.rows) == 0 {
		return 0, false
	}
	for idx := range samples {
		left, right := p.nextSample()
		samples[idx][0] = left
		samples[idx][1] = right
	}
	return len(samples), true
}

// Err implements speaker.Streamer.
func (p *Player) Err() error {
	return nil
}
