package speaker

// Ripped out of https://github.com/faiface/beep

import (
	"sync"

	"github.com/hajimehoshi/oto"
	"github.com/pkg/errors"
)

// Streamer provides the interface to stream samples.
type Streamer interface {
	Stream(samples [][2]float32) (n int, ok bool)
	Err() error
}

var (
	mu       sync.Mutex
	samples  [][2]float32
	buf      []byte
	context  *oto.Context
	player   *oto.Player
	done     chan struct{}
	streamer Streamer
	callback func()
)

// Init initializes audio playback through the speaker. Must be called before
// using this package.
//
// bufferSize is the speaker buffer length in samples: bigger means lower CPU
// usage and more reliable playback, smaller means less delay.
func Init(sampleRate uint32, bufferSize uint32) error {
	mu.Lock()
	defer mu.Unlock()

	Close()

	numBytes := int(bufferSize * 4)
	samples = make([][2]float32, bufferSize)
	buf = make([]byte, numBytes)

	var err error
	context, err = oto.NewContext(int(sampleRate), 2, 2, numBytes)
	if err != nil {
		return errors.Wrap(err, "initialising speaker")
	}
	player = context.NewPlayer()

	done = make(chan struct{})

	go func() {
		for {
			select {
			default:
				update()
			case <-done:
				return
			}
		}
	}()

	return nil
}

// Close shuts the audio device down.
func Close() {
	if player != nil {
		if done != nil {
			done <- struct{}{}
			done = nil
		}
		player.Close()
		context.Close()
		player = nil
	}
}

// Play streams s to the device; cb, if non-nil, runs once s reports the end
// of the stream.
func Play(s Streamer, cb func()) {
	mu.Lock()
	streamer = s
	callback = cb
	mu.Unlock()
}

func update() {
	mu.Lock()
	s, cb := streamer, callback
	mu.Unlock()

	if s == nil {
		return
	}

	numSamples, ok := s.Stream(samples)
	if !ok {
		Close()
		if cb != nil {
			cb()
		}
		return
	}

	for i := 0; i < numSamples; i++ {
		for c := range samples[i] {
			val := samples[i][c]
			if val < -1 {
				val = -1
			}
			if val > +1 {
				val = +1
			}
			valInt16 := int16(val * (1<<15 - 1))
			buf[i*4+c*2+0] = byte(valInt16)
			buf[i*4+c*2+1] = byte(valInt16 >> 8)
		}
	}

	player.Write(buf[:numSamples*4])
}
