package mod

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

// buildHeader assembles a minimal valid 1084-byte MOD header.
func buildHeader(magic string, numOrders uint8, orders []uint8) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf, "test module")
	buf[950] = numOrders
	buf[951] = 0x7F
	copy(buf[952:], orders)
	copy(buf[1080:], magic)
	return buf
}

func TestLoadHeaderSignatures(t *testing.T) {
	tests := []struct {
		magic    string
		channels int
	}{
		{"1CHN", 1},
		{"2CHN", 2},
		{"3CHN", 3},
		{"M.K.", 4},
	}
	for _, tt := range tests {
		t.Run(tt.magic, func(t *testing.T) {
			f, err := LoadHeader(bytes.NewReader(buildHeader(tt.magic, 1, nil)))
			if err != nil {
				t.Fatalf("LoadHeader: %v", err)
			}
			if f.NumChannels != tt.channels {
				t.Errorf("channels: got %d, want %d", f.NumChannels, tt.channels)
			}
			if f.Magic != tt.magic {
				t.Errorf("magic: got %q, want %q", f.Magic, tt.magic)
			}
		})
	}
}

func TestLoadHeaderBadSignature(t *testing.T) {
	_, err := LoadHeader(bytes.NewReader(buildHeader("6CHN", 1, nil)))
	if err != ErrBadSignature {
		t.Errorf("got %v, want ErrBadSignature", err)
	}
}

func TestLoadHeaderTooManyOrders(t *testing.T) {
	_, err := LoadHeader(bytes.NewReader(buildHeader("M.K.", 129, nil)))
	if err != ErrTooManyOrders {
		t.Errorf("got %v, want ErrTooManyOrders", err)
	}
}

func TestLoadHeaderShortInput(t *testing.T) {
	_, err := LoadHeader(bytes.NewReader(make([]byte, 500)))
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
	if errors.Cause(err) == ErrBadSignature || errors.Cause(err) == ErrTooManyOrders {
		t.Errorf("short read misclassified: %v", err)
	}
}

func TestLoadHeaderSampleDescriptors(t *testing.T) {
	buf := buildHeader("M.K.", 1, nil)
	// Second sample slot starts at offset 50.
	copy(buf[50:], "snare")
	buf[72], buf[73] = 0x12, 0x34 // length, big-endian words
	buf[74] = 0x05                // finetune
	buf[75] = 0x30                // volume
	buf[76], buf[77] = 0x00, 0x10 // loop start
	buf[78], buf[79] = 0x00, 0x20 // loop length

	f, err := LoadHeader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("LoadHeader: %v", err)
	}
	s := f.Samples[1]
	if got := s.Name[:5]; got != "snare" {
		t.Errorf("name: got %q", got)
	}
	if s.Length != 0x1234 {
		t.Errorf("length: got %#x, want 0x1234", s.Length)
	}
	if s.Finetune != 0x05 || s.Volume != 0x30 {
		t.Errorf("finetune/volume: got %#x/%#x", s.Finetune, s.Volume)
	}
	if s.LoopStart != 0x10 || s.LoopLength != 0x20 {
		t.Errorf("loop: got %#x/%#x", s.LoopStart, s.LoopLength)
	}
	if f.RestartPos != 0x7F {
		t.Errorf("restart: got %#x, want 0x7f", f.RestartPos)
	}
}

func TestNumPatterns(t *testing.T) {
	f := &File{NumOrders: 2}
	f.Orders[0] = 3
	f.Orders[1] = 1
	// Slots past NumOrders still count, out-of-range indices do not.
	f.Orders[5] = 7
	f.Orders[6] = 200
	if got := f.NumPatterns(); got != 8 {
		t.Errorf("got %d, want 8", got)
	}
}

func TestPatternReaderReadRow(t *testing.T) {
	f := &File{NumChannels: 2}
	f.Orders[0] = 0

	data := make([]byte, HeaderSize+f.PatternSize())
	// Pattern 0, row 1, channel 0: period 0x1AC, sample 0x13, cmd C.
	row1 := HeaderSize + 1*2*4
	copy(data[row1:], []byte{0x11, 0xAC, 0x3C, 0x42})
	// Channel 1: empty note, sample 2, position jump to 5.
	copy(data[row1+4:], []byte{0x00, 0x00, 0x2B, 0x05})

	pr := NewPatternReader(bytes.NewReader(data), f)
	cells, err := pr.ReadRow(0, 1)
	if err != nil {
		t.Fatalf("ReadRow: %v", err)
	}
	want0 := Cell{Period: 428, Sample: 0x13, Command: 0xC, Parameter: 0x42}
	if cells[0] != want0 {
		t.Errorf("channel 0: got %+v, want %+v", cells[0], want0)
	}
	want1 := Cell{Period: 0, Sample: 0x02, Command: 0xB, Parameter: 0x05}
	if cells[1] != want1 {
		t.Errorf("channel 1: got %+v, want %+v", cells[1], want1)
	}
}

func TestPatternReaderOutOfRange(t *testing.T) {
	f := &File{NumChannels: 1}
	data := make([]byte, HeaderSize+f.PatternSize())
	pr := NewPatternReader(bytes.NewReader(data), f)
	if _, err := pr.ReadRow(1, 0); err == nil {
		t.Error("expected error reading past stored patterns")
	}
}
