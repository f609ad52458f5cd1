package mus

import (
	"testing"
)

func TestQuantizeNoteExact(t *testing.T) {
	for i, period := range protrackerPeriods {
		if got := QuantizeNote(period); got != uint8(i+1) {
			t.Errorf("period %d: got note %d, want %d", period, got, i+1)
		}
	}
}

func TestQuantizeNoteSentinels(t *testing.T) {
	if got := QuantizeNote(0); got != 0 {
		t.Errorf("period 0: got note %d, want 0", got)
	}
	if got := QuantizeNote(0xFFF); got != 0 {
		t.Errorf("period 0xFFF: got note %d, want 0", got)
	}
}

func TestQuantizeNoteOutOfRange(t *testing.T) {
	// Above the highest period everything clamps to the first note.
	for _, period := range []uint16{857, 900, 0xFFE} {
		if got := QuantizeNote(period); got != 1 {
			t.Errorf("period %d: got note %d, want 1", period, got)
		}
	}
	// Below the lowest table entry no note matches.
	for _, period := range []uint16{112, 60, 1} {
		if got := QuantizeNote(period); got != 0 {
			t.Errorf("period %d: got note %d, want 0", period, got)
		}
	}
}

func TestQuantizeNoteNearest(t *testing.T) {
	tests := []struct {
		period uint16
		want   uint8
	}{
		{850, 1},  // 6 away from 856, 42 from 808
		{833, 1},  // 23 away from 856, 25 from 808
		{832, 2},  // exact midpoint falls to the lower period
		{830, 2},  // 26 away from 856, 22 from 808
		{810, 2},  // nearly exact
		{445, 12}, // 8 away from 453, 17 from 428
		{440, 13}, // 13 away from 453, 12 from 428
		{114, 36}, // just above the last entry
	}
	for _, tt := range tests {
		if got := QuantizeNote(tt.period); got != tt.want {
			t.Errorf("period %d: got note %d, want %d", tt.period, got, tt.want)
		}
	}
}

func TestNotePeriodRoundTrip(t *testing.T) {
	if got := NotePeriod(0); got != 0 {
		t.Errorf("note 0: got period %d, want 0", got)
	}
	if got := NotePeriod(37); got != 0 {
		t.Errorf("note 37: got period %d, want 0", got)
	}
	for note := uint8(1); note <= 36; note++ {
		if got := QuantizeNote(NotePeriod(note)); got != note {
			t.Errorf("note %d: round trip gave %d", note, got)
		}
	}
}
