package mus

import (
	"testing"
)

func TestRemapEffect(t *testing.T) {
	tests := []struct {
		name      string
		command   byte
		param     byte
		wantCmd   byte
		wantParam byte
		wantDir   directive
	}{
		{"arpeggio", 0x0, 0x37, CmdArpeggio, 0x37, dirNone},
		{"arpeggio zero is no-op", 0x0, 0x00, CmdNone, 0x00, dirNone},
		{"porta up", 0x1, 0x05, CmdPortaUp, 0x05, dirNone},
		{"porta down", 0x2, 0x05, CmdPortaDown, 0x05, dirNone},
		{"tone porta", 0x3, 0x12, CmdTonePorta, 0x12, dirNone},
		{"vibrato", 0x4, 0xA4, CmdVibrato, 0xA4, dirNone},
		{"tone porta volslide", 0x5, 0x21, CmdTonePortaVol, 0x21, dirNone},
		{"vibrato volslide", 0x6, 0x12, CmdVibratoVol, 0x12, dirNone},
		{"tremolo", 0x7, 0x53, CmdTremolo, 0x53, dirNone},
		{"unused 8", 0x8, 0x7F, CmdNone, 0x00, dirNone},
		{"sample offset", 0x9, 0x20, CmdSampleOffset, 0x20, dirNone},
		{"volume slide", 0xA, 0xF0, CmdVolumeSlide, 0xF0, dirNone},
		{"position jump", 0xB, 0x05, CmdNone, 0x00, dirJump},
		{"set volume", 0xC, 0x40, CmdSetVolume, 0x40, dirNone},
		{"pattern break", 0xD, 0x32, CmdNone, 0x00, dirBreak},
		{"set speed", 0xF, 0x06, CmdSetSpeed, 0x06, dirNone},
		{"fine porta up", 0xE, 0x13, CmdFinePortaUp, 0x03, dirNone},
		{"fine porta down", 0xE, 0x2F, CmdFinePortaDown, 0x0F, dirNone},
		{"retrigger", 0xE, 0x91, CmdRetrigger, 0x01, dirNone},
		{"fine volslide up", 0xE, 0xA2, CmdFineVolUp, 0x02, dirNone},
		{"fine volslide down", 0xE, 0xB3, CmdFineVolDown, 0x03, dirNone},
		{"note cut", 0xE, 0xC4, CmdNoteCut, 0x04, dirNone},
		{"unmapped sub-code", 0xE, 0x55, CmdVolumeSlide, 0x00, dirNone},
		{"unmapped sub-code zero", 0xE, 0x05, CmdVolumeSlide, 0x00, dirNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, param, dir := remapEffect(tt.command, tt.param)
			if cmd != tt.wantCmd || param != tt.wantParam || dir != tt.wantDir {
				t.Errorf("remapEffect(%#x, %#x) = (%#x, %#x, %d), want (%#x, %#x, %d)",
					tt.command, tt.param, cmd, param, dir,
					tt.wantCmd, tt.wantParam, tt.wantDir)
			}
		})
	}
}

// The target command must not depend on the parameter value for the plain
// command nibbles.
func TestRemapEffectParamIndependent(t *testing.T) {
	for _, command := range []byte{0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x9, 0xA, 0xC, 0xF} {
		want, _, _ := remapEffect(command, 0)
		for param := 0; param < 256; param++ {
			got, gotParam, dir := remapEffect(command, byte(param))
			if got != want {
				t.Fatalf("command %#x param %#x: got command %#x, want %#x", command, param, got, want)
			}
			if gotParam != byte(param) {
				t.Fatalf("command %#x param %#x: parameter rewritten to %#x", command, param, gotParam)
			}
			if dir != dirNone {
				t.Fatalf("command %#x param %#x: unexpected directive %d", command, param, dir)
			}
		}
	}
}
