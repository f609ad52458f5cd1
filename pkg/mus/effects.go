package mus

// Target effect vocabulary understood by the game engines' music player.
const (
	CmdSetVolume     = 0x00
	CmdFineVolUp     = 0x01
	CmdFineVolDown   = 0x02
	CmdFinePortaUp   = 0x03
	CmdFinePortaDown = 0x04
	CmdSampleOffset  = 0x06
	CmdTonePorta     = 0x07
	CmdTonePortaVol  = 0x08
	CmdVibrato       = 0x09
	CmdVibratoVol    = 0x0A
	CmdArpeggio      = 0x0B
	CmdPortaUp       = 0x0C
	CmdPortaDown     = 0x0D
	CmdVolumeSlide   = 0x0E
	CmdRetrigger     = 0x0F
	CmdTremolo       = 0x10
	CmdNoteCut       = 0x11
	CmdSetSpeed      = 0x12
	CmdNone          = 0x14
)

// directive tells the sequencer how a row's effect redirects control flow.
type directive int

const (
	dirNone  directive = iota
	dirJump            // resume at a later order-list index
	dirBreak           // start the next order entry early
)

// remapEffect translates a source (command, parameter) pair into the target
// vocabulary. Jump and break rows are emitted with the no-op command and a
// zeroed parameter; the jump target is taken from the raw cell by the
// sequencer. Unmapped commands become the no-op with parameter 0.
func remapEffect(command, param byte) (byte, byte, directive) {
	switch command {
	case 0x0:
		if param != 0 {
			return CmdArpeggio, param, dirNone
		}
		return CmdNone, 0, dirNone
	case 0x1:
		return CmdPortaUp, param, dirNone
	case 0x2:
		return CmdPortaDown, param, dirNone
	case 0x3:
		return CmdTonePorta, param, dirNone
	case 0x4:
		return CmdVibrato, param, dirNone
	case 0x5:
		return CmdTonePortaVol, param, dirNone
	case 0x6:
		return CmdVibratoVol, param, dirNone
	case 0x7:
		return CmdTremolo, param, dirNone
	case 0x9:
		return CmdSampleOffset, param, dirNone
	case 0xA:
		return CmdVolumeSlide, param, dirNone
	case 0xB:
		return CmdNone, 0, dirJump
	case 0xC:
		return CmdSetVolume, param, dirNone
	case 0xD:
		return CmdNone, 0, dirBreak
	case 0xE:
		return remapExtended(param)
	case 0xF:
		return CmdSetSpeed, param, dirNone
	default:
		return CmdNone, 0, dirNone
	}
}

// remapExtended dispatches the 0xE command family on the parameter's high
// nibble; matched sub-codes keep only the low nibble as parameter.
func remapExtended(param byte) (byte, byte, directive) {
	low := param & 0x0F
	switch param >> 4 {
	case 0x1:
		return CmdFinePortaUp, low, dirNone
	case 0x2:
		return CmdFinePortaDown, low, dirNone
	case 0x9:
		return CmdRetrigger, low, dirNone
	case 0xA:
		return CmdFineVolUp, low, dirNone
	case 0xB:
		return CmdFineVolDown, low, dirNone
	case 0xC:
		return CmdNoteCut, low, dirNone
	default:
		return CmdVolumeSlide, 0, dirNone
	}
}
