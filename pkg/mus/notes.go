package mus

// protrackerPeriods holds three octaves of Amiga period values, strictly
// descending. Note index n (1-based) plays protrackerPeriods[n-1].
var protrackerPeriods = [36]uint16{
	856, 808, 762, 720, 678, 640, 604, 570, 538, 508, 480, 453,
	428, 404, 381, 360, 339, 320, 302, 285, 269, 254, 240, 226,
	214, 202, 190, 180, 170, 160, 151, 143, 135, 127, 120, 113,
}

// noNotePeriod is the "note off" sentinel some trackers write.
const noNotePeriod = 0xFFF

// QuantizeNote maps a 12-bit pitch period to a note index in [0, 36], where 0
// means no note. A period between two table entries snaps to whichever
// neighbour is closer; an exact midpoint falls to the lower-period entry.
// Periods below the table's smallest entry stay 0.
func QuantizeNote(period uint16) uint8 {
	if period == 0 || period == noNotePeriod {
		return 0
	}
	for i := 0; i < len(protrackerPeriods); i++ {
		if period < protrackerPeriods[i] {
			continue
		}
		if period != protrackerPeriods[i] && i != 0 {
			prev := protrackerPeriods[i-1]
			cur := protrackerPeriods[i]
			if prev-period < period-cur {
				return uint8(i)
			}
		}
		return uint8(i + 1)
	}
	return 0
}

// NotePeriod is the inverse lookup for playback: the period of note index n,
// or 0 for no note.
func NotePeriod(note uint8) uint16 {
	if note == 0 || int(note) > len(protrackerPeriods) {
		return 0
	}
	return protrackerPeriods[note-1]
}
