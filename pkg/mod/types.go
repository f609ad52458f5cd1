package mod

// SampleHeader is one of the 31 fixed sample descriptors in a MOD header.
// Name keeps the raw 22 bytes including any embedded NULs; length and loop
// fields count 16-bit words, as stored.
type SampleHeader struct {
	Name       string
	Length     uint16
	Finetune   uint8
	Volume     uint8
	LoopStart  uint16
	LoopLength uint16
}

// File is the parsed, fixed-size MOD header. Pattern and sample payloads stay
// in the underlying byte source and are pulled on demand.
type File struct {
	Name        string
	Samples     [31]SampleHeader
	NumOrders   uint8
	RestartPos  uint8
	Orders      [128]uint8
	Magic       string
	NumChannels int
}

// Cell is one channel's decoded 4-byte note/instrument/effect record for one
// row of one pattern.
type Cell struct {
	Period    uint16
	Sample    uint8
	Command   uint8
	Parameter uint8
}
