package midi

// Note is a MIDI note number (0-127) where 0 corresponds to C-2 and 127 to
// G8, so C4 is 72 (Yamaha convention).
type Note uint8

// NewNote creates a Note, clamping values above 127 down to 127.
func NewNote(v uint8) Note {
	return Note(clamp7(v))
}

// Value returns the note number.
func (n Note) Value() uint8 {
	return uint8(n)
}

// Named note constants for the 12-tone scale across the full MIDI range.
// Sharps use an "s" suffix; the two lowest octaves are named CMinus2/CMinus1.
const (
	CMinus2  Note = 0*12 + 0
	CsMinus2 Note = 0*12 + 1
	DMinus2  Note = 0*12 + 2
	DsMinus2 Note = 0*12 + 3
	EMinus2  Note = 0*12 + 4
	FMinus2  Note = 0*12 + 5
	FsMinus2 Note = 0*12 + 6
	GMinus2  Note = 0*12 + 7
	GsMinus2 Note = 0*12 + 8
	AMinus2  Note = 0*12 + 9
	AsMinus2 Note = 0*12 + 10
	BMinus2  Note = 0*12 + 11

	CMinus1  Note = 1*12 + 0
	CsMinus1 Note = 1*12 + 1
	DMinus1  Note = 1*12 + 2
	DsMinus1 Note = 1*12 + 3
	EMinus1  Note = 1*12 + 4
	FMinus1  Note = 1*12 + 5
	FsMinus1 Note = 1*12 + 6
	GMinus1  Note = 1*12 + 7
	GsMinus1 Note = 1*12 + 8
	AMinus1  Note = 1*12 + 9
	AsMinus1 Note = 1*12 + 10
	BMinus1  Note = 1*12 + 11

	C0  Note = 2*12 + 0
	Cs0 Note = 2*12 + 1
	D0  Note = 2*12 + 2
	Ds0 Note = 2*12 + 3
	E0  Note = 2*12 + 4
	F0  Note = 2*12 + 5
	Fs0 Note = 2*12 + 6
	G0  Note = 2*12 + 7
	Gs0 Note = 2*12 + 8
	A0  Note = 2*12 + 9
	As0 Note = 2*12 + 10
	B0  Note = 2*12 + 11

	C1  Note = 3*12 + 0
	Cs1 Note = 3*12 + 1
	D1  Note = 3*12 + 2
	Ds1 Note = 3*12 + 3
	E1  Note = 3*12 + 4
	F1  Note = 3*12 + 5
	Fs1 Note = 3*12 + 6
	G1  Note = 3*12 + 7
	Gs1 Note = 3*12 + 8
	A1  Note = 3*12 + 9
	As1 Note = 3*12 + 10
	B1  Note = 3*12 + 11

	C2  Note = 4*12 + 0
	Cs2 Note = 4*12 + 1
	D2  Note = 4*12 + 2
	Ds2 Note = 4*12 + 3
	E2  Note = 4*12 + 4
	F2  Note = 4*12 + 5
	Fs2 Note = 4*12 + 6
	G2  Note = 4*12 + 7
	Gs2 Note = 4*12 + 8
	A2  Note = 4*12 + 9
	As2 Note = 4*12 + 10
	B2  Note = 4*12 + 11

	C3  Note = 5*12 + 0
	Cs3 Note = 5*12 + 1
	D3  Note = 5*12 + 2
	Ds3 Note = 5*12 + 3
	E3  Note = 5*12 + 4
	F3  Note = 5*12 + 5
	Fs3 Note = 5*12 + 6
	G3  Note = 5*12 + 7
	Gs3 Note = 5*12 + 8
	A3  Note = 5*12 + 9
	As3 Note = 5*12 + 10
	B3  Note = 5*12 + 11

	C4  Note = 6*12 + 0
	Cs4 Note = 6*12 + 1
	D4  Note = 6*12 + 2
	Ds4 Note = 6*12 + 3
	E4  Note = 6*12 + 4
	F4  Note = 6*12 + 5
	Fs4 Note = 6*12 + 6
	G4  Note = 6*12 + 7
	Gs4 Note = 6*12 + 8
	A4  Note = 6*12 + 9
	As4 Note = 6*12 + 10
	B4  Note = 6*12 + 11

	C5  Note = 7*12 + 0
	Cs5 Note = 7*12 + 1
	D5  Note = 7*12 + 2
	Ds5 Note = 7*12 + 3
	E5  Note = 7*12 + 4
	F5  Note = 7*12 + 5
	Fs5 Note = 7*12 + 6
	G5  Note = 7*12 + 7
	Gs5 Note = 7*12 + 8
	A5  Note = 7*12 + 9
	As5 Note = 7*12 + 10
	B5  Note = 7*12 + 11

	C6  Note = 8*12 + 0
	Cs6 Note = 8*12 + 1
	D6  Note = 8*12 + 2
	Ds6 Note = 8*12 + 3
	E6  Note = 8*12 + 4
	F6  Note = 8*12 + 5
	Fs6 Note = 8*12 + 6
	G6  Note = 8*12 + 7
	Gs6 Note = 8*12 + 8
	A6  Note = 8*12 + 9
	As6 Note = 8*12 + 10
	B6  Note = 8*12 + 11

	C7  Note = 9*12 + 0
	Cs7 Note = 9*12 + 1
	D7  Note = 9*12 + 2
	Ds7 Note = 9*12 + 3
	E7  Note = 9*12 + 4
	F7  Note = 9*12 + 5
	Fs7 Note = 9*12 + 6
	G7  Note = 9*12 + 7
	Gs7 Note = 9*12 + 8
	A7  Note = 9*12 + 9
	As7 Note = 9*12 + 10
	B7  Note = 9*12 + 11

	C8  Note = 10*12 + 0
	Cs8 Note = 10*12 + 1
	D8  Note = 10*12 + 2
	Ds8 Note = 10*12 + 3
	E8  Note = 10*12 + 4
	F8  Note = 10*12 + 5
	Fs8 Note = 10*12 + 6
	G8  Note = 10*12 + 7
)
