package midi

// Status byte constants. Channel voice statuses carry the channel in the low
// nibble; the values here are the high-nibble form with channel 0.
const (
	StatusNoteOff             = 0x80
	StatusNoteOn              = 0x90
	StatusKeyPressure         = 0xA0
	StatusControlChange       = 0xB0
	StatusProgramChange       = 0xC0
	StatusChannelPressure     = 0xD0
	StatusPitchBendChange     = 0xE0
	StatusSysExStart          = 0xF0
	StatusQuarterFrame        = 0xF1
	StatusSongPositionPointer = 0xF2
	StatusSongSelect          = 0xF3
	StatusTuneRequest         = 0xF6
	StatusSysExEnd            = 0xF7
	StatusTimingClock         = 0xF8
	StatusStart               = 0xFA
	StatusContinue            = 0xFB
	StatusStop                = 0xFC
	StatusActiveSensing       = 0xFE
	StatusReset               = 0xFF
)

// Message is one complete MIDI channel voice or system message. All variants
// are small comparable value types holding only validated primitives.
//
// Channel voice: NoteOff, NoteOn, KeyPressure, ControlChange, ProgramChange,
// ChannelPressure, PitchBendChange.
// System common: QuarterFrame, SongPositionPointer, SongSelect, TuneRequest.
// System real time: TimingClock, Start, Continue, Stop, ActiveSensing, Reset.
type Message interface {
	// Len returns the rendered length in bytes, including the status byte.
	Len() int
}

// NoteOff releases a note.
type NoteOff struct {
	Channel  Channel
	Note     Note
	Velocity Value7
}

// NoteOn sounds a note. A velocity of zero is delivered as-is; interpreting
// it as a note off is up to the caller.
type NoteOn struct {
	Channel  Channel
	Note     Note
	Velocity Value7
}

// KeyPressure is polyphonic aftertouch for a single note.
type KeyPressure struct {
	Channel  Channel
	Note     Note
	Pressure Value7
}

// ControlChange sets a controller value.
type ControlChange struct {
	Channel Channel
	Control Control
	Value   Value7
}

// ProgramChange selects a program (preset).
type ProgramChange struct {
	Channel Channel
	Program Program
}

// ChannelPressure is channel-wide aftertouch.
type ChannelPressure struct {
	Channel  Channel
	Pressure Value7
}

// PitchBendChange moves the pitch bend wheel.
type PitchBendChange struct {
	Channel Channel
	Bend    Value14
}

// QuarterFrame carries one nibble of MIDI time code.
type QuarterFrame struct {
	Value QuarterFrameValue
}

// SongPositionPointer sets the playback position in MIDI beats.
type SongPositionPointer struct {
	Position Value14
}

// SongSelect chooses which song or sequence is to be played.
type SongSelect struct {
	Song Value7
}

// TuneRequest asks analog synthesizers to tune their oscillators.
type TuneRequest struct{}

// TimingClock is the 24-per-quarter-note sync tick.
type TimingClock struct{}

// Start begins playback from the top.
type Start struct{}

// Continue resumes playback from the current position.
type Continue struct{}

// Stop halts playback.
type Stop struct{}

// ActiveSensing is the keep-alive sent by some devices every 300ms.
type ActiveSensing struct{}

// Reset asks receivers to return to their power-up state.
type Reset struct{}

func (NoteOff) Len() int             { return 3 }
func (NoteOn) Len() int              { return 3 }
func (KeyPressure) Len() int         { return 3 }
func (ControlChange) Len() int       { return 3 }
func (PitchBendChange) Len() int     { return 3 }
func (SongPositionPointer) Len() int { return 3 }
func (ProgramChange) Len() int       { return 2 }
func (ChannelPressure) Len() int     { return 2 }
func (QuarterFrame) Len() int        { return 2 }
func (SongSelect) Len() int          { return 2 }
func (TuneRequest) Len() int         { return 1 }
func (TimingClock) Len() int         { return 1 }
func (Start) Len() int               { return 1 }
func (Continue) Len() int            { return 1 }
func (Stop) Len() int                { return 1 }
func (ActiveSensing) Len() int       { return 1 }
func (Reset) Len() int               { return 1 }
