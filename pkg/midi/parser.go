package midi

// parserState tracks which message is in flight and how many of its data
// bytes have arrived. The pending channel and any first data byte live in
// the Parser alongside the state.
type parserState int

const (
	idle parserState = iota

	noteOffStatus
	noteOffNote

	noteOnStatus
	noteOnNote

	keyPressureStatus
	keyPressureNote

	controlChangeStatus
	controlChangeControl

	programChangeStatus

	channelPressureStatus

	pitchBendStatus
	pitchBendLsb

	quarterFrameStatus

	songPositionStatus
	songPositionLsb

	songSelectStatus
)

// Parser reassembles MIDI messages from a stream of bytes delivered one at a
// time, such as a serial or USB receive callback. It understands running
// status and lets real time messages interleave with a message in progress.
//
// A Parser owns only a few bytes of state and never allocates. It is not safe
// for concurrent use; each byte stream needs its own instance fed in
// transmission order.
type Parser struct {
	state   parserState
	channel Channel
	first   uint8
}

// NewParser creates a Parser awaiting its first status byte.
func NewParser() *Parser {
	return &Parser{state: idle}
}

// Reset discards any message in progress and returns the parser to its
// initial state. The stream itself does the equivalent whenever a channel
// voice or system common status byte arrives.
func (p *Parser) Reset() {
	p.state = idle
}

// ParseByte advances the parser by one input byte. It returns a non-nil
// Message only when that byte completes one.
//
// Malformed input is absorbed rather than reported: reserved status bytes,
// SysEx payloads and data bytes with no governing status are dropped, and any
// new status byte cleanly abandons a stale partial message. The next valid
// status byte always resynchronizes the stream.
func (p *Parser) ParseByte(b byte) Message {
	if b&0x80 == 0 {
		return p.parseDataByte(b)
	}
	if b&0xf0 == 0xf0 {
		return p.parseSystemStatus(b)
	}

	// Channel voice status: start fresh, abandoning anything in progress.
	p.channel = NewChannel(b & 0x0f)
	switch b & 0xf0 {
	case StatusNoteOff:
		p.state = noteOffStatus
	case StatusNoteOn:
		p.state = noteOnStatus
	case StatusKeyPressure:
		p.state = keyPressureStatus
	case StatusControlChange:
		p.state = controlChangeStatus
	case StatusProgramChange:
		p.state = programChangeStatus
	case StatusChannelPressure:
		p.state = channelPressureStatus
	case StatusPitchBendChange:
		p.state = pitchBendStatus
	}
	return nil
}

// parseSystemStatus handles 0xF0-0xFF. Real time bytes (0xF8-0xFF) pass
// through without touching the saved state, so they transparently interrupt
// and resume a message in progress. System common bytes discard it.
func (p *Parser) parseSystemStatus(b byte) Message {
	switch b {
	case StatusSysExStart:
		// Payload bytes that follow are dropped as governorless data.
		p.state = idle
		return nil
	case StatusQuarterFrame:
		p.state = quarterFrameStatus
		return nil
	case StatusSongPositionPointer:
		p.state = songPositionStatus
		return nil
	case StatusSongSelect:
		p.state = songSelectStatus
		return nil
	case StatusTuneRequest:
		p.state = idle
		return TuneRequest{}
	case StatusSysExEnd:
		p.state = idle
		return nil

	case StatusTimingClock:
		return TimingClock{}
	case StatusStart:
		return Start{}
	case StatusContinue:
		return Continue{}
	case StatusStop:
		return Stop{}
	case StatusActiveSensing:
		return ActiveSensing{}
	case StatusReset:
		return Reset{}
	case 0xF9, 0xFD:
		// Reserved real time, discarded without disturbing state.
		return nil

	default:
		// 0xF4 and 0xF5, undefined system common.
		p.state = idle
		return nil
	}
}

// parseDataByte dispatches a data byte on the current state. Completing a
// three byte message steps back to its "status received" state rather than
// idle, which is what makes running status work: further data byte pairs keep
// producing messages of the same type and channel.
func (p *Parser) parseDataByte(b byte) Message {
	switch p.state {
	case noteOffStatus:
		p.state = noteOffNote
		p.first = b
		return nil
	case noteOffNote:
		p.state = noteOffStatus
		return NoteOff{Channel: p.channel, Note: NewNote(p.first), Velocity: NewValue7(b)}

	case noteOnStatus:
		p.state = noteOnNote
		p.first = b
		return nil
	case noteOnNote:
		p.state = noteOnStatus
		return NoteOn{Channel: p.channel, Note: NewNote(p.first), Velocity: NewValue7(b)}

	case keyPressureStatus:
		p.state = keyPressureNote
		p.first = b
		return nil
	case keyPressureNote:
		p.state = keyPressureStatus
		return KeyPressure{Channel: p.channel, Note: NewNote(p.first), Pressure: NewValue7(b)}

	case controlChangeStatus:
		p.state = controlChangeControl
		p.first = b
		return nil
	case controlChangeControl:
		p.state = controlChangeStatus
		return ControlChange{Channel: p.channel, Control: NewControl(p.first), Value: NewValue7(b)}

	case programChangeStatus:
		return ProgramChange{Channel: p.channel, Program: NewProgram(b)}

	case channelPressureStatus:
		return ChannelPressure{Channel: p.channel, Pressure: NewValue7(b)}

	case pitchBendStatus:
		p.state = pitchBendLsb
		p.first = b
		return nil
	case pitchBendLsb:
		p.state = pitchBendStatus
		return PitchBendChange{Channel: p.channel, Bend: NewValue14(b, p.first)}

	case quarterFrameStatus:
		return QuarterFrame{Value: NewQuarterFrameValue(b)}

	case songPositionStatus:
		p.state = songPositionLsb
		p.first = b
		return nil
	case songPositionLsb:
		p.state = songPositionStatus
		return SongPositionPointer{Position: NewValue14(b, p.first)}

	case songSelectStatus:
		return SongSelect{Song: NewValue7(b)}

	default:
		// Data byte with no governing status, dropped.
		return nil
	}
}
