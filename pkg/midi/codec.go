package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooShort is returned by Render when the destination buffer is
	// smaller than the message, and by Parse when the buffer ends before the
	// message does.
	ErrBufferTooShort = errors.New("buffer too short")

	// ErrMessageNotFound is returned by Parse when the first byte is not a
	// recognized status byte.
	ErrMessageNotFound = errors.New("no message found")
)

// Render writes the wire encoding of msg into buf and returns the number of
// bytes written, which always equals msg.Len(). It fails with
// ErrBufferTooShort when buf cannot hold the whole message; bytes beyond the
// returned count are never touched.
func Render(msg Message, buf []byte) (int, error) {
	n := msg.Len()
	if len(buf) < n {
		return 0, fmt.Errorf("rendering %d byte message into %d byte buffer: %w", n, len(buf), ErrBufferTooShort)
	}

	switch m := msg.(type) {
	case NoteOff:
		buf[0] = StatusNoteOff | m.Channel.Value()
		buf[1] = m.Note.Value()
		buf[2] = m.Velocity.Value()
	case NoteOn:
		buf[0] = StatusNoteOn | m.Channel.Value()
		buf[1] = m.Note.Value()
		buf[2] = m.Velocity.Value()
	case KeyPressure:
		buf[0] = StatusKeyPressure | m.Channel.Value()
		buf[1] = m.Note.Value()
		buf[2] = m.Pressure.Value()
	case ControlChange:
		buf[0] = StatusControlChange | m.Channel.Value()
		buf[1] = m.Control.Value()
		buf[2] = m.Value.Value()
	case ProgramChange:
		buf[0] = StatusProgramChange | m.Channel.Value()
		buf[1] = m.Program.Value()
	case ChannelPressure:
		buf[0] = StatusChannelPressure | m.Channel.Value()
		buf[1] = m.Pressure.Value()
	case PitchBendChange:
		msb, lsb := m.Bend.Bytes()
		buf[0] = StatusPitchBendChange | m.Channel.Value()
		buf[1] = lsb
		buf[2] = msb
	case QuarterFrame:
		buf[0] = StatusQuarterFrame
		buf[1] = m.Value.Value()
	case SongPositionPointer:
		msb, lsb := m.Position.Bytes()
		buf[0] = StatusSongPositionPointer
		buf[1] = lsb
		buf[2] = msb
	case SongSelect:
		buf[0] = StatusSongSelect
		buf[1] = m.Song.Value()
	case TuneRequest:
		buf[0] = StatusTuneRequest
	case TimingClock:
		buf[0] = StatusTimingClock
	case Start:
		buf[0] = StatusStart
	case Continue:
		buf[0] = StatusContinue
	case Stop:
		buf[0] = StatusStop
	case ActiveSensing:
		buf[0] = StatusActiveSensing
	case Reset:
		buf[0] = StatusReset
	default:
		return 0, fmt.Errorf("rendering %T: %w", msg, ErrMessageNotFound)
	}

	return n, nil
}

// Parse decodes one complete, already-framed message from the start of buf.
// It fails with ErrBufferTooShort when buf is empty or ends before the
// message's data bytes do, and with ErrMessageNotFound when the first byte is
// not a known status byte. For channel voice messages the channel is
// recovered from the low nibble of the status byte.
func Parse(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("parsing empty buffer: %w", ErrBufferTooShort)
	}

	status := buf[0]
	if status&0x80 == 0 {
		return nil, fmt.Errorf("data byte 0x%02X where a status byte is expected: %w", status, ErrMessageNotFound)
	}
	if status >= 0xF0 {
		return parseSystem(status, buf)
	}

	channel := NewChannel(status & 0x0f)
	data, err := dataBytes(buf, channelVoiceLen(status&0xf0))
	if err != nil {
		return nil, err
	}

	switch status & 0xf0 {
	case StatusNoteOff:
		return NoteOff{Channel: channel, Note: NewNote(data[0]), Velocity: NewValue7(data[1])}, nil
	case StatusNoteOn:
		return NoteOn{Channel: channel, Note: NewNote(data[0]), Velocity: NewValue7(data[1])}, nil
	case StatusKeyPressure:
		return KeyPressure{Channel: channel, Note: NewNote(data[0]), Pressure: NewValue7(data[1])}, nil
	case StatusControlChange:
		return ControlChange{Channel: channel, Control: NewControl(data[0]), Value: NewValue7(data[1])}, nil
	case StatusProgramChange:
		return ProgramChange{Channel: channel, Program: NewProgram(data[0])}, nil
	case StatusChannelPressure:
		return ChannelPressure{Channel: channel, Pressure: NewValue7(data[0])}, nil
	case StatusPitchBendChange:
		return PitchBendChange{Channel: channel, Bend: NewValue14(data[1], data[0])}, nil
	default:
		return nil, fmt.Errorf("status byte 0x%02X: %w", status, ErrMessageNotFound)
	}
}

func parseSystem(status byte, buf []byte) (Message, error) {
	switch status {
	case StatusQuarterFrame:
		data, err := dataBytes(buf, 1)
		if err != nil {
			return nil, err
		}
		return QuarterFrame{Value: NewQuarterFrameValue(data[0])}, nil
	case StatusSongPositionPointer:
		data, err := dataBytes(buf, 2)
		if err != nil {
			return nil, err
		}
		return SongPositionPointer{Position: NewValue14(data[1], data[0])}, nil
	case StatusSongSelect:
		data, err := dataBytes(buf, 1)
		if err != nil {
			return nil, err
		}
		return SongSelect{Song: NewValue7(data[0])}, nil
	case StatusTuneRequest:
		return TuneRequest{}, nil
	case StatusTimingClock:
		return TimingClock{}, nil
	case StatusStart:
		return Start{}, nil
	case StatusContinue:
		return Continue{}, nil
	case StatusStop:
		return Stop{}, nil
	case StatusActiveSensing:
		return ActiveSensing{}, nil
	case StatusReset:
		return Reset{}, nil
	default:
		// 0xF0/0xF7 frame SysEx payloads, which are not modeled as
		// messages; 0xF4, 0xF5, 0xF9 and 0xFD are reserved.
		return nil, fmt.Errorf("status byte 0x%02X: %w", status, ErrMessageNotFound)
	}
}

func channelVoiceLen(statusNibble byte) int {
	switch statusNibble {
	case StatusProgramChange, StatusChannelPressure:
		return 1
	default:
		return 2
	}
}

func dataBytes(buf []byte, n int) ([]byte, error) {
	if len(buf) < 1+n {
		return nil, fmt.Errorf("status 0x%02X wants %d data byte(s), buffer holds %d: %w",
			buf[0], n, len(buf)-1, ErrBufferTooShort)
	}
	return buf[1 : 1+n], nil
}
