package wire

import (
	"strconv"

	"github.com/james-see/midiwire/pkg/midi"
)

// Spec describes one message to encode, as submitted over JSON. Only the
// fields relevant to Type are read; numeric inputs beyond the MIDI ranges are
// saturated by the value constructors, never rejected.
type Spec struct {
	Type     string `json:"type"`
	Channel  uint8  `json:"channel"`
	Note     uint8  `json:"note"`
	Velocity uint8  `json:"velocity"`
	Pressure uint8  `json:"pressure"`
	Control  uint8  `json:"control"`
	Value    uint8  `json:"value"`
	Program  uint8  `json:"program"`
	Bend     int16  `json:"bend"`
	Position uint16 `json:"position"`
	Song     uint8  `json:"song"`
}

// Message builds the midi.Message the spec describes. It fails only on an
// unknown type name.
func (s Spec) Message() (midi.Message, error) {
	switch s.Type {
	case "NoteOff":
		return midi.NoteOff{
			Channel:  midi.NewChannel(s.Channel),
			Note:     midi.NewNote(s.Note),
			Velocity: midi.NewValue7(s.Velocity),
		}, nil
	case "NoteOn":
		return midi.NoteOn{
			Channel:  midi.NewChannel(s.Channel),
			Note:     midi.NewNote(s.Note),
			Velocity: midi.NewValue7(s.Velocity),
		}, nil
	case "KeyPressure":
		return midi.KeyPressure{
			Channel:  midi.NewChannel(s.Channel),
			Note:     midi.NewNote(s.Note),
			Pressure: midi.NewValue7(s.Pressure),
		}, nil
	case "ControlChange":
		return midi.ControlChange{
			Channel: midi.NewChannel(s.Channel),
			Control: midi.NewControl(s.Control),
			Value:   midi.NewValue7(s.Value),
		}, nil
	case "ProgramChange":
		return midi.ProgramChange{
			Channel: midi.NewChannel(s.Channel),
			Program: midi.NewProgram(s.Program),
		}, nil
	case "ChannelPressure":
		return midi.ChannelPressure{
			Channel:  midi.NewChannel(s.Channel),
			Pressure: midi.NewValue7(s.Pressure),
		}, nil
	case "PitchBendChange":
		return midi.PitchBendChange{
			Channel: midi.NewChannel(s.Channel),
			Bend:    midi.Value14FromInt16(s.Bend),
		}, nil
	case "QuarterFrame":
		return midi.QuarterFrame{Value: midi.NewQuarterFrameValue(s.Value)}, nil
	case "SongPositionPointer":
		return midi.SongPositionPointer{Position: midi.Value14FromUint16(s.Position)}, nil
	case "SongSelect":
		return midi.SongSelect{Song: midi.NewValue7(s.Song)}, nil
	case "TuneRequest":
		return midi.TuneRequest{}, nil
	case "TimingClock":
		return midi.TimingClock{}, nil
	case "Start":
		return midi.Start{}, nil
	case "Continue":
		return midi.Continue{}, nil
	case "Stop":
		return midi.Stop{}, nil
	case "ActiveSensing":
		return midi.ActiveSensing{}, nil
	case "Reset":
		return midi.Reset{}, nil
	default:
		return nil, &UnknownTypeError{Type: s.Type}
	}
}

// UnknownTypeError reports a Spec with a type name the encoder does not know.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return "unknown message type " + strconv.Quote(e.Type)
}
