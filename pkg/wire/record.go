// Package wire provides presentation and interchange helpers around the core
// midi package: JSON views of decoded messages, JSON specs for building
// messages, and hex-text input handling shared by the CLI, TUI and API.
package wire

import (
	"encoding/hex"
	"strings"

	"github.com/james-see/midiwire/pkg/midi"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Record is the JSON view of one decoded message. Description is the gomidi
// rendering of the same bytes, handy for eyeballing decoder output against an
// independent implementation.
type Record struct {
	Type        string         `json:"type"`
	Bytes       string         `json:"bytes"`
	Description string         `json:"description"`
	Fields      map[string]int `json:"fields,omitempty"`
}

// NewRecord builds the Record for a decoded message.
func NewRecord(msg midi.Message) Record {
	buf := make([]byte, 3)
	n, _ := midi.Render(msg, buf)

	r := Record{
		Bytes:       strings.ToUpper(hex.EncodeToString(buf[:n])),
		Description: gomidi.Message(buf[:n]).String(),
	}

	switch m := msg.(type) {
	case midi.NoteOff:
		r.Type = "NoteOff"
		r.Fields = map[string]int{
			"channel":  int(m.Channel.Value()),
			"note":     int(m.Note.Value()),
			"velocity": int(m.Velocity.Value()),
		}
	case midi.NoteOn:
		r.Type = "NoteOn"
		r.Fields = map[string]int{
			"channel":  int(m.Channel.Value()),
			"note":     int(m.Note.Value()),
			"velocity": int(m.Velocity.Value()),
		}
	case midi.KeyPressure:
		r.Type = "KeyPressure"
		r.Fields = map[string]int{
			"channel":  int(m.Channel.Value()),
			"note":     int(m.Note.Value()),
			"pressure": int(m.Pressure.Value()),
		}
	case midi.ControlChange:
		r.Type = "ControlChange"
		r.Fields = map[string]int{
			"channel": int(m.Channel.Value()),
			"control": int(m.Control.Value()),
			"value":   int(m.Value.Value()),
		}
	case midi.ProgramChange:
		r.Type = "ProgramChange"
		r.Fields = map[string]int{
			"channel": int(m.Channel.Value()),
			"program": int(m.Program.Value()),
		}
	case midi.ChannelPressure:
		r.Type = "ChannelPressure"
		r.Fields = map[string]int{
			"channel":  int(m.Channel.Value()),
			"pressure": int(m.Pressure.Value()),
		}
	case midi.PitchBendChange:
		r.Type = "PitchBendChange"
		r.Fields = map[string]int{
			"channel": int(m.Channel.Value()),
			"bend":    int(m.Bend.Int16()),
		}
	case midi.QuarterFrame:
		r.Type = "QuarterFrame"
		r.Fields = map[string]int{"value": int(m.Value.Value())}
	case midi.SongPositionPointer:
		r.Type = "SongPositionPointer"
		r.Fields = map[string]int{"position": int(m.Position.Uint16())}
	case midi.SongSelect:
		r.Type = "SongSelect"
		r.Fields = map[string]int{"song": int(m.Song.Value())}
	case midi.TuneRequest:
		r.Type = "TuneRequest"
	case midi.TimingClock:
		r.Type = "TimingClock"
	case midi.Start:
		r.Type = "Start"
	case midi.Continue:
		r.Type = "Continue"
	case midi.Stop:
		r.Type = "Stop"
	case midi.ActiveSensing:
		r.Type = "ActiveSensing"
	case midi.Reset:
		r.Type = "Reset"
	}

	return r
}
