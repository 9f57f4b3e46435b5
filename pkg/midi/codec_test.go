package midi

import (
	"bytes"
	"errors"
	"testing"
)

// everyMessage covers all 17 variants with representative values.
var everyMessage = []struct {
	name  string
	msg   Message
	bytes []byte
}{
	{"NoteOff", NoteOff{NewChannel(2), NewNote(0x76), NewValue7(0x34)}, []byte{0x82, 0x76, 0x34}},
	{"NoteOn", NoteOn{NewChannel(1), NewNote(0x04), NewValue7(0x34)}, []byte{0x91, 0x04, 0x34}},
	{"KeyPressure", KeyPressure{NewChannel(10), NewNote(0x13), NewValue7(0x34)}, []byte{0xAA, 0x13, 0x34}},
	{"ControlChange", ControlChange{NewChannel(3), NewControl(0x3C), NewValue7(0x18)}, []byte{0xB3, 0x3C, 0x18}},
	{"ProgramChange", ProgramChange{NewChannel(9), NewProgram(0x15)}, []byte{0xC9, 0x15}},
	{"ChannelPressure", ChannelPressure{NewChannel(13), NewValue7(0x37)}, []byte{0xDD, 0x37}},
	{"PitchBendChange", PitchBendChange{NewChannel(8), NewValue14(0x56, 0x14)}, []byte{0xE8, 0x14, 0x56}},
	{"QuarterFrame", QuarterFrame{NewQuarterFrameValue(0x7F)}, []byte{0xF1, 0x7F}},
	{"SongPositionPointer", SongPositionPointer{NewValue14(0x68, 0x7F)}, []byte{0xF2, 0x7F, 0x68}},
	{"SongSelect", SongSelect{NewValue7(0x3F)}, []byte{0xF3, 0x3F}},
	{"TuneRequest", TuneRequest{}, []byte{0xF6}},
	{"TimingClock", TimingClock{}, []byte{0xF8}},
	{"Start", Start{}, []byte{0xFA}},
	{"Continue", Continue{}, []byte{0xFB}},
	{"Stop", Stop{}, []byte{0xFC}},
	{"ActiveSensing", ActiveSensing{}, []byte{0xFE}},
	{"Reset", Reset{}, []byte{0xFF}},
}

func TestRenderMatchesLen(t *testing.T) {
	for _, tt := range everyMessage {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 3)
			n, err := Render(tt.msg, buf)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if n != tt.msg.Len() {
				t.Errorf("Render() wrote %d bytes, Len() = %d", n, tt.msg.Len())
			}
			if !bytes.Equal(buf[:n], tt.bytes) {
				t.Errorf("Render() = % 02X, want % 02X", buf[:n], tt.bytes)
			}
		})
	}
}

func TestRenderBufferTooShort(t *testing.T) {
	for _, tt := range everyMessage {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.msg.Len()-1)
			if _, err := Render(tt.msg, buf); !errors.Is(err, ErrBufferTooShort) {
				t.Errorf("Render() into %d byte buffer: error = %v, want ErrBufferTooShort",
					len(buf), err)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tt := range everyMessage {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.bytes)
			if err != nil {
				t.Fatalf("Parse(% 02X) error: %v", tt.bytes, err)
			}
			if got != tt.msg {
				t.Errorf("Parse(% 02X) = %#v, want %#v", tt.bytes, got, tt.msg)
			}
		})
	}
}

func TestParseEmptyBuffer(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrBufferTooShort) {
		t.Errorf("Parse(nil) error = %v, want ErrBufferTooShort", err)
	}
}

func TestParseTruncatedMessages(t *testing.T) {
	for _, tt := range everyMessage {
		if tt.msg.Len() == 1 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			for cut := 1; cut < len(tt.bytes); cut++ {
				if _, err := Parse(tt.bytes[:cut]); !errors.Is(err, ErrBufferTooShort) {
					t.Errorf("Parse(% 02X) error = %v, want ErrBufferTooShort",
						tt.bytes[:cut], err)
				}
			}
		})
	}
}

func TestParseUnknownStatus(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"data byte first", []byte{0x34, 0x56}},
		{"sysex start", []byte{0xF0, 0x43, 0xF7}},
		{"sysex end", []byte{0xF7}},
		{"undefined 0xF4", []byte{0xF4}},
		{"undefined 0xF5", []byte{0xF5}},
		{"reserved 0xF9", []byte{0xF9}},
		{"reserved 0xFD", []byte{0xFD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.buf); !errors.Is(err, ErrMessageNotFound) {
				t.Errorf("Parse(% 02X) error = %v, want ErrMessageNotFound", tt.buf, err)
			}
		})
	}
}

func TestParseRecoversChannelFromStatus(t *testing.T) {
	for ch := 0; ch <= 15; ch++ {
		msg, err := Parse([]byte{0x90 | uint8(ch), 0x40, 0x7F})
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		on, ok := msg.(NoteOn)
		if !ok {
			t.Fatalf("Parse() = %T, want NoteOn", msg)
		}
		if on.Channel.Value() != uint8(ch) {
			t.Errorf("channel = %d, want %d", on.Channel.Value(), ch)
		}
	}
}

func TestRenderParseRoundTripIgnoresTrailingBytes(t *testing.T) {
	// Parse reads exactly one framed message from the front of the buffer.
	buf := []byte{0xC9, 0x15, 0xDE, 0xAD}
	msg, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := ProgramChange{NewChannel(9), NewProgram(0x15)}
	if msg != want {
		t.Errorf("Parse() = %#v, want %#v", msg, want)
	}
}
