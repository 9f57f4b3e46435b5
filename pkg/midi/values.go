// Package midi implements the MIDI 1.0 byte-stream protocol: typed message
// values, a stateless render/parse codec for single framed messages, and a
// streaming parser that reassembles messages from bytes arriving one at a time.
package midi

// Channel is a MIDI channel number in the range 0-15. The wire protocol is
// 0-based; user-facing channel numbers 1-16 map to 0-15.
type Channel uint8

// NewChannel creates a Channel, clamping values above 15 down to 15.
func NewChannel(v uint8) Channel {
	if v > 15 {
		v = 15
	}
	return Channel(v)
}

// Value returns the 0-based channel number.
func (c Channel) Value() uint8 {
	return uint8(c)
}

// Control is a MIDI controller number (0-127).
type Control uint8

// NewControl creates a Control, clamping values above 127 down to 127.
func NewControl(v uint8) Control {
	return Control(clamp7(v))
}

// Value returns the controller number.
func (c Control) Value() uint8 {
	return uint8(c)
}

// Program is a MIDI program number (0-127), usually corresponding to a preset
// on the receiving device.
type Program uint8

// NewProgram creates a Program, clamping values above 127 down to 127.
func NewProgram(v uint8) Program {
	return Program(clamp7(v))
}

// Value returns the program number.
func (p Program) Value() uint8 {
	return uint8(p)
}

// Value7 is a 7 bit MIDI data value stored in an unsigned 8 bit integer. The
// most significant bit is always 0.
type Value7 uint8

// NewValue7 creates a Value7, clamping values above 127 down to 127.
func NewValue7(v uint8) Value7 {
	return Value7(clamp7(v))
}

// Value returns the underlying 7 bit value.
func (v Value7) Value() uint8 {
	return uint8(v)
}

// QuarterFrameValue is the data value of a MIDI time code quarter frame
// message, combining a 3 bit message type and a 4 bit time code nibble.
type QuarterFrameValue uint8

// NewQuarterFrameValue creates a QuarterFrameValue, clamping values above 127
// down to 127.
func NewQuarterFrameValue(v uint8) QuarterFrameValue {
	return QuarterFrameValue(clamp7(v))
}

// Value returns the combined quarter frame value.
func (q QuarterFrameValue) Value() uint8 {
	return uint8(q)
}

// Value14 is a 14 bit MIDI value stored as two 7 bit data bytes (msb, lsb).
// It is used for pitch bend and the song position pointer.
type Value14 struct {
	msb uint8
	lsb uint8
}

// NewValue14 creates a Value14 from two 7 bit bytes, clamping each byte above
// 127 down to 127.
func NewValue14(msb, lsb uint8) Value14 {
	return Value14{msb: clamp7(msb), lsb: clamp7(lsb)}
}

// Value14FromUint16 creates a Value14 from the combined 14 bit value,
// clamping values above 16383 down to 16383.
func Value14FromUint16(v uint16) Value14 {
	if v > 0x3fff {
		v = 0x3fff
	}
	return Value14{msb: uint8(v >> 7), lsb: uint8(v & 0x7f)}
}

// Value14FromInt16 creates a Value14 from a zero-centered value in
// -8192..8191, clamping out of range input. Zero maps to the center value
// (msb 64, lsb 0).
func Value14FromInt16(v int16) Value14 {
	if v < -8192 {
		v = -8192
	} else if v > 8191 {
		v = 8191
	}
	return Value14FromUint16(uint16(int32(v) + 8192))
}

// Value14FromFloat32 creates a Value14 from a normalized value in -1.0..1.0,
// clamping out of range input. The scale is intentionally asymmetric: positive
// values are multiplied by 8191 and negative values by 8192, so that 0.0 maps
// exactly to the zero-centered integer value (msb 64, lsb 0).
func Value14FromFloat32(v float32) Value14 {
	// Clamp before scaling: a float to int16 conversion of an out of range
	// product is not a saturating conversion in Go.
	if v < -1.0 {
		v = -1.0
	} else if v > 1.0 {
		v = 1.0
	}
	scale := float32(8192.0)
	if v > 0 {
		scale = 8191.0
	}
	return Value14FromInt16(int16(v * scale))
}

// Bytes returns the (msb, lsb) pair.
func (v Value14) Bytes() (msb, lsb uint8) {
	return v.msb, v.lsb
}

// Uint16 returns the combined 14 bit value (0-16383).
func (v Value14) Uint16() uint16 {
	return uint16(v.msb)*128 + uint16(v.lsb)
}

// Int16 returns the zero-centered value (-8192..8191).
func (v Value14) Int16() int16 {
	return int16(v.Uint16()) - 8192
}

// Float32 returns the normalized value (-1.0..1.0). Positive values are
// divided by 8191 and negative values by 8192, mirroring Value14FromFloat32.
func (v Value14) Float32() float32 {
	i := v.Int16()
	scale := float32(8192.0)
	if i > 0 {
		scale = 8191.0
	}
	f := float32(i) / scale
	if f < -1.0 {
		f = -1.0
	} else if f > 1.0 {
		f = 1.0
	}
	return f
}

func clamp7(v uint8) uint8 {
	if v > 127 {
		return 127
	}
	return v
}
