package midi

import "testing"

func TestChannelSaturates(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := NewChannel(uint8(v)).Value()
		want := uint8(v)
		if want > 15 {
			want = 15
		}
		if got != want {
			t.Fatalf("NewChannel(%d).Value() = %d, want %d", v, got, want)
		}
	}
}

func TestSevenBitTypesSaturate(t *testing.T) {
	for v := 0; v <= 255; v++ {
		b := uint8(v)
		want := b
		if want > 127 {
			want = 127
		}

		if got := NewValue7(b).Value(); got != want {
			t.Fatalf("NewValue7(%d).Value() = %d, want %d", v, got, want)
		}
		if got := NewControl(b).Value(); got != want {
			t.Fatalf("NewControl(%d).Value() = %d, want %d", v, got, want)
		}
		if got := NewProgram(b).Value(); got != want {
			t.Fatalf("NewProgram(%d).Value() = %d, want %d", v, got, want)
		}
		if got := NewNote(b).Value(); got != want {
			t.Fatalf("NewNote(%d).Value() = %d, want %d", v, got, want)
		}
		if got := NewQuarterFrameValue(b).Value(); got != want {
			t.Fatalf("NewQuarterFrameValue(%d).Value() = %d, want %d", v, got, want)
		}
	}
}

func TestNoteConstants(t *testing.T) {
	if CMinus2 != 0 {
		t.Errorf("CMinus2 = %d, want 0", CMinus2)
	}
	if C4 != 72 {
		t.Errorf("C4 = %d, want 72", C4)
	}
	if A4 != 81 {
		t.Errorf("A4 = %d, want 81", A4)
	}
	if G8 != 127 {
		t.Errorf("G8 = %d, want 127", G8)
	}
}

func TestValue14CombinesSevenBitPairs(t *testing.T) {
	val := NewValue14(0b01010101, 0b01010101)
	if got := val.Uint16(); got != 0b0010101011010101 {
		t.Errorf("Uint16() = %#016b, want %#016b", got, 0b0010101011010101)
	}
}

func TestValue14SplitsFourteenBits(t *testing.T) {
	val := Value14FromUint16(0b0011001100110011)
	msb, lsb := val.Bytes()
	if msb != 0b01100110 || lsb != 0b00110011 {
		t.Errorf("Bytes() = (%#08b, %#08b), want (%#08b, %#08b)",
			msb, lsb, 0b01100110, 0b00110011)
	}
}

func TestValue14Uint16RoundTrip(t *testing.T) {
	for msb := 0; msb <= 127; msb++ {
		for lsb := 0; lsb <= 127; lsb++ {
			val := NewValue14(uint8(msb), uint8(lsb))
			want := uint16(msb)*128 + uint16(lsb)
			if got := val.Uint16(); got != want {
				t.Fatalf("NewValue14(%d, %d).Uint16() = %d, want %d", msb, lsb, got, want)
			}
		}
	}
}

func TestValue14ClampsSevenBitBytes(t *testing.T) {
	msb, lsb := NewValue14(200, 255).Bytes()
	if msb != 127 || lsb != 127 {
		t.Errorf("NewValue14(200, 255).Bytes() = (%d, %d), want (127, 127)", msb, lsb)
	}
}

func TestValue14Int16Conversion(t *testing.T) {
	tests := []struct {
		name    string
		in      int16
		wantMsb uint8
		wantLsb uint8
		wantOut int16
	}{
		{"max", 8191, 127, 127, 8191},
		{"clamped above", 8192, 127, 127, 8191},
		{"below max", 8190, 127, 126, 8190},
		{"min", -8192, 0, 0, -8192},
		{"clamped below", -8193, 0, 0, -8192},
		{"zero is centered", 0, 64, 0, 0},
		{"one", 1, 64, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := Value14FromInt16(tt.in)
			msb, lsb := val.Bytes()
			if msb != tt.wantMsb || lsb != tt.wantLsb {
				t.Errorf("Value14FromInt16(%d).Bytes() = (%d, %d), want (%d, %d)",
					tt.in, msb, lsb, tt.wantMsb, tt.wantLsb)
			}
			if got := val.Int16(); got != tt.wantOut {
				t.Errorf("Value14FromInt16(%d).Int16() = %d, want %d", tt.in, got, tt.wantOut)
			}
		})
	}
}

func TestValue14Int16RoundTrip(t *testing.T) {
	for v := -8192; v <= 8191; v++ {
		if got := Value14FromInt16(int16(v)).Int16(); got != int16(v) {
			t.Fatalf("Value14FromInt16(%d).Int16() = %d", v, got)
		}
	}
}

func TestValue14Float32Conversion(t *testing.T) {
	tests := []struct {
		name    string
		in      float32
		wantMsb uint8
		wantLsb uint8
		wantOut float32
	}{
		{"zero is centered", 0.0, 64, 0, 0.0},
		{"positive full scale", 1.0, 127, 127, 1.0},
		{"negative full scale", -1.0, 0, 0, -1.0},
		{"clamped above", 1.5, 127, 127, 1.0},
		{"clamped below", -1.5, 0, 0, -1.0},
		{"clamped far above", 5.0, 127, 127, 1.0},
		{"clamped far below", -5.0, 0, 0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := Value14FromFloat32(tt.in)
			msb, lsb := val.Bytes()
			if msb != tt.wantMsb || lsb != tt.wantLsb {
				t.Errorf("Value14FromFloat32(%v).Bytes() = (%d, %d), want (%d, %d)",
					tt.in, msb, lsb, tt.wantMsb, tt.wantLsb)
			}
			if got := val.Float32(); got != tt.wantOut {
				t.Errorf("Value14FromFloat32(%v).Float32() = %v, want %v", tt.in, got, tt.wantOut)
			}
		})
	}
}
