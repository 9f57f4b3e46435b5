package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexText parses loosely formatted hex text into bytes. Whitespace and
// commas separate tokens, a 0x prefix is allowed, and odd-length tokens get a
// leading zero, so "0x90 3C 7F" and "90,3c,7f" both work.
func DecodeHexText(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == ','
	})

	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if len(f)%2 == 1 {
			f = "0" + f
		}
		cleaned = append(cleaned, f)
	}

	data, err := hex.DecodeString(strings.Join(cleaned, ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
