package bytecodec

import (
	"encoding/base64"
)

const latin1Max = 0xFF

// Base64Encode encodes the characters of s (each must be in 0..255) as
// standard padded base64. Characters above 0xFF fail with OutOfRange.
func Base64Encode(s string) (string, error) {
	raw := make([]byte, 0, len(s))
	i := 0
	for _, r := range s {
		if r > latin1Max {
			return "", newError(KindOutOfRange, "Base64Encode",
				"character U+%04X at index %d is outside the Latin-1 range", r, i)
		}
		raw = append(raw, byte(r))
		i++
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Base64EncodeBytes encodes raw bytes as standard padded base64
func Base64EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
