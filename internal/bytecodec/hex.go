package bytecodec

import (
	"encoding/hex"
	"regexp"
	"strings"
)

const hexDigits = "0123456789abcdef"

var hexPairPattern = regexp.MustCompile(`(?i)[0-9a-f]{2}`)

// ByteToHex returns the low 8 bits of v as two lowercase hex digits
func ByteToHex[T Integer](v T) string {
	u := ToUnsigned(v)
	return string([]byte{hexDigits[u>>nibbleBits], hexDigits[u&nibbleMask]})
}

// BytesToHex hex-encodes b, joining the pairs with sep (may be empty)
func BytesToHex(b []byte, sep string) string {
	if sep == "" {
		return hex.EncodeToString(b)
	}
	pairs := make([]string, len(b))
	for i, v := range b {
		pairs[i] = ByteToHex(v)
	}
	return strings.Join(pairs, sep)
}

// SignedBytesToHex hex-encodes signed bytes, masking each with 0xFF
func SignedBytesToHex(b []int8, sep string) string {
	return BytesToHex(ToUnsignedSlice(b), sep)
}

// HexToBytes decodes pairs of hex digits (either case, no separators).
// Odd length or a non-hex character fails with MalformedHex.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newError(KindMalformedHex, "HexToBytes", "hex length must be even, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrapError(KindMalformedHex, "HexToBytes", err, "invalid hex %q", s)
	}
	return b, nil
}

// HexStringToHexArray extracts every two-digit hex run from s, skipping
// anything that is not a hex digit pair. Returns an empty slice if there
// are none.
func HexStringToHexArray(s string) []string {
	pairs := hexPairPattern.FindAllString(s, -1)
	if pairs == nil {
		return []string{}
	}
	return pairs
}

// hexPairToByte parses exactly two hex digits
func hexPairToByte(op, pair string) (byte, error) {
	if len(pair) != 2 {
		return 0, newError(KindMalformedHex, op, "hex pair %q must be 2 digits", pair)
	}
	var dst [1]byte
	if _, err := hex.Decode(dst[:], []byte(pair)); err != nil {
		return 0, wrapError(KindMalformedHex, op, err, "invalid hex pair %q", pair)
	}
	return dst[0], nil
}
