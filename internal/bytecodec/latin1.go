package bytecodec

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// latin1ChunkSize bounds how many bytes are converted per batch
const latin1ChunkSize = 8192

// BytesToLatin1 treats each byte as one Latin-1 code unit, with no
// multi-byte decoding. Long inputs are converted in latin1ChunkSize batches.
func BytesToLatin1(b []byte) string {
	var sb strings.Builder
	for start := 0; start < len(b); start += latin1ChunkSize {
		end := min(start+latin1ChunkSize, len(b))
		sb.WriteString(latin1Chunk(b[start:end]))
	}
	return sb.String()
}

func latin1Chunk(chunk []byte) string {
	buf := make([]byte, 0, 2*len(chunk))
	for _, c := range chunk {
		buf = utf8.AppendRune(buf, charmap.ISO8859_1.DecodeByte(c))
	}
	return string(buf)
}

// Latin1ToBytes converts each character of s to a single byte. Characters
// above 0xFF fail with OutOfRange.
func Latin1ToBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	i := 0
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, newError(KindOutOfRange, "Latin1ToBytes",
				"character U+%04X at index %d is outside the Latin-1 range", r, i)
		}
		out = append(out, b)
		i++
	}
	return out, nil
}
