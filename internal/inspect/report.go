package inspect

import (
	"bytes"
	"strconv"

	"github.com/muurk/bytecodec/internal/bytecodec"
)

// ByteRow describes a single byte
type ByteRow struct {
	Offset     int    `json:"offset"`
	Hex        string `json:"hex"`
	Unsigned   uint8  `json:"unsigned"`
	Signed     int8   `json:"signed"`
	HighNibble uint8  `json:"high_nibble"`
	LowNibble  uint8  `json:"low_nibble"`
	Char       string `json:"char"`
}

// WordRow describes one aligned big-endian 32-bit group
type WordRow struct {
	Offset  int    `json:"offset"`
	Hex     string `json:"hex"`
	Int32   int32  `json:"int32"`
	Float32 string `json:"float32"` // string so NaN and Inf survive JSON
}

// Report is the full analysis of a buffer
type Report struct {
	Length        int       `json:"length"`
	Hex           string    `json:"hex"`
	CRC8          string    `json:"crc8"`
	Text          string    `json:"utf8_text"`
	UTF8RoundTrip bool      `json:"utf8_round_trip"` // decoding then re-encoding yields the same bytes
	Latin1        string    `json:"latin1_text"`
	Base64        string    `json:"base64"`
	BSSID         string    `json:"bssid,omitempty"`
	Words         []WordRow `json:"words,omitempty"`
	Bytes         []ByteRow `json:"bytes"`
}

// Analyze builds a Report for data. It never fails; every codec view of
// a byte buffer is total.
func Analyze(data []byte) *Report {
	units := bytecodec.DecodeUTF8Units(data)

	r := &Report{
		Length:        len(data),
		Hex:           bytecodec.BytesToHex(data, " "),
		CRC8:          bytecodec.ByteToHex(bytecodec.CRC8(data)),
		Text:          bytecodec.DecodeUTF8(data),
		UTF8RoundTrip: bytes.Equal(bytecodec.EncodeUTF8Units(units), data),
		Latin1:        bytecodec.BytesToLatin1(data),
		Base64:        bytecodec.Base64EncodeBytes(data),
		Bytes:         make([]ByteRow, 0, len(data)),
	}

	if len(data) == bytecodec.BSSIDLength {
		// length is checked above so this cannot fail
		r.BSSID, _ = bytecodec.CanonicalBSSID(data)
	}

	for i, b := range data {
		high, low, _ := bytecodec.SplitNibbles(int(b))
		r.Bytes = append(r.Bytes, ByteRow{
			Offset:     i,
			Hex:        bytecodec.ByteToHex(b),
			Unsigned:   b,
			Signed:     bytecodec.ToSigned(b),
			HighNibble: high,
			LowNibble:  low,
			Char:       printable(b),
		})
	}

	for off := 0; off+bytecodec.HexArrayLength <= len(data); off += bytecodec.HexArrayLength {
		r.Words = append(r.Words, analyzeWord(off, data[off:off+bytecodec.HexArrayLength]))
	}

	return r
}

func analyzeWord(off int, word []byte) WordRow {
	pairs := make([]string, len(word))
	for i, b := range word {
		pairs[i] = bytecodec.ByteToHex(b)
	}

	// pairs are always four well-formed hex pairs
	i32, _ := bytecodec.HexToInt32(pairs)
	f32, _ := bytecodec.HexToFloat32(pairs)

	return WordRow{
		Offset:  off,
		Hex:     bytecodec.BytesToHex(word, ""),
		Int32:   i32,
		Float32: strconv.FormatFloat(float64(f32), 'g', -1, 32),
	}
}

func printable(b byte) string {
	if b >= 0x20 && b <= 0x7e {
		return string(rune(b))
	}
	return "."
}
