package bytecodec

import (
	"unicode/utf16"
)

// UTF-8 / UTF-16 transcoding constants
const (
	oneByteLimit = 0x80
	twoByteLimit = 0x800
	maxBMP       = 0xFFFF

	continuationTag  = 0x80 // 10xxxxxx
	continuationMask = 0x3F
	continuationBits = 6

	twoByteTag   = 0xC0 // 110xxxxx
	threeByteTag = 0xE0 // 1110xxxx
	fourByteTag  = 0xF0 // 11110xxx

	twoBytePayloadMask   = 0x1F
	threeBytePayloadMask = 0x0F
	fourBytePayloadMask  = 0x07

	surrogateMask        = 0xFC00
	surrogateHighStart   = 0xD800
	surrogateLowStart    = 0xDC00
	surrogatePayloadMask = 0x03FF
	surrogateShift       = 10
	supplementaryBase    = 0x10000
)

// codeUnits returns the UTF-16 code units of s. Invalid UTF-8 in s
// becomes U+FFFD.
func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func isHighSurrogate(u uint16) bool { return u&surrogateMask == surrogateHighStart }
func isLowSurrogate(u uint16) bool  { return u&surrogateMask == surrogateLowStart }

// ByteLength returns the length of EncodeUTF8(s) without encoding it
func ByteLength(s string) int {
	return ByteLengthUnits(codeUnits(s))
}

// ByteLengthUnits returns the length of EncodeUTF8Units(units) without
// encoding it. Each code unit falls into the 1, 2 or 3 byte bucket; a
// high surrogate followed by a low surrogate counts as 4 bytes together.
func ByteLengthUnits(units []uint16) int {
	total := 0
	for i := 0; i < len(units); i++ {
		c := units[i]
		switch {
		case c < oneByteLimit:
			total++
		case c < twoByteLimit:
			total += 2
		case isHighSurrogate(c) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			total += 4
			i++
		default:
			total += 3
		}
	}
	return total
}

// EncodeUTF8 encodes s as UTF-8 by way of its UTF-16 code units
func EncodeUTF8(s string) []byte {
	return EncodeUTF8Units(codeUnits(s))
}

// EncodeUTF8Units encodes UTF-16 code units as UTF-8.
//
// A high surrogate immediately followed by a low surrogate becomes one
// 4-byte sequence. A lone surrogate is encoded like any other BMP unit,
// as 3 bytes.
func EncodeUTF8Units(units []uint16) []byte {
	out := make([]byte, 0, ByteLengthUnits(units))
	for i := 0; i < len(units); i++ {
		c := uint32(units[i])
		switch {
		case c < oneByteLimit:
			out = append(out, byte(c))
		case c < twoByteLimit:
			out = append(out,
				byte(c>>continuationBits)|twoByteTag,
				byte(c&continuationMask)|continuationTag,
			)
		case isHighSurrogate(units[i]) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			i++
			cp := supplementaryBase +
				(c-surrogateHighStart)<<surrogateShift +
				(uint32(units[i]) - surrogateLowStart)
			out = append(out,
				byte(cp>>(3*continuationBits))|fourByteTag,
				byte((cp>>(2*continuationBits))&continuationMask)|continuationTag,
				byte((cp>>continuationBits)&continuationMask)|continuationTag,
				byte(cp&continuationMask)|continuationTag,
			)
		default:
			out = append(out,
				byte(c>>(2*continuationBits))|threeByteTag,
				byte((c>>continuationBits)&continuationMask)|continuationTag,
				byte(c&continuationMask)|continuationTag,
			)
		}
	}
	return out
}

// DecodeUTF8 decodes a UTF-8 byte sequence. Lone surrogates produced by
// the decoder become U+FFFD in the returned Go string; use DecodeUTF8Units
// to keep them.
func DecodeUTF8(b []byte) string {
	return string(utf16.Decode(DecodeUTF8Units(b)))
}

// DecodeUTF8Units decodes a UTF-8 byte sequence into UTF-16 code units.
//
// The lead byte alone selects the sequence length:
//
//	0x00-0x7F  1 byte
//	0xC0-0xDF  2 bytes
//	0xF0-0xFF  4 bytes, re-expanded into a surrogate pair
//	otherwise  3 bytes (including stray continuation bytes 0x80-0xBF)
//
// The 4-byte class deliberately accepts 0xF5-0xFF as well as the valid
// 0xF0-0xF4 leads. Continuation bytes past the end of b read as zero.
// Decoding never fails.
func DecodeUTF8Units(b []byte) []uint16 {
	out := make([]uint16, 0, len(b))
	pos := 0
	next := func() uint32 {
		var v uint32
		if pos < len(b) {
			v = uint32(b[pos])
		}
		pos++
		return v
	}

	for pos < len(b) {
		c1 := next()
		switch {
		case c1 < oneByteLimit:
			out = append(out, uint16(c1))
		case c1 >= twoByteTag && c1 < threeByteTag:
			c2 := next()
			out = append(out, uint16((c1&twoBytePayloadMask)<<continuationBits|c2&continuationMask))
		case c1 >= fourByteTag:
			c2, c3, c4 := next(), next(), next()
			cp := int32((c1&fourBytePayloadMask)<<(3*continuationBits) |
				(c2&continuationMask)<<(2*continuationBits) |
				(c3&continuationMask)<<continuationBits |
				c4&continuationMask)
			u := cp - supplementaryBase
			out = append(out,
				uint16(surrogateHighStart+(u>>surrogateShift)),
				uint16(surrogateLowStart+(u&surrogatePayloadMask)),
			)
		default:
			c2, c3 := next(), next()
			out = append(out, uint16((c1&threeBytePayloadMask)<<(2*continuationBits)|
				(c2&continuationMask)<<continuationBits|
				c3&continuationMask))
		}
	}
	return out
}
