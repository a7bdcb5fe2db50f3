package bytecodec

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bit-width constants
const (
	byteMask   = 0xFF
	nibbleMask = 0x0F
	nibbleMax  = 0x0F
	nibbleBits = 4
	byteBits   = 8

	// specByteChar is the character repeated by SpecBytes
	specByteChar = '1'
)

// Integer is any integer type accepted by the byte conversion helpers
type Integer interface {
	constraints.Integer
}

// ToUnsigned masks v to its low 8 bits (v & 0xFF)
func ToUnsigned[T Integer](v T) uint8 {
	// Integer conversion truncates to the low 8 bits for every width.
	return uint8(v)
}

// ToSigned reinterprets the low 8 bits of v as a two's-complement byte
func ToSigned[T Integer](v T) int8 {
	return int8(uint8(v))
}

// UnsignedFromChar converts the first UTF-16 code unit of s to an unsigned byte.
// An empty string yields 0.
func UnsignedFromChar(s string) uint8 {
	return ToUnsigned(firstCodeUnit(s))
}

// SignedFromChar converts the first UTF-16 code unit of s to a signed byte.
// An empty string yields 0.
func SignedFromChar(s string) int8 {
	return ToSigned(firstCodeUnit(s))
}

// firstCodeUnit returns the first UTF-16 code unit of s. Code points above
// the BMP yield their high surrogate.
func firstCodeUnit(s string) uint16 {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r > maxBMP {
		return uint16(surrogateHighStart + ((r - supplementaryBase) >> surrogateShift))
	}
	return uint16(r)
}

// ToUnsignedSlice converts signed bytes to unsigned bytes
func ToUnsignedSlice(bytes []int8) []uint8 {
	out := make([]uint8, len(bytes))
	for i, b := range bytes {
		out[i] = ToUnsigned(b)
	}
	return out
}

// ToSignedSlice converts unsigned bytes to signed bytes
func ToSignedSlice(uint8s []uint8) []int8 {
	out := make([]int8, len(uint8s))
	for i, u := range uint8s {
		out[i] = ToSigned(u)
	}
	return out
}

// ToChar truncates v to a single UTF-16 code unit
func ToChar[T Integer](v T) uint16 {
	return uint16(v)
}

// PackBytes copies count unsigned bytes from src[srcOff:] into dst[dstOff:]
// as signed bytes.
func PackBytes(dst []int8, src []uint8, dstOff, srcOff, count int) error {
	if err := checkRange("PackBytes", len(src), srcOff, len(dst), dstOff, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dst[dstOff+i] = ToSigned(src[srcOff+i])
	}
	return nil
}

// PutUint8s copies count signed bytes from src[srcOff:] into dst[dstOff:]
// as unsigned bytes.
func PutUint8s(dst []uint8, src []int8, dstOff, srcOff, count int) error {
	if err := checkRange("PutUint8s", len(src), srcOff, len(dst), dstOff, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dst[dstOff+i] = ToUnsigned(src[srcOff+i])
	}
	return nil
}

// PackString copies count character bytes of s (see StringToCharBytes),
// starting at srcOff, into dst[dstOff:] as signed bytes.
func PackString(dst []int8, s string, dstOff, srcOff, count int) error {
	return PackBytes(dst, StringToCharBytes(s), dstOff, srcOff, count)
}

// StringToCharBytes flattens the UTF-16 code units of s into bytes. Units
// above 0xFF emit their low byte followed by their high byte.
func StringToCharBytes(s string) []uint8 {
	units := codeUnits(s)
	out := make([]uint8, 0, len(units))
	for _, c := range units {
		if c > byteMask {
			out = append(out, uint8(c&byteMask))
			c >>= byteBits
		}
		out = append(out, uint8(c))
	}
	return out
}

// ArrayCopy copies size elements from src[srcOff:] to dst[dstOff:].
//
// When src and dst share a backing array and the destination range starts
// inside the source range, the source is first copied to a scratch buffer
// (memmove semantics). Otherwise elements are copied forward one by one,
// which is safe when the destination starts before the source.
func ArrayCopy[T any](src []T, srcOff int, dst []T, dstOff int, size int) error {
	if err := checkRange("ArrayCopy", len(src), srcOff, len(dst), dstOff, size); err != nil {
		return err
	}
	if size == 0 {
		return nil
	}

	if destinationTrailsSource(src, srcOff, dst, dstOff, size) {
		tmp := make([]T, size)
		for i := 0; i < size; i++ {
			tmp[i] = src[srcOff+i]
		}
		for i := 0; i < size; i++ {
			dst[dstOff+i] = tmp[i]
		}
		return nil
	}

	for i := 0; i < size; i++ {
		dst[dstOff+i] = src[srcOff+i]
	}
	return nil
}

// destinationTrailsSource reports whether dst[dstOff:dstOff+size] begins
// strictly inside src[srcOff:srcOff+size] in memory. Both ranges must be
// non-empty and in bounds.
func destinationTrailsSource[T any](src []T, srcOff int, dst []T, dstOff int, size int) bool {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return false
	}
	s := uintptr(unsafe.Pointer(&src[srcOff]))
	d := uintptr(unsafe.Pointer(&dst[dstOff]))
	return d > s && d < s+uintptr(size)*elemSize
}

func checkRange(op string, srcLen, srcOff, dstLen, dstOff, count int) error {
	if count < 0 || srcOff < 0 || dstOff < 0 {
		return newError(KindOutOfBoundary, op,
			"negative offset or count (src_off=%d, dst_off=%d, count=%d)", srcOff, dstOff, count)
	}
	// compare against the remaining length so offset+count cannot overflow
	if srcOff > srcLen || count > srcLen-srcOff {
		return newError(KindOutOfBoundary, op,
			"source range of %d at offset %d exceeds length %d", count, srcOff, srcLen)
	}
	if dstOff > dstLen || count > dstLen-dstOff {
		return newError(KindOutOfBoundary, op,
			"destination range of %d at offset %d exceeds length %d", count, dstOff, dstLen)
	}
	return nil
}

// SplitNibbles splits v into its high and low 4-bit halves,
// e.g. 20 (0x14) becomes (0x1, 0x4). Fails outside 0..255.
func SplitNibbles(v int) (high, low uint8, err error) {
	if v < 0 || v > byteMask {
		return 0, 0, newError(KindOutOfBoundary, "SplitNibbles", "value %d outside 0..255", v)
	}
	return uint8(v>>nibbleBits) & nibbleMask, uint8(v) & nibbleMask, nil
}

// CombineNibbles joins two 4-bit halves into one byte. Fails if either
// half is outside 0..15.
func CombineNibbles(high, low int) (uint8, error) {
	if high < 0 || high > nibbleMax || low < 0 || low > nibbleMax {
		return 0, newError(KindOutOfBoundary, "CombineNibbles",
			"nibbles (%d, %d) outside 0..15", high, low)
	}
	return uint8(high<<nibbleBits | low), nil
}

// CombineUint16 joins a high and a low byte (each masked to 8 bits)
func CombineUint16[T Integer](high, low T) uint16 {
	return uint16(ToUnsigned(high))<<byteBits | uint16(ToUnsigned(low))
}

// SpecBytes returns n copies of the signed byte for '1', n taken modulo 256
func SpecBytes[T Integer](n T) []int8 {
	count := int(ToUnsigned(n))
	out := make([]int8, count)
	for i := range out {
		out[i] = ToSigned(specByteChar)
	}
	return out
}
