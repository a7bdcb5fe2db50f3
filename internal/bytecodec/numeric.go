package bytecodec

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// HexArrayLength is the number of hex pairs in a 32-bit hex array
const HexArrayLength = 4

const (
	// MaxFixedDecimals is the largest decimals value HexToFloat32Fixed accepts
	MaxFixedDecimals = 100

	// every float32 has a terminating decimal expansion of at most 149
	// fractional digits (2^-149 is the smallest subnormal)
	exactFloat32Decimals = 149

	// at or above this magnitude fixed notation gives way to exponent form
	fixedNotationLimit = 1e21
)

// Float32ToHex returns the IEEE-754 single-precision bit pattern of f as
// four big-endian hex pairs, e.g. 1.0 becomes ["3f", "80", "00", "00"].
func Float32ToHex(f float32) []string {
	return uint32ToHex(math.Float32bits(f))
}

// HexToFloat32 reverses Float32ToHex bit-exactly
func HexToFloat32(h []string) (float32, error) {
	bits, err := hexToUint32("HexToFloat32", h)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// HexToFloat32Fixed decodes h and formats the value with the given number
// of decimal digits (0..MaxFixedDecimals).
//
// Rounding works on the exact binary value and sends ties away from zero,
// so 2.5 formats as "3" and 0.125 as "0.13" at two decimals. Negative zero
// formats without a sign. NaN and the infinities format as "NaN",
// "Infinity" and "-Infinity"; magnitudes from 1e21 up use exponent form.
func HexToFloat32Fixed(h []string, decimals int) (string, error) {
	if decimals < 0 || decimals > MaxFixedDecimals {
		return "", newError(KindOutOfBoundary, "HexToFloat32Fixed",
			"decimals must be within 0..%d, got %d", MaxFixedDecimals, decimals)
	}
	f, err := HexToFloat32(h)
	if err != nil {
		return "", err
	}
	return formatFixed(float64(f), decimals), nil
}

func formatFixed(x float64, decimals int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.Abs(x) >= fixedNotationLimit:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	// x < 0 is false for negative zero
	sign := ""
	if x < 0 {
		sign = "-"
	}

	exact := strconv.FormatFloat(math.Abs(x), 'f', exactFloat32Decimals, 64)
	whole, frac, _ := strings.Cut(exact, ".")

	digits := []byte(whole + frac[:decimals])
	if frac[decimals] >= '5' {
		digits = incrementDecimal(digits)
	}

	split := len(digits) - decimals
	out := string(digits[:split])
	if decimals > 0 {
		out += "." + string(digits[split:])
	}
	return sign + out
}

// incrementDecimal adds one to the last digit of a decimal digit string,
// carrying as far as needed.
func incrementDecimal(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}

// Int32ToHex returns the two's-complement bit pattern of v as four
// big-endian hex pairs, e.g. -1 becomes ["ff", "ff", "ff", "ff"].
func Int32ToHex(v int32) []string {
	return uint32ToHex(uint32(v))
}

// HexToInt32 reverses Int32ToHex
func HexToInt32(h []string) (int32, error) {
	bits, err := hexToUint32("HexToInt32", h)
	if err != nil {
		return 0, err
	}
	return int32(bits), nil
}

// HexStringToInt32 decodes a compact 8-digit hex string such as "fffffffe"
func HexStringToInt32(s string) (int32, error) {
	return HexToInt32(HexStringToHexArray(s))
}

func uint32ToHex(v uint32) []string {
	var buf [HexArrayLength]byte
	binary.BigEndian.PutUint32(buf[:], v)
	out := make([]string, HexArrayLength)
	for i, b := range buf {
		out[i] = ByteToHex(b)
	}
	return out
}

func hexToUint32(op string, h []string) (uint32, error) {
	if len(h) != HexArrayLength {
		return 0, newError(KindInvalidLength, op, "hex array must have %d elements, got %d", HexArrayLength, len(h))
	}
	var buf [HexArrayLength]byte
	for i, pair := range h {
		b, err := hexPairToByte(op, pair)
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
