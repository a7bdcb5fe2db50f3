// Package bytecodec converts application values to and from the raw byte
// sequences used by device provisioning protocols.
//
// Every function in this package is pure: no state is shared between calls,
// nothing is logged and no I/O is performed. All functions are safe for
// concurrent use. The only buffers touched are the ones supplied by the
// caller, and functions that write into a caller buffer (PackBytes,
// PutUint8s, ArrayCopy) are overlap safe.
//
// # Byte Representation
//
// A byte is interpreted either as signed (int8, two's complement, -128..127)
// or unsigned (uint8, 0..255). Conversion between the two is a bijection:
//
//	unsigned = signed & 0xFF
//	signed   = unsigned - 256 if unsigned > 127, else unsigned
//
// ToUnsigned and ToSigned accept any integer type and keep only the low
// 8 bits. UnsignedFromChar and SignedFromChar take the first UTF-16 code
// unit of a string instead.
//
// # String Transcoding
//
// Strings are modelled as UTF-16 code units so that surrogate pairs and lone
// surrogates behave as they do on the devices' companion apps:
//
//	b := bytecodec.EncodeUTF8("héllo 😀")    // 4-byte sequence for the emoji
//	s := bytecodec.DecodeUTF8(b)             // "héllo 😀"
//	n := bytecodec.ByteLength("héllo 😀")    // len(b), computed without encoding
//
// The charset is always an explicit parameter (EncodeString, DecodeString);
// only CharsetUTF8 is supported.
//
// # Hex and BSSID
//
//	bytecodec.ByteToHex(0xff)                       // "ff"
//	bytecodec.HexToBytes("18fe34")                  // []byte{0x18, 0xfe, 0x34}
//	bytecodec.ParseBSSID("18:fe:34:9a:a3:c4")       // 6 bytes
//	bytecodec.FormatBSSID([]int8{24, -2, 52, -102}) // "18fe349a"
//
// # Checksum
//
// CRC8 is the reflected CRC-8 with feedback 0x18 (Dallas/Maxim), initial
// value 0. The check value for "123456789" is 0xa1.
//
// # Numeric Round-Trips
//
// Float32ToHex and Int32ToHex produce four big-endian hex pairs; HexToFloat32
// and HexToInt32 reverse them bit-exactly.
//
// # Errors
//
// Fallible operations return *Error carrying an ErrorKind. Each kind has a
// sentinel so callers can write:
//
//	if errors.Is(err, bytecodec.ErrMalformedHex) { ... }
package bytecodec
