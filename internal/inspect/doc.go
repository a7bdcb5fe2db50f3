// Package inspect explains a byte buffer in every representation the codec
// knows: per-byte hex, unsigned, signed, nibbles and printable character,
// big-endian 32-bit words as int32 and float32, the CRC-8, the UTF-8 and
// Latin-1 text, base64, and the BSSID form when the buffer is six bytes.
package inspect
