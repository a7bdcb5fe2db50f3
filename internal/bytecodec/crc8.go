package bytecodec

// CRC-8 parameters: reflected, feedback 0x18, initial value 0
const (
	crc8Feedback = 0x18
	crc8TopBit   = 0x80
	crc8Init     = 0x00
)

// CRC8Byte returns the CRC-8 of the single byte b
func CRC8Byte(b byte) byte {
	return crc8Step(crc8Init, b)
}

// crc8Step runs the 8 shift-and-XOR iterations for one input byte
func crc8Step(crc, b byte) byte {
	for i := 0; i < byteBits; i++ {
		if (crc^b)&0x01 != 0 {
			crc ^= crc8Feedback
			crc >>= 1
			crc |= crc8TopBit
		} else {
			crc >>= 1
		}
		b >>= 1
	}
	return crc
}

// CRC8 returns the CRC-8 of data. CRC8(nil) is 0. The result depends on
// byte order.
func CRC8(data []byte) byte {
	return UpdateCRC8(crc8Init, data)
}

// CRC8N returns the CRC-8 of the first n bytes of data. Positions past
// the end of data count as zero bytes; n <= 0 yields 0.
func CRC8N(data []byte, n int) byte {
	if n <= len(data) {
		return CRC8(data[:max(n, 0)])
	}
	crc := CRC8(data)
	for i := len(data); i < n; i++ {
		crc = crc8Step(crc, 0)
	}
	return crc
}

// UpdateCRC8 continues a running CRC-8 with more data
func UpdateCRC8(crc byte, data []byte) byte {
	for _, b := range data {
		crc = crc8Step(crc, b)
	}
	return crc
}

// CRC8Signed returns the CRC-8 of data as a signed byte
func CRC8Signed(data []int8) int8 {
	return ToSigned(CRC8(ToUnsignedSlice(data)))
}
