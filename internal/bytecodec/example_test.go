package bytecodec_test

import (
	"fmt"

	"github.com/muurk/bytecodec/internal/bytecodec"
)

func ExampleFormatBSSID() {
	fmt.Println(bytecodec.FormatBSSID([]int8{24, -2, 52, -102, -93, -60}))
	// Output: 18fe349aa3c4
}

func ExampleParseBSSID() {
	b, err := bytecodec.ParseBSSID("18:fe:34:9a:a3:c4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% x\n", b)
	// Output: 18 fe 34 9a a3 c4
}

func ExampleEncodeUTF8() {
	fmt.Printf("% x\n", bytecodec.EncodeUTF8("aé€😀"))
	// Output: 61 c3 a9 e2 82 ac f0 9f 98 80
}

func ExampleCRC8() {
	fmt.Printf("0x%02x\n", bytecodec.CRC8([]byte{0x01, 0x02, 0x03}))
	// Output: 0xd8
}

func ExampleFloat32ToHex() {
	fmt.Println(bytecodec.Float32ToHex(-2.5))
	// Output: [c0 20 00 00]
}

func ExampleHexToFloat32Fixed() {
	s, _ := bytecodec.HexToFloat32Fixed([]string{"40", "49", "0f", "d0"}, 2)
	fmt.Println(s)
	// Output: 3.14
}

func ExampleBase64Encode() {
	s, _ := bytecodec.Base64Encode("éabc")
	fmt.Println(s)
	// Output: 6WFiYw==
}
