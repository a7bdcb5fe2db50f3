package bytecodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"
)

func TestEncodeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // hex
	}{
		{"empty", "", ""},
		{"ascii", "A", "41"},
		{"delete is one byte", "\x7f", "7f"},
		{"two byte", "é", "c3a9"},
		{"three byte", "€", "e282ac"},
		{"mixed", "é€", "c3a9e282ac"},
		{"surrogate pair", "😀", "f09f9880"},
		{"pair between ascii", "a😀b", "61f09f988062"},
		{"highest code point", "\U0010FFFF", "f48fbfbf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeUTF8(tt.input)
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("EncodeUTF8(%q) = %x, want %s", tt.input, got, tt.want)
			}
			if n := ByteLength(tt.input); n != len(got) {
				t.Errorf("ByteLength(%q) = %d, want %d", tt.input, n, len(got))
			}
		})
	}
}

func TestEncodeUTF8Units_Surrogates(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string // hex
	}{
		{"valid pair", []uint16{0xd83d, 0xde00}, "f09f9880"},
		{"lone high surrogate", []uint16{0xd83d}, "eda0bd"},
		{"lone low surrogate", []uint16{0x41, 0xde00}, "41edb880"},
		{"reversed pair", []uint16{0xde00, 0xd83d}, "edb880eda0bd"},
		{"high surrogate at end after pair", []uint16{0xd83d, 0xde00, 0xd83d}, "f09f9880eda0bd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeUTF8Units(tt.units)
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("EncodeUTF8Units(%x) = %x, want %s", tt.units, got, tt.want)
			}
			if n := ByteLengthUnits(tt.units); n != len(got) {
				t.Errorf("ByteLengthUnits(%x) = %d, want %d", tt.units, n, len(got))
			}
		})
	}
}

func TestEncodeUTF8_MatchesGo(t *testing.T) {
	for r := rune(0); r <= 0x10ffff; r++ {
		if r >= surrogateHighStart && r <= 0xdfff {
			continue
		}
		// sample the supplementary planes
		if r > maxBMP && r%97 != 0 {
			continue
		}
		s := string(r)
		if got := EncodeUTF8(s); !bytes.Equal(got, []byte(s)) {
			t.Fatalf("EncodeUTF8(U+%04X) = %x, want %x", r, got, []byte(s))
		}
	}
}

func TestDecodeUTF8_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語テキスト",
		"😀🎉",
		"mixed a😀é€ z",
		"\U00010000\U0010FFFF",
		"MyHomeWiFi_5G",
	}

	for _, s := range inputs {
		if got := DecodeUTF8(EncodeUTF8(s)); got != s {
			t.Errorf("DecodeUTF8(EncodeUTF8(%q)) = %q", s, got)
		}
	}

	for r := rune(0); r <= 0x10ffff; r += 61 {
		if r >= surrogateHighStart && r <= 0xdfff {
			continue
		}
		s := string(r)
		if got := DecodeUTF8(EncodeUTF8(s)); got != s {
			t.Fatalf("DecodeUTF8(EncodeUTF8(U+%04X)) = %q", r, got)
		}
	}
}

func TestDecodeUTF8Units(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []uint16
	}{
		{"empty", []byte{}, []uint16{}},
		{"ascii", []byte("Hi"), []uint16{'H', 'i'}},
		{"two byte", []byte{0xc3, 0xa9}, []uint16{0xe9}},
		{"three byte", []byte{0xe2, 0x82, 0xac}, []uint16{0x20ac}},
		{"four byte becomes pair", []byte{0xf0, 0x9f, 0x98, 0x80}, []uint16{0xd83d, 0xde00}},
		{"lone surrogate survives", []byte{0xed, 0xa0, 0xbd}, []uint16{0xd83d}},
		// 0xF5-0xFF are treated as 4-byte leads
		{"permissive lead 0xf5", []byte{0xf5, 0x80, 0x80, 0x80}, []uint16{0xdcc0, 0xdc00}},
		{"stray continuation reads as 3-byte lead", []byte{0x80, 0x80, 0x80}, []uint16{0x0000}},
		{"truncated two byte", []byte{0xc3}, []uint16{0x00c0}},
		{"truncated three byte", []byte{0xe2, 0x82}, []uint16{0x2080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeUTF8Units(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeUTF8Units(%x) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeUTF8_LoneSurrogateReplaced(t *testing.T) {
	if got := DecodeUTF8([]byte{0x41, 0xed, 0xa0, 0xbd}); got != "A\uFFFD" {
		t.Errorf("DecodeUTF8() = %q, want %q", got, "A\uFFFD")
	}
}

func TestByteLength(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"\x7f", 1},
		{"\u0080", 2},
		{"\u07ff", 2},
		{"\u0800", 3},
		{"\uffff", 3},
		{"😀", 4},
		{"é€😀", 9},
	}

	for _, tt := range tests {
		if got := ByteLength(tt.input); got != tt.want {
			t.Errorf("ByteLength(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestLatin1(t *testing.T) {
	t.Run("bytes to string", func(t *testing.T) {
		if got := BytesToLatin1([]byte{0x41, 0xe9, 0xff}); got != "Aéÿ" {
			t.Errorf("BytesToLatin1() = %q, want %q", got, "Aéÿ")
		}
		if got := BytesToLatin1(nil); got != "" {
			t.Errorf("BytesToLatin1(nil) = %q, want empty", got)
		}
	})

	t.Run("input larger than one chunk", func(t *testing.T) {
		in := make([]byte, 3*latin1ChunkSize+17)
		for i := range in {
			in[i] = byte(i)
		}
		s := BytesToLatin1(in)
		runes := []rune(s)
		if len(runes) != len(in) {
			t.Fatalf("BytesToLatin1() produced %d characters, want %d", len(runes), len(in))
		}
		for i, r := range runes {
			if r != rune(in[i]) {
				t.Fatalf("character %d = U+%04X, want U+%04X", i, r, in[i])
			}
		}

		back, err := Latin1ToBytes(s)
		if err != nil {
			t.Fatalf("Latin1ToBytes() error = %v", err)
		}
		if !bytes.Equal(back, in) {
			t.Error("Latin1ToBytes(BytesToLatin1(b)) != b")
		}
	})

	t.Run("string to bytes", func(t *testing.T) {
		got, err := Latin1ToBytes("Aéÿ")
		if err != nil {
			t.Fatalf("Latin1ToBytes() error = %v", err)
		}
		if want := []byte{0x41, 0xe9, 0xff}; !bytes.Equal(got, want) {
			t.Errorf("Latin1ToBytes() = %x, want %x", got, want)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, err := Latin1ToBytes("a€"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Latin1ToBytes() error = %v, want ErrOutOfRange", err)
		}
	})
}

func TestCharset(t *testing.T) {
	for _, label := range []string{"utf8", "UTF-8", "utf-8", "unicode-1-1-utf-8"} {
		cs, err := ParseCharset(label)
		if err != nil {
			t.Errorf("ParseCharset(%q) error = %v", label, err)
			continue
		}
		if cs != CharsetUTF8 {
			t.Errorf("ParseCharset(%q) = %q, want %q", label, cs, CharsetUTF8)
		}
	}

	for _, label := range []string{"latin1", "shift_jis", "not-a-charset", ""} {
		if _, err := ParseCharset(label); !errors.Is(err, ErrUnsupportedCharset) {
			t.Errorf("ParseCharset(%q) error = %v, want ErrUnsupportedCharset", label, err)
		}
	}

	b, err := EncodeString("é😀", CharsetUTF8)
	if err != nil {
		t.Fatalf("EncodeString() error = %v", err)
	}
	s, err := DecodeString(b, CharsetUTF8)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if s != "é😀" {
		t.Errorf("DecodeString(EncodeString()) = %q, want %q", s, "é😀")
	}

	if _, err := EncodeString("x", Charset("UTF-16")); !errors.Is(err, ErrUnsupportedCharset) {
		t.Errorf("EncodeString() error = %v, want ErrUnsupportedCharset", err)
	}
	if _, err := DecodeString([]byte("x"), Charset("GBK")); !errors.Is(err, ErrUnsupportedCharset) {
		t.Errorf("DecodeString() error = %v, want ErrUnsupportedCharset", err)
	}
}
