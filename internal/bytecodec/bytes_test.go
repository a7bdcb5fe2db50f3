package bytecodec

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestToUnsigned(t *testing.T) {
	tests := []struct {
		name string
		got  uint8
		want uint8
	}{
		{"zero", ToUnsigned(int8(0)), 0},
		{"positive int8", ToUnsigned(int8(97)), 97},
		{"min int8", ToUnsigned(int8(-128)), 128},
		{"minus one", ToUnsigned(int8(-1)), 255},
		{"int above byte", ToUnsigned(256), 0},
		{"int 0x1ff", ToUnsigned(0x1ff), 0xff},
		{"negative int", ToUnsigned(-2), 0xfe},
		{"uint16", ToUnsigned(uint16(0xabcd)), 0xcd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("ToUnsigned() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestToSigned(t *testing.T) {
	tests := []struct {
		name string
		got  int8
		want int8
	}{
		{"zero", ToSigned(uint8(0)), 0},
		{"ascii", ToSigned(uint8(97)), 97},
		{"127", ToSigned(uint8(127)), 127},
		{"128", ToSigned(uint8(128)), -128},
		{"255", ToSigned(uint8(255)), -1},
		{"int 0x1fe", ToSigned(0x1fe), -2},
		{"already signed", ToSigned(int8(-5)), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("ToSigned() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestSignedUnsignedBijection(t *testing.T) {
	for b := 0; b <= 255; b++ {
		if got, want := ToSigned(ToUnsigned(b)), ToSigned(b); got != want {
			t.Errorf("ToSigned(ToUnsigned(%d)) = %d, want %d", b, got, want)
		}
		if got := ToUnsigned(ToSigned(b)); got != uint8(b) {
			t.Errorf("ToUnsigned(ToSigned(%d)) = %d, want %d", b, got, b)
		}

		// unsigned - 256 when above 127
		want := b
		if b > 127 {
			want = b - 256
		}
		if got := ToSigned(b); int(got) != want {
			t.Errorf("ToSigned(%d) = %d, want %d", b, got, want)
		}
	}

	for s := -128; s <= 127; s++ {
		if got := ToUnsigned(int8(s)); int(got) != s&0xff {
			t.Errorf("ToUnsigned(int8(%d)) = %d, want %d", s, got, s&0xff)
		}
	}
}

func TestFromChar(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantUnsigned uint8
		wantSigned   int8
	}{
		{"empty", "", 0, 0},
		{"ascii", "a", 97, 97},
		{"first character only", "ab", 97, 97},
		{"latin1", "é", 0xe9, -23},
		{"bmp", "€", 0xac, -84},
		{"supplementary uses high surrogate", "😀", 0x3d, 0x3d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnsignedFromChar(tt.input); got != tt.wantUnsigned {
				t.Errorf("UnsignedFromChar(%q) = %d, want %d", tt.input, got, tt.wantUnsigned)
			}
			if got := SignedFromChar(tt.input); got != tt.wantSigned {
				t.Errorf("SignedFromChar(%q) = %d, want %d", tt.input, got, tt.wantSigned)
			}
		})
	}
}

func TestSliceConversions(t *testing.T) {
	signed := []int8{24, -2, 52, -102, -93, -60}
	unsigned := []uint8{0x18, 0xfe, 0x34, 0x9a, 0xa3, 0xc4}

	if got := ToUnsignedSlice(signed); !bytes.Equal(got, unsigned) {
		t.Errorf("ToUnsignedSlice() = %v, want %v", got, unsigned)
	}
	if got := ToSignedSlice(unsigned); !reflect.DeepEqual(got, signed) {
		t.Errorf("ToSignedSlice() = %v, want %v", got, signed)
	}
	if got := ToUnsignedSlice(nil); len(got) != 0 {
		t.Errorf("ToUnsignedSlice(nil) = %v, want empty", got)
	}
}

func TestPackBytes(t *testing.T) {
	src := []uint8{0x7f, 0x80, 0xff}

	t.Run("into middle of destination", func(t *testing.T) {
		dst := make([]int8, 5)
		if err := PackBytes(dst, src, 1, 0, 3); err != nil {
			t.Fatalf("PackBytes() error = %v", err)
		}
		want := []int8{0, 127, -128, -1, 0}
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("PackBytes() dst = %v, want %v", dst, want)
		}
	})

	t.Run("source offset", func(t *testing.T) {
		dst := make([]int8, 2)
		if err := PackBytes(dst, src, 0, 1, 2); err != nil {
			t.Fatalf("PackBytes() error = %v", err)
		}
		want := []int8{-128, -1}
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("PackBytes() dst = %v, want %v", dst, want)
		}
	})

	errTests := []struct {
		name                   string
		dstLen, dstOff, srcOff int
		count                  int
	}{
		{"destination too short", 2, 0, 0, 3},
		{"source overrun", 5, 0, 2, 2},
		{"negative count", 5, 0, 0, -1},
		{"negative offset", 5, -1, 0, 1},
		{"overflowing count", 5, 1, 1, math.MaxInt},
		{"offset past end", 5, 9, 0, 0},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			err := PackBytes(make([]int8, tt.dstLen), src, tt.dstOff, tt.srcOff, tt.count)
			if !errors.Is(err, ErrOutOfBoundary) {
				t.Errorf("PackBytes() error = %v, want ErrOutOfBoundary", err)
			}
		})
	}
}

func TestPutUint8s(t *testing.T) {
	dst := make([]uint8, 4)
	if err := PutUint8s(dst, []int8{-1, -128, 5}, 1, 0, 3); err != nil {
		t.Fatalf("PutUint8s() error = %v", err)
	}
	want := []uint8{0, 255, 128, 5}
	if !bytes.Equal(dst, want) {
		t.Errorf("PutUint8s() dst = %v, want %v", dst, want)
	}

	if err := PutUint8s(dst, []int8{1}, 4, 0, 1); !errors.Is(err, ErrOutOfBoundary) {
		t.Errorf("PutUint8s() error = %v, want ErrOutOfBoundary", err)
	}
}

func TestStringToCharBytes(t *testing.T) {
	tests := []struct {
		input string
		want  []uint8
	}{
		{"", []uint8{}},
		{"ab", []uint8{0x61, 0x62}},
		{"é", []uint8{0xe9}},
		// units above 0xff: low byte then high byte
		{"€", []uint8{0xac, 0x20}},
		{"😀", []uint8{0x3d, 0xd8, 0x00, 0xde}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := StringToCharBytes(tt.input); !bytes.Equal(got, tt.want) {
				t.Errorf("StringToCharBytes(%q) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackString(t *testing.T) {
	dst := make([]int8, 4)
	if err := PackString(dst, "ab€", 0, 1, 3); err != nil {
		t.Fatalf("PackString() error = %v", err)
	}
	want := []int8{0x62, -84, 0x20, 0}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("PackString() dst = %v, want %v", dst, want)
	}

	if err := PackString(dst, "ab", 0, 0, 3); !errors.Is(err, ErrOutOfBoundary) {
		t.Errorf("PackString() error = %v, want ErrOutOfBoundary", err)
	}
}

func TestArrayCopy(t *testing.T) {
	t.Run("distinct buffers", func(t *testing.T) {
		src := []int{1, 2, 3, 4}
		dst := make([]int, 6)
		if err := ArrayCopy(src, 1, dst, 2, 3); err != nil {
			t.Fatalf("ArrayCopy() error = %v", err)
		}
		want := []int{0, 0, 2, 3, 4, 0}
		if !reflect.DeepEqual(dst, want) {
			t.Errorf("ArrayCopy() dst = %v, want %v", dst, want)
		}
	})

	t.Run("same buffer destination after source", func(t *testing.T) {
		buf := []int{1, 2, 3, 4, 5}
		if err := ArrayCopy(buf, 0, buf, 1, 4); err != nil {
			t.Fatalf("ArrayCopy() error = %v", err)
		}
		want := []int{1, 1, 2, 3, 4}
		if !reflect.DeepEqual(buf, want) {
			t.Errorf("ArrayCopy() buf = %v, want %v", buf, want)
		}
	})

	t.Run("same buffer destination before source", func(t *testing.T) {
		buf := []int{1, 2, 3, 4, 5}
		if err := ArrayCopy(buf, 1, buf, 0, 4); err != nil {
			t.Fatalf("ArrayCopy() error = %v", err)
		}
		want := []int{2, 3, 4, 5, 5}
		if !reflect.DeepEqual(buf, want) {
			t.Errorf("ArrayCopy() buf = %v, want %v", buf, want)
		}
	})

	t.Run("overlapping subslices of one array", func(t *testing.T) {
		backing := []byte{'a', 'b', 'c', 'd', 'e'}
		if err := ArrayCopy(backing[0:3], 0, backing[1:], 0, 3); err != nil {
			t.Fatalf("ArrayCopy() error = %v", err)
		}
		if got, want := string(backing), "aabce"; got != want {
			t.Errorf("ArrayCopy() backing = %q, want %q", got, want)
		}
	})

	t.Run("same range is a no-op", func(t *testing.T) {
		buf := []int{7, 8, 9}
		if err := ArrayCopy(buf, 0, buf, 0, 3); err != nil {
			t.Fatalf("ArrayCopy() error = %v", err)
		}
		if want := []int{7, 8, 9}; !reflect.DeepEqual(buf, want) {
			t.Errorf("ArrayCopy() buf = %v, want %v", buf, want)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		if err := ArrayCopy([]int{}, 0, []int{}, 0, 0); err != nil {
			t.Errorf("ArrayCopy() error = %v, want nil", err)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		err := ArrayCopy([]int{1, 2}, 1, make([]int, 5), 0, 2)
		if !errors.Is(err, ErrOutOfBoundary) {
			t.Errorf("ArrayCopy() error = %v, want ErrOutOfBoundary", err)
		}
	})

	t.Run("overflowing count", func(t *testing.T) {
		err := ArrayCopy([]int{1, 2, 3}, 1, make([]int, 3), 1, math.MaxInt)
		if !errors.Is(err, ErrOutOfBoundary) {
			t.Errorf("ArrayCopy() error = %v, want ErrOutOfBoundary", err)
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		err := ArrayCopy([]int{1, 2, 3}, 4, make([]int, 3), 0, 0)
		if !errors.Is(err, ErrOutOfBoundary) {
			t.Errorf("ArrayCopy() error = %v, want ErrOutOfBoundary", err)
		}
	})
}

// Every copy helper must reject counts whose end offset overflows int.
func TestCopyHelpers_OverflowingCount(t *testing.T) {
	huge := math.MaxInt - 1

	tests := []struct {
		name string
		copy func() error
	}{
		{"PackBytes", func() error { return PackBytes(make([]int8, 3), []uint8{1, 2, 3}, 2, 2, huge) }},
		{"PutUint8s", func() error { return PutUint8s(make([]uint8, 3), []int8{1, 2, 3}, 2, 2, huge) }},
		{"PackString", func() error { return PackString(make([]int8, 3), "abc", 2, 2, huge) }},
		{"ArrayCopy", func() error { return ArrayCopy([]byte("abc"), 2, make([]byte, 3), 2, huge) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.copy(); !errors.Is(err, ErrOutOfBoundary) {
				t.Errorf("%s() error = %v, want ErrOutOfBoundary", tt.name, err)
			}
		})
	}
}

func TestSplitNibbles(t *testing.T) {
	tests := []struct {
		input    int
		wantHigh uint8
		wantLow  uint8
		wantErr  bool
	}{
		{20, 0x1, 0x4, false},
		{0, 0, 0, false},
		{0x0a, 0x0, 0xa, false},
		{255, 0xf, 0xf, false},
		{-1, 0, 0, true},
		{256, 0, 0, true},
	}

	for _, tt := range tests {
		high, low, err := SplitNibbles(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("SplitNibbles(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfBoundary) {
				t.Errorf("SplitNibbles(%d) error = %v, want ErrOutOfBoundary", tt.input, err)
			}
			continue
		}
		if high != tt.wantHigh || low != tt.wantLow {
			t.Errorf("SplitNibbles(%d) = (%d, %d), want (%d, %d)", tt.input, high, low, tt.wantHigh, tt.wantLow)
		}
	}
}

func TestCombineNibbles(t *testing.T) {
	got, err := CombineNibbles(0x01, 0x04)
	if err != nil {
		t.Fatalf("CombineNibbles() error = %v", err)
	}
	if got != 20 {
		t.Errorf("CombineNibbles(1, 4) = %d, want 20", got)
	}

	for _, pair := range [][2]int{{16, 0}, {0, 16}, {-1, 0}, {0, -1}} {
		if _, err := CombineNibbles(pair[0], pair[1]); !errors.Is(err, ErrOutOfBoundary) {
			t.Errorf("CombineNibbles(%d, %d) error = %v, want ErrOutOfBoundary", pair[0], pair[1], err)
		}
	}

	for v := 0; v <= 255; v++ {
		high, low, _ := SplitNibbles(v)
		back, err := CombineNibbles(int(high), int(low))
		if err != nil || int(back) != v {
			t.Errorf("CombineNibbles(SplitNibbles(%d)) = %d, %v", v, back, err)
		}
	}
}

func TestCombineUint16(t *testing.T) {
	if got := CombineUint16(0x12, 0x34); got != 0x1234 {
		t.Errorf("CombineUint16(0x12, 0x34) = 0x%04x, want 0x1234", got)
	}
	if got := CombineUint16(int8(-1), int8(-2)); got != 0xfffe {
		t.Errorf("CombineUint16(-1, -2) = 0x%04x, want 0xfffe", got)
	}
}

func TestToChar(t *testing.T) {
	if got := ToChar(0x1f600); got != 0xf600 {
		t.Errorf("ToChar(0x1f600) = 0x%04x, want 0xf600", got)
	}
	if got := ToChar(-1); got != 0xffff {
		t.Errorf("ToChar(-1) = 0x%04x, want 0xffff", got)
	}
}

func TestSpecBytes(t *testing.T) {
	got := SpecBytes(3)
	want := []int8{'1', '1', '1'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SpecBytes(3) = %v, want %v", got, want)
	}

	// length is taken modulo 256
	if got := SpecBytes(256); len(got) != 0 {
		t.Errorf("SpecBytes(256) length = %d, want 0", len(got))
	}
	if got := SpecBytes(int8(-1)); len(got) != 255 {
		t.Errorf("SpecBytes(-1) length = %d, want 255", len(got))
	}
}
