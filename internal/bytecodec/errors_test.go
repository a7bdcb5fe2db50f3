package bytecodec

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindOutOfBoundary, "OutOfBoundary"},
		{KindMalformedHex, "MalformedHex"},
		{KindMalformedBssid, "MalformedBssid"},
		{KindInvalidLength, "InvalidLength"},
		{KindOutOfRange, "OutOfRange"},
		{KindUnsupportedCharset, "UnsupportedCharset"},
		{ErrorKind(99), "ErrorKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	err := newError(KindMalformedHex, "HexToBytes", "hex length must be even, got %d", 3)
	want := "HexToBytes: MalformedHex: hex length must be even, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("boom")
	wrapped := wrapError(KindMalformedBssid, "ParseBSSID", cause, "bad octet")
	if !strings.Contains(wrapped.Error(), "caused by: boom") {
		t.Errorf("Error() = %q, should mention cause", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
}

func TestError_Is(t *testing.T) {
	sentinels := map[ErrorKind]error{
		KindOutOfBoundary:      ErrOutOfBoundary,
		KindMalformedHex:       ErrMalformedHex,
		KindMalformedBssid:     ErrMalformedBssid,
		KindInvalidLength:      ErrInvalidLength,
		KindOutOfRange:         ErrOutOfRange,
		KindUnsupportedCharset: ErrUnsupportedCharset,
	}

	for kind, sentinel := range sentinels {
		err := newError(kind, "Op", "msg")
		if !errors.Is(err, sentinel) {
			t.Errorf("errors.Is(%s error, sentinel) = false, want true", kind)
		}
		for other, otherSentinel := range sentinels {
			if other != kind && errors.Is(err, otherSentinel) {
				t.Errorf("errors.Is(%s error, %s sentinel) = true, want false", kind, other)
			}
		}
	}
}

func TestKindOf(t *testing.T) {
	_, err := HexToBytes("abc")
	wrapped := fmt.Errorf("decoding payload: %w", err)

	kind, ok := KindOf(wrapped)
	if !ok {
		t.Fatal("KindOf() ok = false, want true")
	}
	if kind != KindMalformedHex {
		t.Errorf("KindOf() = %s, want %s", kind, KindMalformedHex)
	}

	if _, ok := KindOf(errors.New("other")); ok {
		t.Error("KindOf(non-codec error) ok = true, want false")
	}
}
