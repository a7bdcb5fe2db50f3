package bytecodec

import (
	"golang.org/x/text/encoding/htmlindex"
)

// Charset names a string encoding
type Charset string

// CharsetUTF8 is the only supported charset
const CharsetUTF8 Charset = "UTF-8"

// ParseCharset resolves a charset label ("utf8", "UTF-8", "unicode-1-1-utf-8")
// to a Charset. Unknown labels and known non-UTF-8 charsets fail with
// UnsupportedCharset.
func ParseCharset(label string) (Charset, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", wrapError(KindUnsupportedCharset, "ParseCharset", err, "unknown charset %q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil || name != "utf-8" {
		return "", newError(KindUnsupportedCharset, "ParseCharset", "charset %q is not UTF-8", label)
	}
	return CharsetUTF8, nil
}

// EncodeString encodes s in the given charset
func EncodeString(s string, cs Charset) ([]byte, error) {
	if cs != CharsetUTF8 {
		return nil, newError(KindUnsupportedCharset, "EncodeString", "charset %q", cs)
	}
	return EncodeUTF8(s), nil
}

// DecodeString decodes b from the given charset
func DecodeString(b []byte, cs Charset) (string, error) {
	if cs != CharsetUTF8 {
		return "", newError(KindUnsupportedCharset, "DecodeString", "charset %q", cs)
	}
	return DecodeUTF8(b), nil
}
