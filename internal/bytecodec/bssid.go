package bytecodec

import (
	"net"
	"strings"
)

// BSSIDLength is the number of bytes in a BSSID
const BSSIDLength = 6

const bssidSeparator = ":"

// FormatBSSID masks each element with 0xFF and returns the compact hex
// form, e.g. {24, -2, 52, -102, -93, -60} becomes "18fe349aa3c4".
// Any length is accepted.
func FormatBSSID[T Integer](bssid []T) string {
	var sb strings.Builder
	sb.Grow(2 * len(bssid))
	for _, b := range bssid {
		sb.WriteString(ByteToHex(b))
	}
	return sb.String()
}

// CanonicalBSSID returns the colon-separated form "18:fe:34:9a:a3:c4"
func CanonicalBSSID(bssid []byte) (string, error) {
	if len(bssid) != BSSIDLength {
		return "", newError(KindMalformedBssid, "CanonicalBSSID",
			"bssid must be %d bytes, got %d", BSSIDLength, len(bssid))
	}
	return net.HardwareAddr(bssid).String(), nil
}

// ParseBSSID parses "aa:bb:cc:dd:ee:ff". Each of the six segments must be
// one or two hex digits.
func ParseBSSID(s string) ([]byte, error) {
	segments := strings.Split(s, bssidSeparator)
	if len(segments) != BSSIDLength {
		return nil, newError(KindMalformedBssid, "ParseBSSID",
			"expected %d octets, got %d in %q", BSSIDLength, len(segments), s)
	}

	out := make([]byte, BSSIDLength)
	for i, seg := range segments {
		if len(seg) == 1 {
			seg = "0" + seg
		}
		b, err := hexPairToByte("ParseBSSID", seg)
		if err != nil {
			return nil, wrapError(KindMalformedBssid, "ParseBSSID", err,
				"octet %d (%q) is not a hex octet", i, segments[i])
		}
		out[i] = b
	}
	return out, nil
}

// ParseCompactBSSID parses the separator-free form "18fe349aa3c4"
func ParseCompactBSSID(s string) ([]byte, error) {
	if len(s) != 2*BSSIDLength {
		return nil, newError(KindMalformedBssid, "ParseCompactBSSID",
			"expected %d hex digits, got %d", 2*BSSIDLength, len(s))
	}
	b, err := HexToBytes(s)
	if err != nil {
		return nil, wrapError(KindMalformedBssid, "ParseCompactBSSID", err, "invalid bssid %q", s)
	}
	return b, nil
}

// ParseAnyBSSID accepts either the colon-separated or the compact form
func ParseAnyBSSID(s string) ([]byte, error) {
	if strings.Contains(s, bssidSeparator) {
		return ParseBSSID(s)
	}
	return ParseCompactBSSID(s)
}
