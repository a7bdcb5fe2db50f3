package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muurk/bytecodec/internal/bytecodec"
)

// CurrentVersion is the only config file version this build understands
const CurrentVersion = 1

// Output formats accepted by Preferences.OutputFormat
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Registry represents the entire user configuration file.
// It stores conversion preferences and named access points.
type Registry struct {
	Version      int                     `yaml:"version" json:"version"`
	Preferences  *Preferences            `yaml:"preferences,omitempty" json:"preferences,omitempty"`
	AccessPoints map[string]*AccessPoint `yaml:"access_points,omitempty" json:"access_points,omitempty"` // Keyed by alias
}

// Preferences holds defaults applied by the CLI when a flag is not given.
type Preferences struct {
	Charset       string `yaml:"charset" json:"charset"`                                   // Charset label for text conversions
	HexSeparator  string `yaml:"hex_separator" json:"hex_separator"`                       // Separator between hex pairs ("" for compact)
	FixedDecimals *int   `yaml:"fixed_decimals,omitempty" json:"fixed_decimals,omitempty"` // Decimal places for float32 decode; nil prints shortest form
	OutputFormat  string `yaml:"output_format" json:"output_format"`                       // "text" or "json"
	Color         bool   `yaml:"color" json:"color"`                                       // Style terminal output with lipgloss
}

// AccessPoint is a saved BSSID alias
type AccessPoint struct {
	BSSID    string    `yaml:"bssid" json:"bssid"`                             // Canonical aa:bb:cc:dd:ee:ff form
	Label    string    `yaml:"label,omitempty" json:"label,omitempty"`         // Free-form description
	LastSeen time.Time `yaml:"last_seen,omitempty" json:"last_seen,omitempty"` // When the alias was last saved or resolved
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:      CurrentVersion,
		Preferences:  defaultPreferences(),
		AccessPoints: make(map[string]*AccessPoint),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		Charset:      string(bytecodec.CharsetUTF8),
		HexSeparator: "",
		OutputFormat: FormatText,
		Color:        true,
	}
}

// Validate checks the registry for values the CLI cannot use.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}

	if p := r.Preferences; p != nil {
		if p.Charset != "" {
			if _, err := bytecodec.ParseCharset(p.Charset); err != nil {
				return fmt.Errorf("preferences.charset: %w", err)
			}
		}
		if d := p.FixedDecimals; d != nil && (*d < 0 || *d > bytecodec.MaxFixedDecimals) {
			return fmt.Errorf("preferences.fixed_decimals must be within 0..%d, got %d", bytecodec.MaxFixedDecimals, *d)
		}
		switch p.OutputFormat {
		case "", FormatText, FormatJSON:
		default:
			return fmt.Errorf("preferences.output_format must be %q or %q, got %q", FormatText, FormatJSON, p.OutputFormat)
		}
	}

	for alias, ap := range r.AccessPoints {
		if ap == nil {
			return fmt.Errorf("access point %q is empty", alias)
		}
		if _, err := bytecodec.ParseAnyBSSID(ap.BSSID); err != nil {
			return fmt.Errorf("access point %q: %w", alias, err)
		}
	}

	return nil
}

// Charset returns the preferred charset, defaulting to UTF-8.
func (r *Registry) Charset() (bytecodec.Charset, error) {
	if r.Preferences == nil || r.Preferences.Charset == "" {
		return bytecodec.CharsetUTF8, nil
	}
	return bytecodec.ParseCharset(r.Preferences.Charset)
}

// SetAccessPoint saves or replaces an alias. The BSSID may be given in
// colon or compact form and is stored canonically.
func (r *Registry) SetAccessPoint(alias, bssid, label string) (*AccessPoint, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, fmt.Errorf("access point alias must not be empty")
	}

	raw, err := bytecodec.ParseAnyBSSID(bssid)
	if err != nil {
		return nil, err
	}
	canonical, err := bytecodec.CanonicalBSSID(raw)
	if err != nil {
		return nil, err
	}

	if r.AccessPoints == nil {
		r.AccessPoints = make(map[string]*AccessPoint)
	}

	ap := &AccessPoint{
		BSSID:    canonical,
		Label:    label,
		LastSeen: time.Now(),
	}
	r.AccessPoints[alias] = ap
	return ap, nil
}

// GetAccessPoint returns the access point saved under alias, or nil.
func (r *Registry) GetAccessPoint(alias string) *AccessPoint {
	return r.AccessPoints[alias]
}

// RemoveAccessPoint deletes an alias. Reports whether it existed.
func (r *Registry) RemoveAccessPoint(alias string) bool {
	if _, ok := r.AccessPoints[alias]; !ok {
		return false
	}
	delete(r.AccessPoints, alias)
	return true
}

// Aliases returns the saved aliases in sorted order.
func (r *Registry) Aliases() []string {
	aliases := make([]string, 0, len(r.AccessPoints))
	for alias := range r.AccessPoints {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// ResolveBSSID turns an alias or a literal BSSID into its 6 bytes.
// Aliases take precedence over literals.
func (r *Registry) ResolveBSSID(nameOrBSSID string) ([]byte, error) {
	if ap := r.GetAccessPoint(nameOrBSSID); ap != nil {
		b, err := bytecodec.ParseAnyBSSID(ap.BSSID)
		if err != nil {
			return nil, fmt.Errorf("access point %q: %w", nameOrBSSID, err)
		}
		return b, nil
	}
	return bytecodec.ParseAnyBSSID(nameOrBSSID)
}
