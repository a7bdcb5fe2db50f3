package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/bytecodec/internal/bytecodec"
	"github.com/muurk/bytecodec/internal/config"
	"github.com/muurk/bytecodec/internal/ui"
)

// hexInputCleaner strips the separators people paste along with hex dumps
var hexInputCleaner = strings.NewReplacer(":", "", " ", "", "-", "", "\t", "", "\n", "", "\r", "")

// emit writes text in text mode or v as indented JSON in json mode
func (a *app) emit(cmd *cobra.Command, text string, v any) error {
	out := cmd.OutOrStdout()

	if a.format == config.FormatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	_, err := fmt.Fprintln(out, text)
	return err
}

// styled reports whether text output should use lipgloss styling
func (a *app) styled() bool {
	if a.format != config.FormatText || a.registry == nil || a.registry.Preferences == nil {
		return false
	}
	return ui.UseColor(a.registry.Preferences.Color)
}

// charset resolves --charset, then the config preference
func (a *app) charset() (bytecodec.Charset, error) {
	if a.charsetName != "" {
		return bytecodec.ParseCharset(a.charsetName)
	}
	return a.registry.Charset()
}

// hexSeparator returns --sep when given, else the config preference
func (a *app) hexSeparator(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("sep") {
		return flagValue
	}
	return a.registry.Preferences.HexSeparator
}

// readInput joins the positional args, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// parseHexInput decodes hex that may carry an 0x prefix or common
// separators between pairs.
func parseHexInput(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return bytecodec.HexToBytes(hexInputCleaner.Replace(s))
}

// readBytes reads input as hex, or as text encoded in the active charset
// when asText is set.
func (a *app) readBytes(cmd *cobra.Command, args []string, asText bool) ([]byte, error) {
	in, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	if !asText {
		return parseHexInput(in)
	}
	cs, err := a.charset()
	if err != nil {
		return nil, err
	}
	return bytecodec.EncodeString(in, cs)
}

// hexArrayArgs accepts either four separate pairs ("3f 80 00 00") or one
// compact string ("3f800000")
func hexArrayArgs(args []string) []string {
	if len(args) == 1 {
		return bytecodec.HexStringToHexArray(args[0])
	}
	return args
}

type bytesOutput struct {
	Hex      string `json:"hex"`
	Length   int    `json:"length"`
	Unsigned []int  `json:"unsigned,omitempty"`
	Signed   []int8 `json:"signed,omitempty"`
}

type textOutput struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// newBytesOutput fills every view of data. Unsigned is an []int so that
// encoding/json renders numbers instead of base64.
func newBytesOutput(data []byte, sep string) bytesOutput {
	unsigned := make([]int, len(data))
	for i, b := range data {
		unsigned[i] = int(b)
	}
	return bytesOutput{
		Hex:      bytecodec.BytesToHex(data, sep),
		Length:   len(data),
		Unsigned: unsigned,
		Signed:   bytecodec.ToSignedSlice(data),
	}
}
