package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/bytecodec/internal/bytecodec"
	"github.com/muurk/bytecodec/internal/logging"
	"github.com/muurk/bytecodec/internal/ui"
)

func newHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Convert between text and hex",
	}

	var sep string
	encode := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text as hex",
		Long: `Encode text in the active charset and print it as hex.

Reads stdin when no text is given.`,
		Example: `  bytecodec hex encode héllo
  echo -n hello | bytecodec hex encode --sep :`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			cs, err := a.charset()
			if err != nil {
				return err
			}
			data, err := bytecodec.EncodeString(text, cs)
			logging.LogConversion("EncodeString", len(text), len(data), err)
			if err != nil {
				return err
			}

			out := newBytesOutput(data, a.hexSeparator(cmd, sep))
			return a.emit(cmd, out.Hex, out)
		},
	}
	encode.Flags().StringVar(&sep, "sep", "", "Separator between hex pairs (default from config)")

	var raw bool
	decode := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode hex into text",
		Long: `Decode hex into bytes and print them as text in the active charset.

Separators (: - space) and an 0x prefix are ignored. With --raw the bytes
are written to stdout unchanged.`,
		Example: `  bytecodec hex decode 68c3a96c6c6f
  bytecodec hex decode 68:c3:a9:6c:6c:6f
  bytecodec hex decode --raw cafe > out.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			data, err := parseHexInput(in)
			logging.LogConversion("HexToBytes", len(in), len(data), err)
			if err != nil {
				return err
			}
			logging.LogRawBytes("Decoded hex", data)

			if raw {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			cs, err := a.charset()
			if err != nil {
				return err
			}
			text, err := bytecodec.DecodeString(data, cs)
			if err != nil {
				return err
			}
			return a.emit(cmd, text, textOutput{Text: text, Length: len(data)})
		},
	}
	decode.Flags().BoolVar(&raw, "raw", false, "Write the decoded bytes instead of text")

	cmd.AddCommand(encode, decode)
	return cmd
}

func newUTF8Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utf8",
		Short: "UTF-8 encode, decode and measure text",
	}

	encode := &cobra.Command{
		Use:     "encode [text]",
		Short:   "Show the UTF-8 bytes of text as hex, unsigned and signed values",
		Example: `  bytecodec utf8 encode "5 €"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			data := bytecodec.EncodeUTF8(text)
			logging.LogConversion("EncodeUTF8", len(text), len(data), nil)

			out := newBytesOutput(data, " ")
			res := ui.NewResult("", a.styled()).
				Add("hex", out.Hex).
				Add("unsigned", fmt.Sprint(out.Unsigned)).
				Add("signed", fmt.Sprint(out.Signed)).
				Add("length", strconv.Itoa(out.Length))
			return a.emit(cmd, res.Render(), out)
		},
	}

	decode := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode UTF-8 bytes given as hex",
		Long: `Decode UTF-8 bytes given as hex.

Decoding never fails: malformed sequences decode to whatever code units
their bit patterns produce, and missing continuation bytes read as zero.`,
		Example: `  bytecodec utf8 decode e282ac`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBytes(cmd, args, false)
			if err != nil {
				return err
			}
			text := bytecodec.DecodeUTF8(data)
			logging.LogConversion("DecodeUTF8", len(data), len(text), nil)
			return a.emit(cmd, text, textOutput{Text: text, Length: len(data)})
		},
	}

	length := &cobra.Command{
		Use:     "len [text]",
		Short:   "Print the UTF-8 byte length of text",
		Example: `  bytecodec utf8 len "héllo"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			n := bytecodec.ByteLength(text)
			return a.emit(cmd, strconv.Itoa(n), map[string]int{"length": n})
		},
	}

	cmd.AddCommand(encode, decode, length)
	return cmd
}

func newLatin1Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latin1",
		Short: "Convert between text and Latin-1 bytes",
	}

	var sep string
	encode := &cobra.Command{
		Use:     "encode [text]",
		Short:   "Encode text as Latin-1 bytes (fails above U+00FF)",
		Example: `  bytecodec latin1 encode café`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			data, err := bytecodec.Latin1ToBytes(text)
			logging.LogConversion("Latin1ToBytes", len(text), len(data), err)
			if err != nil {
				return err
			}
			out := newBytesOutput(data, a.hexSeparator(cmd, sep))
			return a.emit(cmd, out.Hex, out)
		},
	}
	encode.Flags().StringVar(&sep, "sep", "", "Separator between hex pairs (default from config)")

	decode := &cobra.Command{
		Use:     "decode [hex]",
		Short:   "Decode hex as Latin-1 text, one character per byte",
		Example: `  bytecodec latin1 decode 636166e9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBytes(cmd, args, false)
			if err != nil {
				return err
			}
			text := bytecodec.BytesToLatin1(data)
			logging.LogConversion("BytesToLatin1", len(data), len(text), nil)
			return a.emit(cmd, text, textOutput{Text: text, Length: len(data)})
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

func newBase64Cmd(a *app) *cobra.Command {
	var fromHex bool

	cmd := &cobra.Command{
		Use:   "base64 [text]",
		Short: "Base64-encode Latin-1 text or hex bytes",
		Long: `Base64-encode text whose characters are all in U+0000..U+00FF, each
character contributing one byte. With --hex the input is hex bytes instead.`,
		Example: `  bytecodec base64 Man
  bytecodec base64 --hex ff00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				encoded string
				err     error
			)

			if fromHex {
				data, herr := a.readBytes(cmd, args, false)
				if herr != nil {
					return herr
				}
				encoded = bytecodec.Base64EncodeBytes(data)
			} else {
				text, rerr := readInput(cmd, args)
				if rerr != nil {
					return rerr
				}
				encoded, err = bytecodec.Base64Encode(text)
				logging.LogConversion("Base64Encode", len(text), len(encoded), err)
				if err != nil {
					return err
				}
			}

			return a.emit(cmd, encoded, map[string]string{"base64": encoded})
		},
	}
	cmd.Flags().BoolVar(&fromHex, "hex", false, "Treat the input as hex bytes")

	return cmd
}
