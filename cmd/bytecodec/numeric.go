package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/bytecodec/internal/bytecodec"
	"github.com/muurk/bytecodec/internal/logging"
	"github.com/muurk/bytecodec/internal/ui"
)

// shortestDecimals asks float32 decode for the shortest round-tripping form
const shortestDecimals = -1

type checksumOutput struct {
	CRC8     string `json:"crc8"`
	Unsigned uint8  `json:"unsigned"`
	Signed   int8   `json:"signed"`
	Length   int    `json:"length"`
}

type wordOutput struct {
	Hex   []string `json:"hex"`
	Value string   `json:"value"`
}

type nibbleOutput struct {
	Value uint8 `json:"value"`
	High  uint8 `json:"high"`
	Low   uint8 `json:"low"`
}

func newCRC8Cmd(a *app) *cobra.Command {
	var asText bool

	cmd := &cobra.Command{
		Use:   "crc8 [hex]",
		Short: "Compute the Maxim CRC-8 of hex bytes or text",
		Example: `  bytecodec crc8 010203
  bytecodec crc8 --text 123456789`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBytes(cmd, args, asText)
			if err != nil {
				return err
			}

			crc := bytecodec.CRC8(data)
			logging.LogRawBytes("CRC-8 input", data)

			out := checksumOutput{
				CRC8:     bytecodec.ByteToHex(crc),
				Unsigned: crc,
				Signed:   bytecodec.ToSigned(crc),
				Length:   len(data),
			}
			res := ui.NewResult("", a.styled()).
				Add("crc8", out.CRC8).
				Add("unsigned", strconv.Itoa(int(out.Unsigned))).
				Add("signed", strconv.Itoa(int(out.Signed)))
			return a.emit(cmd, res.Render(), out)
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "Treat the input as text in the active charset")

	return cmd
}

func newFloat32Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "float32",
		Short: "Convert float32 values to and from big-endian hex",
	}

	encode := &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the IEEE-754 bit pattern of a float32 as hex pairs",
		Example: `  bytecodec float32 encode 3.14159
  bytecodec float32 encode -- -2.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("invalid float32 %q: %w", args[0], err)
			}
			pairs := bytecodec.Float32ToHex(float32(f))
			return a.emit(cmd, strings.Join(pairs, " "), wordOutput{Hex: pairs, Value: args[0]})
		},
	}

	var decimals int
	decode := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode four hex pairs into a float32",
		Long: `Decode four big-endian hex pairs, given separately or as one 8-digit
string, into a float32. --decimals fixes the number of decimal places;
without it the config preference applies, then the shortest exact form.`,
		Example: `  bytecodec float32 decode 40 49 0f d0
  bytecodec float32 decode 40490fd0 --decimals 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := hexArrayArgs(args)

			if !cmd.Flags().Changed("decimals") && a.registry.Preferences.FixedDecimals != nil {
				decimals = *a.registry.Preferences.FixedDecimals
			}

			var (
				value string
				err   error
			)
			if decimals == shortestDecimals {
				var f float32
				f, err = bytecodec.HexToFloat32(pairs)
				value = strconv.FormatFloat(float64(f), 'g', -1, 32)
			} else {
				value, err = bytecodec.HexToFloat32Fixed(pairs, decimals)
			}
			logging.LogConversion("HexToFloat32", len(pairs), len(value), err)
			if err != nil {
				return err
			}

			return a.emit(cmd, value, wordOutput{Hex: pairs, Value: value})
		},
	}
	decode.Flags().IntVar(&decimals, "decimals", shortestDecimals, "Decimal places (-1 for shortest exact form)")

	cmd.AddCommand(encode, decode)
	return cmd
}

func newInt32Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "int32",
		Short: "Convert int32 values to and from big-endian hex",
	}

	encode := &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the two's-complement bit pattern of an int32 as hex pairs",
		Example: `  bytecodec int32 encode 305419896
  bytecodec int32 encode -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid int32 %q: %w", args[0], err)
			}
			pairs := bytecodec.Int32ToHex(int32(v))
			return a.emit(cmd, strings.Join(pairs, " "), wordOutput{Hex: pairs, Value: strconv.FormatInt(v, 10)})
		},
	}

	decode := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode four hex pairs into an int32",
		Example: `  bytecodec int32 decode ff ff ff fe
  bytecodec int32 decode fffffffe`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := hexArrayArgs(args)
			v, err := bytecodec.HexToInt32(pairs)
			logging.LogConversion("HexToInt32", len(pairs), 1, err)
			if err != nil {
				return err
			}
			value := strconv.FormatInt(int64(v), 10)
			return a.emit(cmd, value, wordOutput{Hex: pairs, Value: value})
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

func newNibbleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nibble",
		Short: "Split a byte into 4-bit halves or join two halves",
	}

	split := &cobra.Command{
		Use:     "split <value>",
		Short:   "Split a byte (0..255, decimal or 0x hex) into nibbles",
		Example: `  bytecodec nibble split 20
  bytecodec nibble split 0xa5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid byte value %q: %w", args[0], err)
			}
			high, low, err := bytecodec.SplitNibbles(int(v))
			if err != nil {
				return err
			}
			out := nibbleOutput{Value: uint8(v), High: high, Low: low}
			return a.emit(cmd, fmt.Sprintf("%d %d", high, low), out)
		},
	}

	combine := &cobra.Command{
		Use:     "combine <high> <low>",
		Short:   "Join two nibbles (0..15) into a byte",
		Example: `  bytecodec nibble combine 1 4`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			high, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid nibble %q: %w", args[0], err)
			}
			low, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid nibble %q: %w", args[1], err)
			}
			v, err := bytecodec.CombineNibbles(high, low)
			if err != nil {
				return err
			}
			out := nibbleOutput{Value: v, High: uint8(high), Low: uint8(low)}
			return a.emit(cmd, strconv.Itoa(int(v)), out)
		},
	}

	cmd.AddCommand(split, combine)
	return cmd
}
