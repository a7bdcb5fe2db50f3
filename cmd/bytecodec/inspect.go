package main

import (
	"github.com/spf13/cobra"

	"github.com/muurk/bytecodec/internal/config"
	"github.com/muurk/bytecodec/internal/inspect"
	"github.com/muurk/bytecodec/internal/logging"
)

func newInspectCmd(a *app) *cobra.Command {
	var asText bool

	cmd := &cobra.Command{
		Use:   "inspect [hex]",
		Short: "Explain a byte buffer in every representation",
		Long: `Show each byte as hex, unsigned, signed, nibbles and character, each
aligned 4-byte group as int32 and float32, and the buffer's CRC-8, UTF-8
text, Latin-1 text and base64. Six-byte buffers are also shown as a BSSID.`,
		Example: `  bytecodec inspect 18fe349aa3c4
  bytecodec inspect --text "héllo"
  bytecodec inspect 3f800000 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readBytes(cmd, args, asText)
			if err != nil {
				return err
			}
			logging.LogRawBytes("Inspecting", data)

			report := inspect.Analyze(data)
			if a.format == config.FormatJSON {
				return a.emit(cmd, "", report)
			}
			return report.Render(cmd.OutOrStdout(), a.styled())
		},
	}
	cmd.Flags().BoolVar(&asText, "text", false, "Treat the input as text in the active charset")

	return cmd
}
