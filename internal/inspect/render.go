package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muurk/bytecodec/internal/ui"
)

const byteTableHeader = "offset  hex  unsigned  signed  hi  lo  char"

// Render writes the report to w. With styled set the header is boxed and
// the tables are coloured with lipgloss; otherwise the output is plain text.
func (r *Report) Render(w io.Writer, styled bool) error {
	var b strings.Builder

	header := ui.NewHeader("Byte inspection", r.headerParams())
	if styled {
		b.WriteString(header.Render())
	} else {
		b.WriteString(header.RenderPlain())
	}
	b.WriteString("\n\n")

	b.WriteString(r.textSection(styled))
	b.WriteString("\n")

	if len(r.Bytes) > 0 {
		b.WriteString("\n")
		b.WriteString(r.byteTable(styled))
	}

	if len(r.Words) > 0 {
		b.WriteString("\n")
		b.WriteString(r.wordTable(styled))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) headerParams() map[string]string {
	params := map[string]string{
		"Length": strconv.Itoa(r.Length),
		"CRC-8":  r.CRC8,
	}
	if r.BSSID != "" {
		params["BSSID"] = r.BSSID
	}
	return params
}

func (r *Report) textSection(styled bool) string {
	roundTrip := "yes"
	if !r.UTF8RoundTrip {
		roundTrip = "no"
		if styled {
			roundTrip = ui.WarningStyle.Render(roundTrip)
		}
	}

	return ui.NewResult("", styled).
		Add("hex", r.Hex).
		Add("utf-8", strconv.Quote(r.Text)).
		Add("utf-8 round trip", roundTrip).
		Add("latin-1", strconv.Quote(r.Latin1)).
		Add("base64", r.Base64).
		Render()
}

func (r *Report) byteTable(styled bool) string {
	var b strings.Builder
	if styled {
		b.WriteString(ui.TableHeaderStyle.Render(byteTableHeader))
	} else {
		b.WriteString(byteTableHeader)
	}
	b.WriteByte('\n')

	for _, row := range r.Bytes {
		offset := fmt.Sprintf("%6d", row.Offset)
		if styled {
			offset = ui.MutedStyle.Render(offset)
		}
		fmt.Fprintf(&b, "%s  %3s  %8d  %6d  %2x  %2x  %4s\n",
			offset, row.Hex, row.Unsigned, row.Signed, row.HighNibble, row.LowNibble, row.Char)
	}
	return b.String()
}

func (r *Report) wordTable(styled bool) string {
	const wordTableHeader = "offset  word      int32        float32"

	var b strings.Builder
	if styled {
		b.WriteString(ui.TableHeaderStyle.Render(wordTableHeader))
	} else {
		b.WriteString(wordTableHeader)
	}
	b.WriteByte('\n')

	for _, row := range r.Words {
		offset := fmt.Sprintf("%6d", row.Offset)
		if styled {
			offset = ui.MutedStyle.Render(offset)
		}
		fmt.Fprintf(&b, "%s  %s  %11d  %s\n", offset, row.Hex, row.Int32, row.Float32)
	}
	return b.String()
}
