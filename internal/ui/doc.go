// Package ui renders bytecodec command output for the terminal.
//
// Every component has a plain form and a lipgloss-styled form. The CLI
// picks styled output only when UseColor allows it (colour enabled in the
// config, stdout is a terminal, NO_COLOR unset), so piped output stays
// free of escape sequences.
//
//	res := ui.NewResult("BSSID", ui.UseColor(prefs.Color))
//	res.Add("canonical", "18:fe:34:9a:a3:c4").Add("compact", "18fe349aa3c4")
//	fmt.Println(res.Render())
package ui
