package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/bytecodec/internal/bytecodec"
	"github.com/muurk/bytecodec/internal/logging"
	"github.com/muurk/bytecodec/internal/ui"
)

type bssidOutput struct {
	Alias     string `json:"alias,omitempty"`
	Canonical string `json:"canonical"`
	Compact   string `json:"compact"`
	Signed    []int8 `json:"signed"`
}

func newBSSIDOutput(alias string, b []byte) (bssidOutput, error) {
	canonical, err := bytecodec.CanonicalBSSID(b)
	if err != nil {
		return bssidOutput{}, err
	}
	return bssidOutput{
		Alias:     alias,
		Canonical: canonical,
		Compact:   bytecodec.FormatBSSID(b),
		Signed:    bytecodec.ToSignedSlice(b),
	}, nil
}

func newBSSIDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bssid",
		Short: "Parse, format and save access point BSSIDs",
	}

	parse := &cobra.Command{
		Use:   "parse <bssid|alias>",
		Short: "Parse a BSSID or saved alias",
		Long: `Parse a BSSID in colon form (18:fe:34:9a:a3:c4) or compact form
(18fe349aa3c4), or look up a saved alias, and print every representation.`,
		Example: `  bytecodec bssid parse 18:fe:34:9a:a3:c4
  bytecodec bssid parse office`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.registry.ResolveBSSID(args[0])
			if err != nil {
				return err
			}

			alias := ""
			if a.registry.GetAccessPoint(args[0]) != nil {
				alias = args[0]
			}

			out, err := newBSSIDOutput(alias, b)
			if err != nil {
				return err
			}

			res := ui.NewResult("", a.styled())
			if alias != "" {
				res.Add("alias", alias)
			}
			res.Add("canonical", out.Canonical).
				Add("compact", out.Compact).
				Add("signed", fmt.Sprint(out.Signed))
			return a.emit(cmd, res.Render(), out)
		},
	}

	format := &cobra.Command{
		Use:   "format <byte>...",
		Short: "Format byte values (signed or unsigned) as a compact BSSID",
		Long: `Format integer byte values as compact hex. Each value is masked to
8 bits, so signed bytes such as -2 format as fe. Use -- before negative values.`,
		Example: `  bytecodec bssid format -- 24 -2 52 -102 -93 -60`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, len(args))
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid byte value %q: %w", arg, err)
				}
				values[i] = v
			}
			s := bytecodec.FormatBSSID(values)
			return a.emit(cmd, s, map[string]string{"bssid": s})
		},
	}

	var label string
	save := &cobra.Command{
		Use:     "save <alias> <bssid>",
		Short:   "Save a BSSID under an alias in the config file",
		Example: `  bytecodec bssid save office 18fe349aa3c4 --label "2nd floor"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.registry.SetAccessPoint(args[0], args[1], label)
			if err != nil {
				return err
			}
			if err := a.registry.SaveTo(a.configPath); err != nil {
				return err
			}
			logging.Info("Saved access point",
				zap.String("alias", strings.TrimSpace(args[0])),
				zap.String("bssid", ap.BSSID),
				zap.String("config_path", a.configPath),
			)
			return a.emit(cmd, fmt.Sprintf("Saved %s = %s", strings.TrimSpace(args[0]), ap.BSSID), ap)
		},
	}
	save.Flags().StringVar(&label, "label", "", "Free-form description")

	remove := &cobra.Command{
		Use:   "remove <alias>",
		Short: "Remove a saved alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.registry.RemoveAccessPoint(args[0]) {
				return fmt.Errorf("no access point saved as %q", args[0])
			}
			if err := a.registry.SaveTo(a.configPath); err != nil {
				return err
			}
			logging.Info("Removed access point", zap.String("alias", args[0]))
			return a.emit(cmd, "Removed "+args[0], map[string]string{"removed": args[0]})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases := a.registry.Aliases()
			if len(aliases) == 0 {
				return a.emit(cmd, "No access points saved.", a.registry.AccessPoints)
			}

			res := ui.NewResult("", a.styled())
			for _, alias := range aliases {
				ap := a.registry.AccessPoints[alias]
				value := ap.BSSID
				if ap.Label != "" {
					value += "  " + ap.Label
				}
				if !ap.LastSeen.IsZero() {
					value += "  (" + ap.LastSeen.Format(time.DateOnly) + ")"
				}
				res.Add(alias, value)
			}
			return a.emit(cmd, res.Render(), a.registry.AccessPoints)
		},
	}

	cmd.AddCommand(parse, format, save, remove, list)
	return cmd
}
