package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/color-game/schemefinder/palette"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

func newMatchCmd() *cobra.Command {
	var (
		base      string
		tolerance int
		source    string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print the schemes holding a color within tolerance of --base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := palette.ValidateTolerance(tolerance); err != nil {
				return err
			}

			cfg := loadConfig()
			if cmd.Flags().Changed("source") {
				cfg.SchemeSource = source
			}

			schemeRepo, closeRepo, err := openSchemeRepo(cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			rows, err := schemeRepo.GetAll()
			if err != nil {
				return err
			}

			finder := palette.NewFinder(nil)
			if err := finder.Load(rows); err != nil {
				return err
			}
			if err := finder.SetBaseColor(base); err != nil {
				return err
			}
			finder.SetTolerance(tolerance)

			if all {
				return renderSchemes(cmd.OutOrStdout(), finder.State(), finder.Repository().Schemes())
			}
			return renderSchemes(cmd.OutOrStdout(), finder.State(), finder.MatchingSchemes())
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", palette.DefaultBaseHex, "reference color as 6 hex digits")
	cmd.Flags().IntVarP(&tolerance, "tolerance", "t", palette.DefaultTolerance, "maximum summed HSL distance, 0-80")
	cmd.Flags().StringVar(&source, "source", SourceEmbedded, "scheme source: embedded or postgres")
	cmd.Flags().BoolVar(&all, "all", false, "print every scheme instead of only matches")
	return cmd
}

func renderSchemes(w io.Writer, state palette.ReferenceState, schemes []palette.Scheme) error {
	base := state.BaseColor
	header := fmt.Sprintf("%s %s hsl(%d, %d%%, %d%%) tolerance %d",
		swatch(base.SourceHex), base.SourceHex, base.Hue, base.Saturation, base.Lightness, state.Tolerance)
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}

	if len(schemes) == 0 {
		_, err := fmt.Fprintln(w, "No schemes found.")
		return err
	}

	for _, scheme := range schemes {
		var row strings.Builder
		for i, c := range scheme {
			if i > 0 {
				row.WriteString(" ")
			}
			row.WriteString(swatch(c.SourceHex))
			row.WriteString(" ")
			row.WriteString(labelStyle.Render(c.SourceHex))
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d schemes\n", len(schemes))
	return err
}

func swatch(hex string) string {
	color := lipgloss.Color("#" + strings.TrimPrefix(hex, "#"))
	return lipgloss.NewStyle().Background(color).Render("   ")
}
