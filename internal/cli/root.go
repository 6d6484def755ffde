// Package cli is the cobra front end for the ringdial binary.
package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"ringdial/internal/config"
	"ringdial/internal/ui"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := newRootCmd()
	if err := config.Init(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()

	root := &cobra.Command{
		Use:           "ringdial",
		Short:         "Circular progress dial for the terminal",
		Long:          "Ringdial renders a circular progress indicator as braille art: an outline ring, a filled center circle and a progress arc. It runs determinate (a fraction fills the ring) or indeterminate (a quarter arc spins while the duration is unknown).",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDial()
		},
	}

	f := root.Flags()
	f.Int("ring-width", defaults.RingWidth, "Stroke width of the progress arc in dots")
	f.Float64("scale", defaults.Scale, "Inner circle scale relative to the outer radius")
	f.Int("size", 0, "Fixed dial size in dots (0 sizes from the window)")
	f.Int("fps", defaults.FPS, "Animation frames per second")
	f.Bool("indeterminate", false, "Start in loading mode")
	f.Float64("progress", 0, "Initial progress fraction in 0..1")
	f.String("theme", defaults.Theme, "Color theme: "+strings.Join(ui.ThemeNames(), ", "))
	f.String("outline", "", "Outline color as #RRGGBB, overrides the theme")
	f.String("ring", "", "Arc color as #RRGGBB, overrides the theme")
	f.String("center", "", "Center color as #RRGGBB, overrides the theme")

	return root
}

func runDial() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dial: %w", err)
	}
	return nil
}

// buildOptions maps the resolved config onto host options, applying any hex
// color overrides to the chosen theme.
func buildOptions(cfg config.Config) (ui.Options, error) {
	theme := ui.LookupTheme(cfg.Theme)

	overrides := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"outline", cfg.Outline, &theme.Outline},
		{"ring", cfg.Ring, &theme.Ring},
		{"center", cfg.Center, &theme.Center},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		col, err := colorful.Hex(o.hex)
		if err != nil {
			return ui.Options{}, fmt.Errorf("%s color: %w", o.name, err)
		}
		*o.dst = col
	}

	return ui.Options{
		RingWidth:     cfg.RingWidth,
		CircleScale:   cfg.Scale,
		FixedSize:     cfg.Size,
		FPS:           cfg.FPS,
		Indeterminate: cfg.Indeterminate,
		StartProgress: cfg.Progress,
		Theme:         theme,
	}, nil
}
