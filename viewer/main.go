// Viewer shows one of six fractals in a window. Left click zooms in on the
// clicked point, right click zooms out; keys 1-6 switch fractal, R resets
// the view and Q quits.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/scottkirkwood/fractals"
	"github.com/spf13/cobra"
)

type options struct {
	configPath    string
	seed          string
	width, height int
}

func mainCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "viewer [fractal]",
		Short: "Draw a fractal and zoom it with the mouse",
		Long: "Draw a fractal and zoom it with the mouse.\n\n" +
			"Without an argument a menu asks which fractal to draw.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file, reloaded when it changes")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "Hex value for the seed to use")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels, overrides the config")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels, overrides the config")

	cmd.AddCommand(listCmd())
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the fractals",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for i, k := range fractals.Kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, k)
			}
		},
	}
}

// loadSettings merges the config file and the flags.
func loadSettings(opts *options) (fractals.Params, fractals.Seed, error) {
	cfg, err := fractals.LoadConfig(opts.configPath)
	if err != nil {
		return fractals.Params{}, fractals.Seed{}, err
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.seed != "" {
		cfg.Seed = opts.seed
	}
	params, err := cfg.Params()
	if err != nil {
		return params, fractals.Seed{}, err
	}
	seed, err := fractals.InitSeed(cfg.Seed)
	return params, seed, err
}

func runCmd(cmd *cobra.Command, args []string, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	params, seed, err := loadSettings(opts)
	if err != nil {
		return err
	}

	var kind fractals.Kind
	if len(args) == 1 {
		if kind, err = fractals.ParseKind(args[0]); err != nil {
			return fmt.Errorf("%w (choose from %s)", err, kindList())
		}
	} else {
		var ok bool
		kind, ok, err = chooseKind()
		if err != nil || !ok {
			return err
		}
	}

	fmt.Printf("Drawing %s with seed %s\n", kind, seed)
	runWindow(cmd.Context(), newSession(kind, params, seed), opts.configPath)
	return nil
}

func kindList() string {
	names := make([]string, len(fractals.Kinds))
	for i, k := range fractals.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
