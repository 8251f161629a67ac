package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pricetable/internal/config"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/sheet"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
)

type exportOptions struct {
	title string
	out   string
	scale int

	scaleSet bool
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the seed table to a PNG without opening the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scaleSet = cmd.Flags().Changed("scale")
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Banner title (default: config title)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output directory (default: export.dir)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "Pixel scale factor, 1 to 4 (default: export.scale)")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts exportOptions) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	// Flags override the file and go through the same validation.
	cfg := *app.Config
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.out != "" {
		cfg.Export.Dir = opts.out
	}
	if opts.scaleSet {
		cfg.Export.Scale = opts.scale
	}
	if err := config.ValidateConfig(&cfg); err != nil {
		return fmt.Errorf("export flags: %w", err)
	}

	table := export.Snapshot(sheet.New(cfg.Title, cfg.Colors()), false)
	path, err := app.Exporter(cfg.Export.Dir, cfg.Export.Scale).Export(cmd.Context(), table)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
