package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/pkg/diff"
)

type suggestOptions struct {
	diff bool
}

func newSuggestCmd(flags *rootFlags) *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI model for theme colors and print them as JSON",
	}

	cmd.PersistentFlags().BoolVar(&opts.diff, "diff", false, "Show the change against the configured theme instead of JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "palette",
		Short: "Suggest the six UI colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, flags, opts, func(app *AppContext) (theme.Suggestion, error) {
				return app.Suggester().SuggestPalette(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "gradient",
		Short: "Suggest the three row background stops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, flags, opts, func(app *AppContext) (theme.Suggestion, error) {
				return app.Suggester().SuggestGradient(cmd.Context())
			})
		},
	})

	return cmd
}

func runSuggest(cmd *cobra.Command, flags *rootFlags, opts *suggestOptions, fetch func(*AppContext) (theme.Suggestion, error)) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := fetch(app)
	if err != nil {
		return err
	}

	if opts.diff {
		return printThemeDiff(cmd, app.Config.Colors(), result)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printThemeDiff prints the configured theme against the theme with the
// suggestion applied, both as YAML.
func printThemeDiff(cmd *cobra.Command, current theme.Colors, suggestion theme.Suggestion) error {
	suggested, err := theme.Apply(current, suggestion)
	if err != nil {
		return err
	}

	before, err := yaml.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode current theme: %w", err)
	}
	after, err := yaml.Marshal(suggested)
	if err != nil {
		return fmt.Errorf("encode suggested theme: %w", err)
	}

	out := diff.Lines(before, after, "theme (current)", "theme (suggested)")
	if out == "" {
		out = "theme unchanged\n"
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
