package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
	"github.com/at-ishikawa/wordwise/internal/export"
)

var exportExtensions = map[export.Format]string{
	export.FormatYAML:     ".yml",
	export.FormatMarkdown: ".md",
	export.FormatPDF:      ".pdf",
}

func newExportCommand() *cobra.Command {
	var formatName string
	var output string
	var templatePath string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the local dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if output == "" {
				output = "dictionary" + exportExtensions[format]
			}

			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				records, err := export.Collect(ctx, resolver.Store())
				if err != nil {
					return fmt.Errorf("export.Collect > %w", err)
				}
				if err := export.WriteFile(output, format, records, templatePath); err != nil {
					return fmt.Errorf("export.WriteFile > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(records), output)
				return nil
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&formatName, "format", string(export.FormatYAML), fmt.Sprintf("output format. Possible values are %v", export.Formats))
	flags.StringVarP(&output, "output", "o", "", "output file path")
	flags.StringVar(&templatePath, "template", "", "Markdown template for the markdown and pdf formats")
	return command
}
