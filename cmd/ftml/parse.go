package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrShwhale/ftml/internal/diagfmt"
	"github.com/MrShwhale/ftml/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ftml|-",
	Short: "Print the syntax tree of a markup file",
	Long:  `Parse builds and resolves the syntax tree of a markup file and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, cfg, err := driverOptions(cmd, filePath)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	opts.Tracer = tracerFrom(cmd)

	input, err := readInput(cmd, filePath, opts.Preprocess)
	if err != nil {
		return err
	}
	res := driver.Parse(cmd.Context(), input, opts)
	reportDiagnostics(cmd, res)

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTreeJSON(out, res.Tree)
	}
	if err := diagfmt.FormatTreePretty(out, res.Tree, res.FileSet); err != nil {
		return err
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet && len(res.Doc.Styles) > 0 {
		fmt.Fprintf(out, "styles: %d\n", len(res.Doc.Styles))
	}
	return nil
}
