package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrShwhale/ftml/internal/diagfmt"
	"github.com/MrShwhale/ftml/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ftml|-",
	Short: "Tokenize a markup file",
	Long:  `Tokenize breaks a markup file down into the tokens the parser sees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, _, err := driverOptions(cmd, filePath)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, filePath, opts.Preprocess)
	if err != nil {
		return err
	}

	result := driver.Tokenize(cmd.Context(), input, opts)

	// Выводим диагностику в stderr, если есть
	if result.Diagnostics.HasWarnings() {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Diagnostics, result.FileSet, diagfmt.PrettyOpts{
			Color:   colorEnabled(cmd, os.Stderr),
			Context: 1,
		})
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
}
