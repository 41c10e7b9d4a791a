package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MrShwhale/ftml/internal/diagfmt"
	"github.com/MrShwhale/ftml/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.ftml|directory|->",
	Short: "Report markup problems",
	Long: `Diag parses and resolves a markup file, or every *.ftml file within a directory,
and prints the warnings. Rendering always succeeds; diag only reports.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	diagCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("warnings-as-errors", false, "exit with a non-zero status when warnings are found")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

type diagFileJSON struct {
	Path string `json:"path"`
	diagfmt.DiagnosticsOutput
}

type diagReportJSON struct {
	Files []diagFileJSON `json:"files"`
	Count int            `json:"count"`
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeStr)
	if !ok {
		return fmt.Errorf("unknown path mode: %s", pathModeStr)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	opts, cfg, err := driverOptions(cmd, target)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	opts.Tracer = tracerFrom(cmd)

	files := []string{target}
	baseDir := "."
	if target != stdinPath {
		if st, serr := os.Stat(target); serr == nil && st.IsDir() {
			if files, err = driver.ListFiles(target); err != nil {
				return fmt.Errorf("failed to list %s: %w", target, err)
			}
			baseDir = target
		}
	}

	results := make([]*driver.Result, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			input, err := readInput(cmd, path, opts.Preprocess)
			if err != nil {
				return err
			}
			fileOpts := opts
			if path != stdinPath {
				fileOpts.Path = path
			}
			results[i] = driver.Parse(ctx, input, fileOpts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := 0
	report := diagReportJSON{Files: make([]diagFileJSON, 0, len(results))}
	for i, res := range results {
		total += res.Diagnostics.Len()
		switch format {
		case "pretty":
			diagfmt.Pretty(out, res.Diagnostics, res.FileSet, diagfmt.PrettyOpts{
				Color:     colorEnabled(cmd, os.Stdout),
				Context:   1,
				PathMode:  pathMode,
				BaseDir:   baseDir,
				ShowNotes: withNotes,
			})
		case "short":
			diagfmt.Short(out, res.Diagnostics, res.FileSet, pathMode, baseDir)
		case "json":
			report.Files = append(report.Files, diagFileJSON{
				Path: files[i],
				DiagnosticsOutput: diagfmt.BuildDiagnosticsOutput(res.Diagnostics, res.FileSet, diagfmt.JSONOpts{
					IncludePositions: true,
					PathMode:         pathMode,
					BaseDir:          baseDir,
					IncludeNotes:     withNotes,
				}),
			})
		}
	}

	if format == "json" {
		report.Count = total
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet && len(files) > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d files, %d warnings\n", len(files), total)
	}

	if strict && total > 0 {
		return fmt.Errorf("%d warnings", total)
	}
	return nil
}
