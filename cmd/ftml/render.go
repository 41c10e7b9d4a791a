package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/MrShwhale/ftml/internal/diagfmt"
	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/render/html"
	"github.com/MrShwhale/ftml/internal/ui"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [file.ftml|directory|-]",
	Short: "Render markup to HTML or text",
	Long: `Render compiles a markup file (or stdin) to HTML, JSON, msgpack or plain text.
Given a directory, every *.ftml file under it is rendered in parallel into --out
(without --out only the summary is printed).
Without arguments the pages directory of ftml.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderPage     pageFlags
	renderFormat   string
	renderBodyOnly bool
	renderOut      string
	renderJobs     int
	renderUI       string
	renderCache    bool
	renderCacheDir string
)

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFormat, "format", "html", "output format (html|json|msgpack|text)")
	f.BoolVar(&renderBodyOnly, "body-only", false, "print only the HTML body, without head and styles")
	f.StringVar(&renderOut, "out", "", "output directory for directory renders")
	f.IntVar(&renderJobs, "jobs", 0, "max parallel workers for directory renders (0 = auto)")
	f.StringVar(&renderUI, "ui", "auto", "progress UI for directory renders (auto|on|off)")
	f.BoolVar(&renderCache, "cache", false, "reuse renders of unchanged files")
	f.StringVar(&renderCacheDir, "cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/ftml)")
	addPageFlags(renderCmd, &renderPage)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	switch renderFormat {
	case "html", "json", "msgpack", "text":
	default:
		return fmt.Errorf("unknown format: %s", renderFormat)
	}

	opts, cfg, err := driverOptions(cmd, path)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	opts.Tracer = tracerFrom(cmd)

	if path == "" {
		if path, err = cfg.PagesDir(); err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no input: pass a file, a directory or '-'")
		}
	}
	if path != stdinPath {
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			if renderFormat == "text" {
				return fmt.Errorf("text format is not supported for directories")
			}
			if renderJobs == 0 {
				renderJobs = cfg.Render.Jobs
			}
			return renderDir(cmd, path, opts, renderPage.pageInfo(cmd, cfg, ""))
		}
	}

	input, err := readInput(cmd, path, opts.Preprocess)
	if err != nil {
		return err
	}
	info := renderPage.pageInfo(cmd, cfg, path)
	out := cmd.OutOrStdout()

	if renderFormat == "text" {
		res, err := driver.RenderText(cmd.Context(), input, info, opts)
		if err != nil {
			return err
		}
		reportDiagnostics(cmd, res.Result)
		_, err = fmt.Fprintln(out, res.Output.Text)
		return err
	}

	res, err := driver.RenderHTML(cmd.Context(), input, info, opts)
	if err != nil {
		return err
	}
	reportDiagnostics(cmd, res.Result)
	return writeHTMLOutput(out, &res.Output, &info)
}

func writeHTMLOutput(w io.Writer, out *output.HtmlOutput, info *page.PageInfo) error {
	switch renderFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(out)
	default:
		if renderBodyOnly {
			_, err := fmt.Fprintln(w, out.Body)
			return err
		}
		_, err := io.WriteString(w, html.Document(*out, info))
		return err
	}
}

// reportDiagnostics печатает предупреждения и тайминги в stderr.
func reportDiagnostics(cmd *cobra.Command, res *driver.Result) {
	pf := cmd.Root().PersistentFlags()
	quiet, _ := pf.GetBool("quiet")
	errOut := cmd.ErrOrStderr()
	if !quiet && res.Diagnostics != nil && res.Diagnostics.Len() > 0 {
		diagfmt.Pretty(errOut, res.Diagnostics, res.FileSet, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, os.Stderr),
			Context:   1,
			ShowNotes: true,
		})
	}
	if timings, _ := pf.GetBool("timings"); timings {
		printTimings(errOut, res.Timings, colorEnabled(cmd, os.Stderr))
	}
}

func renderDir(cmd *cobra.Command, dir string, opts driver.Options, info page.PageInfo) error {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files under %s", driver.Ext, dir)
	}
	if renderCache {
		if opts.Cache, err = driver.OpenRenderCache("ftml", renderCacheDir); err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showUI, err := progressUI(renderUI, quiet)
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if showUI {
		events := make(chan driver.Event, 64)
		opts.Progress = driver.ChannelSink{Ch: events}
		errCh := make(chan error, 1)
		go func() {
			var rerr error
			results, rerr = driver.RenderFiles(cmd.Context(), files, info, opts, renderJobs)
			close(events)
			errCh <- rerr
		}()
		if uiErr := ui.Run("rendering "+dir, files, events); uiErr != nil {
			// UI упал, но рендер доводим до конца
			for range events {
			}
		}
		err = <-errCh
	} else {
		results, err = driver.RenderFiles(cmd.Context(), files, info, opts, renderJobs)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if renderOut != "" {
			if err := writeRendered(dir, r, info); err != nil {
				return err
			}
		}
		if !r.Cached {
			reportDiagnostics(cmd, r.Render.Result)
		}
	}
	if !quiet {
		printSummary(cmd.ErrOrStderr(), dir, results, colorEnabled(cmd, os.Stderr))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// writeRendered writes r under --out, mirroring its path below dir.
func writeRendered(dir string, r driver.FileResult, info page.PageInfo) error {
	rel, err := filepath.Rel(dir, r.Path)
	if err != nil {
		rel = filepath.Base(r.Path)
	}
	ext := map[string]string{"html": ".html", "json": ".json", "msgpack": ".mp"}[renderFormat]
	target := filepath.Join(renderOut, strings.TrimSuffix(rel, driver.Ext)+ext)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target) // #nosec G304 -- target is below --out
	if err != nil {
		return err
	}
	if info.Page == "" {
		info.Page = driver.SlugFor(r.Path)
	}
	if info.Title == "" || info.Title == "stdin" {
		info.Title = info.Page
	}
	if werr := writeHTMLOutput(f, &r.Render.Output, &info); werr != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", target, werr)
	}
	return f.Close()
}
