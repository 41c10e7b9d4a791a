package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/observ"
)

type summaryStyles struct {
	header, ok, warn, fail, dim lipgloss.Style
}

func newSummaryStyles(colored bool) summaryStyles {
	if !colored {
		plain := lipgloss.NewStyle()
		return summaryStyles{header: plain, ok: plain, warn: plain, fail: plain, dim: plain}
	}
	return summaryStyles{
		header: lipgloss.NewStyle().Bold(true),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// pad дополняет s пробелами до ширины w в колонках терминала.
func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-runewidth.StringWidth(s), 0))
}

// printSummary prints one row per file: status, warnings, time and path.
func printSummary(w io.Writer, dir string, results []driver.FileResult, colored bool) {
	st := newSummaryStyles(colored)
	fmt.Fprintln(w, st.header.Render(pad("status", 8)+" "+pad("warnings", 9)+" "+pad("time", 10)+" "+"file"))
	var total observ.Report
	warnings, failed, cached := 0, 0, 0
	for _, r := range results {
		status, style := "ok", st.ok
		nwarn := 0
		var ms float64
		switch {
		case r.Err != nil:
			status, style = "error", st.fail
			failed++
		case r.Cached:
			status, style = "cached", st.dim
			cached++
			nwarn = len(r.Render.Output.Warnings)
		default:
			nwarn = len(r.Render.Output.Warnings)
			for _, p := range r.Render.Timings.Phases {
				ms += p.DurationMS
			}
			total.Merge(r.Render.Timings)
			if nwarn > 0 {
				status, style = "warn", st.warn
			}
		}
		warnings += nwarn
		fmt.Fprintf(w, "%s %s %s %s\n",
			style.Render(pad(status, 8)),
			pad(fmt.Sprint(nwarn), 9),
			pad(fmt.Sprintf("%.2fms", ms), 10),
			r.Path)
		if r.Err != nil {
			fmt.Fprintf(w, "%s %s\n", pad("", 8), st.fail.Render(r.Err.Error()))
		}
	}
	fmt.Fprintf(w, "%s: %d files, %d warnings, %d failed, %d cached\n",
		dir, len(results), warnings, failed, cached)
	if len(total.Phases) > 0 {
		printTimings(w, total, colored)
	}
}

// printTimings prints phase durations as a small bar chart.
func printTimings(w io.Writer, report observ.Report, colored bool) {
	st := newSummaryStyles(colored)
	var maxMS float64
	nameWidth := 0
	for _, p := range report.Phases {
		maxMS = max(maxMS, p.DurationMS)
		nameWidth = max(nameWidth, runewidth.StringWidth(p.Name))
	}
	const barWidth = 30
	for _, p := range report.Phases {
		bar := 0
		if maxMS > 0 {
			bar = int(p.DurationMS / maxMS * barWidth)
		}
		line := fmt.Sprintf("%s %8.3fms %s", pad(p.Name, nameWidth), p.DurationMS, strings.Repeat("█", max(bar, 1)))
		if p.Note != "" {
			line += " " + st.dim.Render(p.Note)
		}
		fmt.Fprintln(w, line)
	}
}
