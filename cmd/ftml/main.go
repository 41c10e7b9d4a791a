package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MrShwhale/ftml/internal/prof"
	"github.com/MrShwhale/ftml/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "ftml",
	Short:         "Wikidot-style markup compiler",
	Long:          `ftml compiles Wikidot-style wiki markup to HTML or plain text and reports markup problems`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	// версия для автоматического флага --version
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	if perr := profiling.Stop(); perr != nil {
		fmt.Fprintln(os.Stderr, "ftml:", perr)
	}
	if err != nil {
		os.Exit(1)
	}
}

var profiling *prof.Session

// startProfiling запускает профили из --cpuprofile, --memprofile и --runtime-trace.
func startProfiling(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = pf.GetString("cpuprofile")
	opts.Mem, _ = pf.GetString("memprofile")
	opts.Trace, _ = pf.GetString("runtime-trace")
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	profiling = s
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = startProfiling
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Uint("max-warnings", 0, "maximum number of warnings to report (0 = no limit)")
	pf.Bool("preprocess", true, "normalize whitespace and newlines before parsing")
	pf.Bool("minify-styles", false, "minify collected page styles")
	pf.String("config", "", "path to ftml.toml (default: search upwards from the input)")
	pf.String("mode", "", "render mode (page|draft|list|forum-post|direct-message)")

	pf.String("trace", "", "trace output file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 1024, "ring buffer capacity for --trace-mode ring|both")

	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
