package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/version"
)

// buildInfo is what `ftml version` reports. Generator is the value pages
// carry in their generator meta entry.
type buildInfo struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	Generator  string   `json:"generator"`
	GitCommit  string   `json:"git_commit,omitempty"`
	GitMessage string   `json:"git_message,omitempty"`
	BuildDate  string   `json:"build_date,omitempty"`
	Blocks     []string `json:"blocks,omitempty"`
	Modules    []string `json:"modules,omitempty"`
}

var (
	versionFormat     string
	versionShowHash   bool
	versionShowMsg    bool
	versionShowDate   bool
	versionShowBlocks bool
	versionShowFull   bool
)

func init() {
	f := versionCmd.Flags()
	f.BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	f.BoolVar(&versionShowMsg, "message", false, "include git commit message")
	f.BoolVar(&versionShowDate, "date", false, "include build timestamp")
	f.BoolVar(&versionShowBlocks, "blocks", false, "list supported blocks and modules")
	f.BoolVar(&versionShowFull, "full", false, "show everything")
	f.StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ftml build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(versionFormat)
		if format != "pretty" && format != "json" {
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
		info := collectBuildInfo(versionShowFull)
		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}
		printBuildInfo(cmd.OutOrStdout(), info, colorEnabled(cmd, os.Stdout))
		return nil
	},
}

func collectBuildInfo(full bool) buildInfo {
	info := buildInfo{
		Tool:      "ftml",
		Version:   strings.TrimSpace(version.Version),
		Generator: version.Generator(),
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if versionShowHash || full {
		info.GitCommit = valueOrUnknown(version.GitCommit)
	}
	if versionShowMsg || full {
		info.GitMessage = valueOrUnknown(version.GitMessage)
	}
	if versionShowDate || full {
		info.BuildDate = valueOrUnknown(version.BuildDate)
	}
	if versionShowBlocks || full {
		for _, spec := range blocks.Specs() {
			info.Blocks = append(info.Blocks, spec.Name)
		}
		for _, m := range blocks.Modules() {
			info.Modules = append(info.Modules, m.Name)
		}
	}
	return info
}

func printBuildInfo(out io.Writer, info buildInfo, colored bool) {
	v := info.Version
	if colored && v == version.Version {
		v = version.Colored()
	}
	fmt.Fprintf(out, "ftml %s\n", v)
	fmt.Fprintf(out, "generator: %s\n", info.Generator)
	if info.GitCommit != "" {
		fmt.Fprintf(out, "commit:    %s\n", info.GitCommit)
	}
	if info.GitMessage != "" {
		fmt.Fprintf(out, "message:   %s\n", info.GitMessage)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "built:     %s\n", info.BuildDate)
	}
	if len(info.Blocks) > 0 {
		fmt.Fprintf(out, "blocks:    %s\n", strings.Join(info.Blocks, " "))
		fmt.Fprintf(out, "modules:   %s\n", strings.Join(info.Modules, " "))
	}
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
