package main

import (
	"fmt"
	"os"
	"strings"
)

// progressUI decides whether a directory render shows the interactive
// progress view: --ui on forces it, off disables it, auto needs a terminal.
// --quiet always wins.
func progressUI(value string, quiet bool) (bool, error) {
	var show bool
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		show = isTerminal(os.Stdout) && isTerminal(os.Stderr)
	case "on":
		show = true
	case "off":
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return show && !quiet, nil
}
