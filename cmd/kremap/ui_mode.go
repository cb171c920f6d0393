package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the --ui flag.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	mode := uiMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI decides on the progress view. In auto mode it needs more
// than one file and an interactive stderr that is not a dumb terminal.
func shouldUseTUI(mode uiMode, files int) bool {
	if mode != uiModeAuto {
		return mode == uiModeOn
	}
	return files > 1 && os.Getenv("TERM") != "dumb" && isTerminal(os.Stderr)
}
