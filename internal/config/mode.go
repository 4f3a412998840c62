package config

import (
	"fmt"
	"strings"

	"github.com/example/trimmargin/internal/logging"
)

const (
	ModeTrimMargin      = "trim-margin"
	ModeReplaceByMargin = "replace-by-margin"
	ModeTrimIndent      = "trim-indent"
	ModeReplaceIndent   = "replace-indent"
	ModePrepend         = "prepend"
)

// Modes lists the canonical mode names in the order they are documented.
func Modes() []string {
	return []string{ModeTrimMargin, ModeReplaceByMargin, ModeTrimIndent, ModeReplaceIndent, ModePrepend}
}

func NormalizeMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		mode = ModeTrimMargin
	}
	switch mode {
	case ModeTrimMargin, ModeReplaceByMargin, ModeTrimIndent, ModeReplaceIndent, ModePrepend:
		return mode, nil
	case "replace-indent-by-margin":
		return ModeReplaceByMargin, nil
	case "prepend-indent":
		return ModePrepend, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected %s)", raw, strings.Join(Modes(), "|"))
	}
}

func NormalizeLogFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "", logging.FormatText:
		return logging.FormatText, nil
	case logging.FormatJSON:
		return logging.FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q (expected %s|%s)", raw, logging.FormatText, logging.FormatJSON)
	}
}
