package main

import (
	"fmt"

	"github.com/example/trimmargin/internal/config"
	"github.com/example/trimmargin/internal/text"
)

// transform applies the configured mode to input.
func transform(input string, cfg config.Config) (string, error) {
	switch cfg.Mode {
	case config.ModeTrimMargin:
		return marginResult(text.TrimMargin(input, cfg.Prefix))
	case config.ModeReplaceByMargin:
		return marginResult(text.ReplaceIndentByMargin(input, cfg.NewIndent, cfg.Prefix))
	case config.ModeTrimIndent:
		return text.TrimIndent(input), nil
	case config.ModeReplaceIndent:
		return text.ReplaceIndent(input, cfg.NewIndent), nil
	case config.ModePrepend:
		return text.PrependIndent(input, cfg.Indent), nil
	default:
		return "", fmt.Errorf("unsupported mode %q", cfg.Mode)
	}
}

func marginResult(out string, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("invalid margin prefix: %w", err)
	}
	return out, nil
}
