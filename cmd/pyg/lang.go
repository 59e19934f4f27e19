package main

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
)

// langFromFilename reports the Pygments lexer alias to use for a file
// name, or an empty string if none is known.
//
// Chroma's lexer registry is a port of the Pygments lexer set, so its
// primary aliases double as pygmentize lexer names.
func langFromFilename(name string) string {
	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		return ""
	}

	cfg := lexer.Config()
	if cfg == nil || len(cfg.Aliases) == 0 {
		return ""
	}
	return cfg.Aliases[0]
}
