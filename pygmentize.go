package pygmentize

import (
	"context"
	"log"
	"strings"
	"sync"
)

// DefaultExecutable is the name of the pygmentize executable.
// It is resolved with the operating system's executable search
// mechanism, typically against $PATH.
const DefaultExecutable = "pygmentize"

// _executable is the process-wide executable path,
// guarded against concurrent highlighters.
var _executable = struct {
	sync.RWMutex
	path string
}{path: DefaultExecutable}

// SetExecutable changes the pygmentize executable invoked by this
// package. Use this if pygmentize is installed outside $PATH, or under
// a different name. An empty path restores [DefaultExecutable].
//
// The path is not validated here. Pointing this at a missing executable
// surfaces as a [NotFoundError] on the next highlight call.
//
// SetExecutable is safe for concurrent use with highlight calls:
// each call resolves the executable exactly once, when it starts the
// process.
func SetExecutable(path string) {
	if path == "" {
		path = DefaultExecutable
	}
	_executable.Lock()
	_executable.path = path
	_executable.Unlock()
}

// executablePath reports the currently configured executable path.
func executablePath() string {
	_executable.RLock()
	defer _executable.RUnlock()
	return _executable.path
}

// Tool is a handle to the pygmentize CLI.
//
// The zero value is ready to use: it invokes whichever executable
// [SetExecutable] configured and discards debug output.
type Tool struct {
	// Path is the path to the pygmentize executable.
	// If unset, the process-wide path set with SetExecutable is used.
	Path string

	// Log is the logger to use for debug output: the arguments of each
	// invocation, and everything pygmentize prints to its stderr.
	Log *log.Logger
}

// Highlight applies syntax highlighting to code written in lang,
// rendering it in the format described by f.
//
// If lang is empty, pygmentize guesses the language from the code
// itself. Note though, that this option is not very reliable.
// See supported languages at https://pygments.org/languages/.
//
// The code is fed to pygmentize on its stdin and the rendered output
// is returned exactly as pygmentize produced it.
func (t *Tool) Highlight(ctx context.Context, code, lang string, f Formatter) (string, error) {
	args := buildArgs(f.ShortName(), lang, f.Options())
	return t.run(ctx, args, strings.NewReader(code))
}

// Highlight applies syntax highlighting to code written in lang,
// rendering it in the format described by f.
//
// It is shorthand for [Tool.Highlight] on a zero Tool
// with a background context.
func Highlight(code, lang string, f Formatter) (string, error) {
	var t Tool
	return t.Highlight(context.Background(), code, lang, f)
}

// buildArgs assembles the pygmentize argument vector.
// The order is fixed: -f first, then -l or -g, then -O.
func buildArgs(format, lang, options string) []string {
	args := make([]string, 0, 6)
	args = append(args, "-f", format)
	if lang != "" {
		args = append(args, "-l", lang)
	} else {
		// No language given. Have pygmentize guess it.
		args = append(args, "-g")
	}
	if options != "" {
		args = append(args, "-O", options)
	}
	return args
}
