package pygmentize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/muesli/termenv"
	"github.com/vallentin/pygmentize/internal/linebuf"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// run invokes the pygmentize executable with the given arguments,
// feeding it stdin and returning its decoded standard output.
//
// Failures are reported as one of the error types defined in this
// package, based on where the invocation broke down.
func (t *Tool) run(ctx context.Context, args []string, stdin io.Reader) (string, error) {
	logger := t.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	exe := t.Path
	if exe == "" {
		exe = executablePath()
	}

	errlines := linebuf.New(func(line string) {
		logger.Printf("pygmentize: %s", line)
	})
	defer errlines.Flush()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(&stderr, errlines)

	logger.Printf("run: %s %s", exe, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", errtrace.Wrap(&NotFoundError{Path: exe, Err: err})
		}
		return "", errtrace.Wrap(&SpawnError{Err: err})
	}
	waitErr := cmd.Wait()

	// Running pygmentize turns off virtual terminal processing in the
	// parent console on Windows, garbling ANSI output printed after it.
	// Turn it back on.
	restoreVT(os.Stdout)
	restoreVT(os.Stderr)

	if waitErr != nil {
		// A cancelled context kills the process, which would otherwise
		// surface as an ExitError for the kill signal.
		if ctx.Err() != nil {
			return "", errtrace.Wrap(fmt.Errorf("pygmentize: %w", ctx.Err()))
		}

		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return "", errtrace.Wrap(&ExitError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   lossyString(stderr.Bytes()),
			})
		}
		return "", errtrace.Wrap(&IOError{Err: waitErr})
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", errtrace.Wrap(&InvalidUTF8Error{Output: stdout.Bytes()})
	}
	return stdout.String(), nil
}

// restoreVT re-enables virtual terminal processing on the console
// attached to w. Best effort: failures are ignored, and the restore
// func is dropped so the console keeps VT processing enabled.
// No-op on non-Windows platforms and non-console writers.
func restoreVT(w io.Writer) {
	_, _ = termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(w))
}

// lossyString decodes b as UTF-8, replacing ill-formed sequences with
// the Unicode replacement character.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
