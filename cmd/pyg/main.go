package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/vallentin/pygmentize"
	"github.com/vallentin/pygmentize/internal/errdefer"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("pyg: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() { err = errors.Join(err, closeDebug()) }()

	var tool pygmentize.Tool
	if opts.Debug.Bool() {
		tool.Log = log.New(debugw, "", 0)
	}

	if opts.Executable != "" {
		pygmentize.SetExecutable(opts.Executable)
	}

	code, err := cmd.readInput(opts.File)
	if err != nil {
		return errtrace.Wrap(err)
	}

	lang := opts.Language
	if lang == "" && opts.File != "" {
		lang = langFromFilename(opts.File)
		if lang != "" && tool.Log != nil {
			tool.Log.Printf("detected language %q from %q", lang, opts.File)
		}
	}

	format := opts.Format.Formatter(opts.LineNumbers)
	out, err := tool.Highlight(context.Background(), code, lang, format)
	if err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(cmd.writeOutput(opts.Output, out))
}

// readInput reads the code to highlight from the given file,
// or from stdin if the file is empty.
func (cmd *mainCmd) readInput(file string) (string, error) {
	if file == "" {
		bs, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return "", errtrace.Wrap(fmt.Errorf("read stdin: %w", err))
		}
		return string(bs), nil
	}

	bs, err := os.ReadFile(file)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(bs), nil
}

// writeOutput writes the highlighted code to the given file,
// or to stdout if the file is empty.
func (cmd *mainCmd) writeOutput(file, body string) (err error) {
	if file == "" {
		_, err := io.WriteString(cmd.Stdout, body)
		return errtrace.Wrap(err)
	}

	f, err := os.Create(file)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	_, err = io.WriteString(f, body)
	return errtrace.Wrap(err)
}
