package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/vallentin/pygmentize"
	"github.com/vallentin/pygmentize/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")

	//go:embed help.txt
	_defaultHelp string
)

// params holds all arguments for pyg.
type params struct {
	version bool

	Format      formatFlag
	Language    string
	LineNumbers bool

	Output string
	Config string

	Executable string
	Debug      flagvalue.FileSwitch

	File string
}

// cliParser parses the command line arguments for pyg.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("pyg", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_, _ = io.WriteString(cmd.Stderr, _defaultHelp)
	}

	p := params{Format: _defaultFormat}

	// Rendering:
	flag.Var(&p.Format, "f", "")
	flag.StringVar(&p.Language, "l", "", "")
	flag.BoolVar(&p.LineNumbers, "linenos", false, "")

	// Filesystem:
	flag.StringVar(&p.Output, "o", "", "")
	flag.StringVar(&p.Config, "config", "", "")

	// Program-level:
	flag.StringVar(&p.Executable, "exe", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	err := ff.Parse(fset, args,
		ff.WithEnvVarPrefix("PYG"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "pyg", _version)
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		// No file. The code comes in on stdin.
	case 1:
		p.File = args[0]
	default:
		fmt.Fprintln(cmd.Stderr, "Please provide at most one file.")
		fset.Usage()
		return nil, errInvalidArguments
	}

	return p, nil
}

const _defaultFormat formatFlag = "terminal"

// _formatNames lists the valid values of the -f flag.
var _formatNames = []string{
	"html",
	"latex",
	"svg",
	"terminal",
	"terminal16m",
	"terminal256",
}

// formatFlag is pyg's -f flag,
// holding the name of one of the known output formats.
type formatFlag string

var _ flag.Getter = (*formatFlag)(nil)

// Get returns the name of the selected format.
func (f *formatFlag) Get() any { return string(*f) }

// String returns the name of the selected format.
func (f *formatFlag) String() string { return string(*f) }

// Set receives a command line value.
func (f *formatFlag) Set(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, name := range _formatNames {
		if s == name {
			*f = formatFlag(s)
			return nil
		}
	}
	return fmt.Errorf("unknown format %q: valid values are %q", s, _formatNames)
}

// Formatter builds the pygmentize formatter selected by this flag.
func (f *formatFlag) Formatter(lineNumbers bool) pygmentize.Formatter {
	switch *f {
	case "html":
		return pygmentize.HTMLFormatter{LineNumbers: lineNumbers}
	case "latex":
		return pygmentize.LatexFormatter{LineNumbers: lineNumbers}
	case "svg":
		return pygmentize.SVGFormatter{LineNumbers: lineNumbers}
	case "terminal16m":
		return pygmentize.TerminalTrueColorFormatter{LineNumbers: lineNumbers}
	case "terminal256":
		return pygmentize.Terminal256Formatter{LineNumbers: lineNumbers}
	default:
		return pygmentize.TerminalFormatter{LineNumbers: lineNumbers}
	}
}
