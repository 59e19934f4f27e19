package pygmentize

import "strings"

// Formatter describes the output format that pygmentize renders
// highlighted code in.
//
// Implementations for the common pygmentize formatters are provided in
// this package. See https://pygments.org/docs/formatters/ for the full
// list of formatters and their options.
type Formatter interface {
	// ShortName reports the name of the formatter
	// as understood by pygmentize's -f flag.
	ShortName() string

	// Options renders the formatter's options in the form accepted by
	// pygmentize's -O flag: comma-separated "key=value" pairs.
	// An empty string means no options.
	Options() string
}

var (
	_ Formatter = HTMLFormatter{}
	_ Formatter = SVGFormatter{}
	_ Formatter = LatexFormatter{}
	_ Formatter = TerminalFormatter{}
	_ Formatter = Terminal256Formatter{}
	_ Formatter = TerminalTrueColorFormatter{}
)

// HTMLFormatter formats tokens as HTML 4 <span> tags.
//
// See https://pygments.org/docs/formatters/#HtmlFormatter
// for more information.
type HTMLFormatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool

	// ClassPrefix is prepended to all CSS class names in the output,
	// leaving them unchanged if empty.
	//
	// Use this to avoid collisions with the host page's own styles.
	ClassPrefix string
}

// ShortName reports the name of the HTML formatter.
func (HTMLFormatter) ShortName() string { return "html" }

// Options renders the formatter's options for pygmentize.
func (f HTMLFormatter) Options() string {
	var opts []string
	if f.LineNumbers {
		opts = append(opts, "linenos=true")
	}
	if f.ClassPrefix != "" {
		opts = append(opts, "classprefix="+f.ClassPrefix)
	}
	return strings.Join(opts, ",")
}

// SVGFormatter formats tokens as an SVG graphics file.
// This formatter is still experimental.
// Each line of code is a <text> element with explicit x and y
// coordinates containing <tspan> elements with the individual token
// styles.
//
// See https://pygments.org/docs/formatters/#SvgFormatter
// for more information.
type SVGFormatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool
}

// ShortName reports the name of the SVG formatter.
func (SVGFormatter) ShortName() string { return "svg" }

// Options renders the formatter's options for pygmentize.
func (f SVGFormatter) Options() string {
	if f.LineNumbers {
		return "linenos=true"
	}
	return ""
}

// LatexFormatter formats tokens as LaTeX code.
// The output needs the fancyvrb and color standard packages.
//
// See https://pygments.org/docs/formatters/#LatexFormatter
// for more information.
type LatexFormatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool
}

// ShortName reports the name of the LaTeX formatter.
func (LatexFormatter) ShortName() string { return "latex" }

// Options renders the formatter's options for pygmentize.
func (f LatexFormatter) Options() string {
	if f.LineNumbers {
		return "linenos=true"
	}
	return ""
}

// TerminalFormatter formats tokens with ANSI color sequences, for
// output in a text console. Color sequences are terminated at newlines
// so that paging the output works correctly.
//
// See https://pygments.org/docs/formatters/#TerminalFormatter
// for more information.
type TerminalFormatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool
}

// ShortName reports the name of the terminal formatter.
func (TerminalFormatter) ShortName() string { return "terminal" }

// Options renders the formatter's options for pygmentize.
func (f TerminalFormatter) Options() string {
	if f.LineNumbers {
		return "linenos=true"
	}
	return ""
}

// Terminal256Formatter formats tokens with ANSI color sequences, for
// output in a 256-color terminal or console. Like with
// [TerminalFormatter], color sequences are terminated at newlines so
// that paging the output works correctly.
//
// See https://pygments.org/docs/formatters/#Terminal256Formatter
// for more information.
type Terminal256Formatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool
}

// ShortName reports the name of the 256-color terminal formatter.
func (Terminal256Formatter) ShortName() string { return "terminal256" }

// Options renders the formatter's options for pygmentize.
func (f Terminal256Formatter) Options() string {
	if f.LineNumbers {
		return "linenos=true"
	}
	return ""
}

// TerminalTrueColorFormatter formats tokens with ANSI color sequences,
// for output in a true-color terminal or console. Like with
// [TerminalFormatter], color sequences are terminated at newlines so
// that paging the output works correctly.
//
// See https://pygments.org/docs/formatters/#TerminalTrueColorFormatter
// for more information.
type TerminalTrueColorFormatter struct {
	// LineNumbers specifies whether to output line numbers.
	LineNumbers bool
}

// ShortName reports the name of the true-color terminal formatter.
func (TerminalTrueColorFormatter) ShortName() string { return "terminal16m" }

// Options renders the formatter's options for pygmentize.
func (f TerminalTrueColorFormatter) Options() string {
	if f.LineNumbers {
		return "linenos=true"
	}
	return ""
}
