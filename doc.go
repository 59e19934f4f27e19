// Package pygmentize applies syntax highlighting to source code by
// shelling out to the pygmentize command line tool of the Python
// Pygments project.
//
// Pygments must be installed separately for this package to work.
// See https://pygments.org/download/ for instructions. If pygmentize
// lives outside $PATH, point [SetExecutable] or [Tool.Path] at it.
//
// Code is fed to pygmentize on its standard input and the rendered
// output is returned as a string:
//
//	code := `fn main() {
//	    println!("Hello, world!");
//	}`
//
//	html, err := pygmentize.Highlight(code, "rust", pygmentize.HTMLFormatter{})
//	if err != nil {
//		// ...
//	}
//
// The [Formatter] argument selects the output format. Implementations
// are provided for the HTML, SVG, LaTeX, and ANSI terminal formatters
// of pygmentize.
//
// Failures are reported with one of the error types of this package,
// matched with [errors.As]:
//
//   - [NotFoundError]: pygmentize is not installed or not on $PATH
//   - [SpawnError]: the process could not be started
//   - [IOError]: feeding input or collecting output failed
//   - [ExitError]: pygmentize exited non-zero, carrying its stderr
//   - [InvalidUTF8Error]: pygmentize produced undecodable output
package pygmentize
