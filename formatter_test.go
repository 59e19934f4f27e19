package pygmentize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc        string
		give        Formatter
		wantName    string
		wantOptions string
	}{
		{
			desc:     "html",
			give:     HTMLFormatter{},
			wantName: "html",
		},
		{
			desc:        "html with line numbers",
			give:        HTMLFormatter{LineNumbers: true},
			wantName:    "html",
			wantOptions: "linenos=true",
		},
		{
			desc:        "html with class prefix",
			give:        HTMLFormatter{ClassPrefix: "pyg-"},
			wantName:    "html",
			wantOptions: "classprefix=pyg-",
		},
		{
			desc:        "html with everything",
			give:        HTMLFormatter{LineNumbers: true, ClassPrefix: "pyg-"},
			wantName:    "html",
			wantOptions: "linenos=true,classprefix=pyg-",
		},
		{
			desc:     "svg",
			give:     SVGFormatter{},
			wantName: "svg",
		},
		{
			desc:        "svg with line numbers",
			give:        SVGFormatter{LineNumbers: true},
			wantName:    "svg",
			wantOptions: "linenos=true",
		},
		{
			desc:     "latex",
			give:     LatexFormatter{},
			wantName: "latex",
		},
		{
			desc:        "latex with line numbers",
			give:        LatexFormatter{LineNumbers: true},
			wantName:    "latex",
			wantOptions: "linenos=true",
		},
		{
			desc:     "terminal",
			give:     TerminalFormatter{},
			wantName: "terminal",
		},
		{
			desc:        "terminal with line numbers",
			give:        TerminalFormatter{LineNumbers: true},
			wantName:    "terminal",
			wantOptions: "linenos=true",
		},
		{
			desc:     "terminal256",
			give:     Terminal256Formatter{},
			wantName: "terminal256",
		},
		{
			desc:        "terminal256 with line numbers",
			give:        Terminal256Formatter{LineNumbers: true},
			wantName:    "terminal256",
			wantOptions: "linenos=true",
		},
		{
			desc:     "true color",
			give:     TerminalTrueColorFormatter{},
			wantName: "terminal16m",
		},
		{
			desc:        "true color with line numbers",
			give:        TerminalTrueColorFormatter{LineNumbers: true},
			wantName:    "terminal16m",
			wantOptions: "linenos=true",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantName, tt.give.ShortName())
			assert.Equal(t, tt.wantOptions, tt.give.Options())
		})
	}
}
