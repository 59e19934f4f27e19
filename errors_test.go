package pygmentize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give error
		want string
	}{
		{
			desc: "spawn",
			give: &SpawnError{Err: errors.New("fork/exec /usr/bin/pygmentize: permission denied")},
			want: "starting pygmentize: fork/exec /usr/bin/pygmentize: permission denied",
		},
		{
			desc: "not found",
			give: &NotFoundError{Path: "pygmentize", Err: errors.New("executable file not found in $PATH")},
			want: "pygmentize was not found or not installed; " +
				"install Pygments or set a custom path with SetExecutable",
		},
		{
			desc: "not found with custom path",
			give: &NotFoundError{Path: "/opt/pygments/pygmentize", Err: errors.New("no such file")},
			want: "/opt/pygments/pygmentize was not found or not installed; " +
				"install Pygments or set a custom path with SetExecutable",
		},
		{
			desc: "io",
			give: &IOError{Err: errors.New("write |1: broken pipe")},
			want: "running pygmentize: write |1: broken pipe",
		},
		{
			desc: "exit with stderr",
			give: &ExitError{ExitCode: 2, Stderr: "Usage: pygmentize [options]"},
			want: "pygmentize exited with status 2: Usage: pygmentize [options]",
		},
		{
			desc: "exit without stderr",
			give: &ExitError{ExitCode: 1},
			want: "pygmentize exited with status 1",
		},
		{
			desc: "invalid utf-8",
			give: &InvalidUTF8Error{Output: []byte{0xff, 0xfe}},
			want: "pygmentize produced invalid UTF-8 (2 bytes)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("great sadness")

	tests := []struct {
		desc string
		give error
	}{
		{desc: "spawn", give: &SpawnError{Err: cause}},
		{desc: "not found", give: &NotFoundError{Path: "pygmentize", Err: cause}},
		{desc: "io", give: &IOError{Err: cause}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.give, cause)
		})
	}
}
