package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	*testing.T

	Buffer   bytes.Buffer
	cleanups []func()
}

func (t *fakeT) Logf(msg string, args ...interface{}) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
	// println to make sure it ends with a newline
}

func (t *fakeT) Cleanup(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}

// finish runs the registered cleanups, last first,
// the way the test runner would at the end of the test.
func (t *fakeT) finish() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	w := Writer(&fakeT)
	io.WriteString(w, "foo\nbar")
	assert.Equal(t, "foo\n", fakeT.Buffer.String())

	fakeT.finish() // delivers the partial line
	assert.Equal(t, "foo\nbar\n", fakeT.Buffer.String())
}

func TestLogger(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	logger := Logger(&fakeT)
	logger.Printf("got %d", 42)
	assert.Equal(t, "got 42\n", fakeT.Buffer.String())
}
