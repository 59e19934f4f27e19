// Package linebuf splits a byte stream into lines.
package linebuf

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that splits its input on newlines,
// delivering one complete line at a time to a callback.
// Bytes after the last newline are buffered until the next
// newline arrives or Flush is called.
type Writer struct {
	emit func(string) // receives lines without the trailing newline

	mu   sync.Mutex // guards buff
	buff bytes.Buffer
}

// New returns a Writer that calls emit for each complete line
// written to it, with the trailing newline stripped.
func New(emit func(string)) *Writer {
	return &Writer{emit: emit}
}

func (w *Writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			// No newline. Buffer it for later.
			w.buff.Write(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx], bs[idx+1:]

		if w.buff.Len() == 0 {
			// Nothing buffered from a prior partial write.
			// This is the majority case.
			w.emit(string(line))
			continue
		}

		// There's a prior partial write. Join and deliver.
		w.buff.Write(line)
		w.emit(w.buff.String())
		w.buff.Reset()
	}
	return total, nil
}

// Flush delivers buffered text as a final line,
// even though it didn't end with a newline.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.emit(w.buff.String())
		w.buff.Reset()
	}
}
