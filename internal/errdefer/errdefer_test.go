package errdefer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var err error
		Close(&err, stubCloser{})
		assert.NoError(t, err)
	})

	t.Run("non-nil", func(t *testing.T) {
		t.Parallel()

		give := errors.New("sadness")

		var err error
		Close(&err, stubCloser{err: give})
		assert.ErrorIs(t, err, give)
	})

	t.Run("multiple closers", func(t *testing.T) {
		t.Parallel()

		err1 := errors.New("first sadness")
		err2 := errors.New("second sadness")

		var err error
		Close(&err, stubCloser{err: err1}, stubCloser{}, stubCloser{err: err2})
		assert.ErrorIs(t, err, err1)
		assert.ErrorIs(t, err, err2)
	})

	t.Run("keeps prior error", func(t *testing.T) {
		t.Parallel()

		prior := errors.New("great sadness")

		err := prior
		Close(&err, stubCloser{})
		assert.ErrorIs(t, err, prior)
	})
}

type stubCloser struct {
	err error
}

func (s stubCloser) Close() error {
	return s.err
}
