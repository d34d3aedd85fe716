package errors

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndNewf(t *testing.T) {
	assert.EqualError(t, New("boom"), "boom")
	assert.EqualError(t, Newf("boom %d/%d", 3, 5), "boom 3/5")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %s", "x"))
}

func TestWrapPrependsContext(t *testing.T) {
	err := Wrap(ErrCacheMiss, "get digest")
	assert.EqualError(t, err, "get digest: cache miss")

	err = Wrapf(ErrUnknownPlaylist, "playlist %q", "PL1")
	assert.EqualError(t, err, `playlist "PL1": playlist not found`)
}

func TestErrorsIsThroughWrapChain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "single wrap",
			err:      Wrap(ErrCacheMiss, "get digest"),
			target:   ErrCacheMiss,
			expected: true,
		},
		{
			name:     "nested wrap and wrapf",
			err:      Wrap(Wrapf(ErrUnknownPlaylist, "playlist %s", "PL1"), "load corpus"),
			target:   ErrUnknownPlaylist,
			expected: true,
		},
		{
			name:     "same message counts as same error",
			err:      New("cache miss"),
			target:   ErrCacheMiss,
			expected: true,
		},
		{
			name:     "different sentinel does not match",
			err:      Wrap(ErrCacheMiss, "get digest"),
			target:   ErrUnknownPlaylist,
			expected: false,
		},
		{
			name:     "wrapped stdlib error still found",
			err:      Wrap(io.ErrUnexpectedEOF, "read transcript"),
			target:   io.ErrUnexpectedEOF,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stderrors.Is(tt.err, tt.target))
		})
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := New("inner")
	err := Wrap(cause, "outer")

	var typed *Error
	require.True(t, stderrors.As(err, &typed))
	assert.Same(t, cause, stderrors.Unwrap(err))
	assert.Nil(t, stderrors.Unwrap(cause))
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"required field", RequiredField("apiKey"), "apiKey is required"},
		{"invalid field", InvalidField("topK", "must be positive"), "topK is invalid: must be positive"},
		{"not found", NotFound("playlist", "PL1"), "playlist not found: PL1"},
		{"out of range", OutOfRange("temperature", 0, 2), "temperature out of range (must be between 0 and 2)"},
		{"timeout", Timeout("embedding batch", "30s"), "embedding batch timeout after 30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}
