package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "STORAGE_FAILURE"}
	wrapped := Wrap(fmt.Errorf("repo: %w", base), "append usage log")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "STORAGE_FAILURE", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	wrapped := WithStack(errB)

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA))
	assert.False(t, IsAny(nil, errA))
}

func TestCauseUnwrapsStack(t *testing.T) {
	root := New("root")
	assert.Equal(t, root, Cause(Wrapf(root, "ctx %d", 1)))
}
