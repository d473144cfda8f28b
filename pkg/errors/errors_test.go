package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithStack(t *testing.T) {
	assert.Nil(t, WithStack(nil))

	cause := stderrors.New("boom")
	err := WithStack(cause)
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, strings.Contains(err.Error(), "boom"))
	assert.True(t, strings.Contains(err.Error(), "TestWithStack"))
}

func TestErrorf(t *testing.T) {
	cause := stderrors.New("boom")
	err := Errorf("wrapped : %w", cause)
	assert.True(t, stderrors.Is(err, cause))
}
