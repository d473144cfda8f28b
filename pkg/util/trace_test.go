package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallerStack(t *testing.T) {
	s := CallerStack(1, 3)
	assert.Equal(t, 2, len(s.Frames))
	assert.True(t, strings.HasSuffix(s.Frames[0].FuncName, "TestCallerStack"))
	assert.True(t, strings.Contains(s.String(), "TestCallerStack"))
	assert.True(t, strings.Contains(s.StringOneLine(), "TestCallerStack"))
}

func TestCallerFrame(t *testing.T) {
	fn := "TestCallerFrame"
	frame := CallerFrame(0)
	assert.True(t, strings.HasSuffix(frame.FuncName, fn))
	assert.True(t, strings.Contains(frame.String(), fn))
}

func TestStackBytes(t *testing.T) {
	str := string(StackBytes(0))
	assert.True(t, strings.Contains(str, "TestStackBytes"))
}
