package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafe_PassesThroughResult(t *testing.T) {
	out := Safe("test_tool", func() (string, error) {
		return "fine", nil
	})
	assert.Equal(t, "fine", out)
}

func TestSafe_ConvertsErrorToText(t *testing.T) {
	out := Safe("test_tool", func() (string, error) {
		return "", errors.New("boom")
	})
	assert.Equal(t, "Error in test_tool: boom", out)
}

func TestSafe_ContainsPanic(t *testing.T) {
	out := Safe("test_tool", func() (string, error) {
		panic("index out of range")
	})
	assert.Contains(t, out, "Error in test_tool:")
	assert.Contains(t, out, "index out of range")
}
