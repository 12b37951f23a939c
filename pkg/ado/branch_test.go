package ado

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "main", expected: "refs/heads/main"},
		{input: "feature/login", expected: "refs/heads/feature/login"},
		{input: "refs/heads/main", expected: "refs/heads/main"},
		{input: "refs/tags/v1", expected: "refs/heads/refs/tags/v1"},
		{input: "", expected: "refs/heads/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			once := CanonicalizeBranchName(tt.input)
			assert.Equal(t, tt.expected, once)
			assert.Equal(t, once, CanonicalizeBranchName(once))
		})
	}
}
