package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		bound    int
		expected int
	}{
		{"python", "python", 2, 0},
		{"pyton", "python", 2, 1},
		{"javascipt", "javascript", 2, 1},
		{"go", "sql", 2, -1},
		{"rust", "rest", 2, 1},
		{"", "go", 2, 2},
		{"abcdef", "uvwxyz", 2, -1},
		{"kubernetes", "kube", 2, -1}, // length difference alone exceeds bound
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, boundedLevenshtein(tt.a, tt.b, tt.bound),
			"distance(%q, %q) bound %d", tt.a, tt.b, tt.bound)
	}
}

func TestBoundedLevenshtein_Symmetric(t *testing.T) {
	assert.Equal(t, boundedLevenshtein("pyton", "python", 3), boundedLevenshtein("python", "pyton", 3))
}
