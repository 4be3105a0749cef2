package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			in:   "Hello, World!",
			want: []string{"hello", "world"},
		},
		{
			name: "contractions stay whole",
			in:   "chef's recipe",
			want: []string{"chefs", "recipe"},
		},
		{
			name: "contraction stop words are removed",
			in:   "don't can't won't",
			want: []string{},
		},
		{
			name: "hyphens and underscores split compounds",
			in:   "hip-hop snake_case",
			want: []string{"hip", "hop", "snake", "case"},
		},
		{
			name: "stop words and short tokens dropped",
			in:   "a I x yz and the game",
			want: []string{"yz", "game"},
		},
		{
			name: "duplicates and order preserved",
			in:   "go go go gadget",
			want: []string{"go", "go", "go", "gadget"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeDegenerateInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t\n  "))
	assert.Empty(t, Tokenize("!!! ??? ..."))
	assert.Empty(t, Tokenize("the and of to"))
}
