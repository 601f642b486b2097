package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "hello", width: 10, want: "hello"},
		{name: "exact", in: "hello", width: 5, want: "hello"},
		{name: "ascii", in: "hello world", width: 6, want: "hello…"},
		{name: "wide runes", in: "日本語テキスト", width: 7, want: "日本語…"},
		{name: "zero width", in: "abc", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "provider", Plural(1, "provider"))
	assert.Equal(t, "providers", Plural(0, "provider"))
	assert.Equal(t, "providers", Plural(3, "provider"))
}
