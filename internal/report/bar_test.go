package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_Length(t *testing.T) {
	for _, width := range []int{1, 5, 20, 33} {
		for percent := 0.0; percent <= 100; percent += 12.5 {
			got := Bar(percent, width)
			assert.Equal(t, width+2, utf8.RuneCountInString(got),
				"width=%d percent=%v got=%q", width, percent, got)
		}
	}
}

func TestBar_FilledCount(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
	}{
		{"zero", 0, 20, 0},
		{"quarter", 25, 20, 5},
		{"rounds up", 47.5, 20, 10},
		{"rounds down", 47.4, 20, 9},
		{"full", 100, 20, 20},
		{"tiny width", 50, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.percent, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(got, string(barFilled)))
		})
	}
}

func TestBar_TransitionCell(t *testing.T) {
	t.Run("zero percent starts with transition", func(t *testing.T) {
		got := []rune(Bar(0, 10))
		require.Len(t, got, 12)
		assert.Equal(t, barTransition, got[1])
		assert.NotContains(t, string(got), string(barFilled))
	})

	t.Run("full bar has no transition", func(t *testing.T) {
		got := Bar(100, 10)
		assert.NotContains(t, got, string(barTransition))
		assert.Equal(t, 10, strings.Count(got, string(barFilled)))
	})

	t.Run("partial bar has exactly one transition", func(t *testing.T) {
		got := Bar(50, 10)
		assert.Equal(t, 1, strings.Count(got, string(barTransition)))
	})
}

func TestBar_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Bar(0, 20), Bar(-5, 20))
	assert.Equal(t, Bar(100, 20), Bar(150, 20))
}

func TestBar_Brackets(t *testing.T) {
	got := Bar(50, 20)
	assert.True(t, strings.HasPrefix(got, "["))
	assert.True(t, strings.HasSuffix(got, "]"))
}
