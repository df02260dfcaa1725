package repository

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestListOptionsWindow(t *testing.T) {
	tests := []struct {
		name      string
		opts      ListOptions
		wantSkip  int64
		wantLimit int64
	}{
		{"defaults", ListOptions{}, 0, 100},
		{"explicit", Page(20, 5), 20, 5},
		{"negative skip", ListOptions{Skip: lo.ToPtr(int64(-3))}, 0, 100},
		{"zero limit", ListOptions{Limit: lo.ToPtr(int64(0))}, 0, 100},
		{"only limit", ListOptions{Limit: lo.ToPtr(int64(7))}, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := tt.opts.Window()
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, 0, 2))
	assert.Equal(t, []int{4, 5}, Slice(items, 3, 10))
	assert.Equal(t, []int{}, Slice(items, 5, 10))
	assert.Equal(t, []int{}, Slice(items, 9, 1))
	assert.Equal(t, items, Slice(items, 0, 100))
}
