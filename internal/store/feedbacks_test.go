package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
	}{
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 1, 20, 25, 2},
		{"single page", 1, 20, 5, 1},
		{"empty table", 1, 20, 0, 0},
		{"page beyond the end keeps the true total", 9, 10, 25, 3},
		{"limit of one", 3, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
		})
	}
}
