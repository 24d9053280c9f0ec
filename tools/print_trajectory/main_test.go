package main

import (
	"testing"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComparisonOffset(t *testing.T) {
	tests := []struct {
		name   string
		years  []int
		want   int
		wantOK bool
	}{
		{name: "no accounts", years: nil, want: 0, wantOK: false},
		{name: "shortest horizon", years: []int{35, 33}, want: 33, wantOK: true},
		{name: "all past target", years: []int{-10, -4}, want: 0, wantOK: true},
		{name: "mixed", years: []int{12, -3}, want: 0, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.ProjectionResult{}
			for _, y := range tt.years {
				r.Accounts = append(r.Accounts, domain.AccountProjection{Years: y})
			}
			got, ok := comparisonOffset(r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
