package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freshmart-client/app/domain"
)

func TestGreetingName(t *testing.T) {
	tests := []struct {
		name     string
		customer domain.CustomerSummary
		want     string
	}{
		{
			name:     "prefers the first name",
			customer: domain.CustomerSummary{Username: "alice42", FirstName: "Alice"},
			want:     "Alice",
		},
		{
			name:     "falls back to the username",
			customer: domain.CustomerSummary{Username: "alice42"},
			want:     "alice42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, greetingName(tt.customer))
		})
	}
}
