package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrplatform/freelancer-api/internal/helpers"
)

func TestIsValidStage(t *testing.T) {
	tests := []struct {
		stage string
		want  bool
	}{
		{"prod", true},
		{"dev", true},
		{"local", true},
		{"test", true},
		{"staging", false},
		{"", false},
		{"PROD", false},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.IsValidStage(tt.stage))
		})
	}
}
