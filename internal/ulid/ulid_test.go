package ulid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{GenerateID(), true},
		{"", false},
		{"0", false},
		{"notaulidnotaulidnotaulidno", false},
		{"01B4E6BXY0PRJ5G420D25MWQY!", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidID(tt.id))
		})
	}
}

func TestMockGenerator(t *testing.T) {
	fixed := GenerateID()
	MockGenerator(fixed)
	defer ResetGenerator()

	require.Equal(t, fixed, GenerateID())
	require.Equal(t, fixed, GenerateID())

	ResetGenerator()
	assert.NotEqual(t, fixed, GenerateID())
}
