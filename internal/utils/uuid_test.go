package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Generate(t *testing.T) {
	g := NewIDGenerator("")

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestIDGenerator_Prefix(t *testing.T) {
	g := NewIDGenerator("UPL-")

	id := g.Generate()

	require.True(t, strings.HasPrefix(id, "UPL-"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "UPL-"))
	assert.NoError(t, err)
}
