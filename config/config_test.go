package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration_DaySuffix(t *testing.T) {
	d, err := parseDuration("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	d, err = parseDuration("7d")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)
}

func TestParseDuration_StandardUnits(t *testing.T) {
	d, err := parseDuration("90m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = parseDuration("bogus")
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "cards", cfg.ESCardsIndex)
}
