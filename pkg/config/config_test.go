package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyUsesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.TabWidth)
	assert.Equal(t, DefaultMaxExchangeCandidates, cfg.MaxExchangeCandidates)
	assert.Equal(t, DefaultSelectionHistorySize, cfg.SelectionHistorySize)
	assert.Equal(t, DefaultJumpAlphabet, cfg.JumpAlphabet)
}

func TestLoadOverridesTabWidth(t *testing.T) {
	cfg, err := Load([]byte("tab_width: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabWidth)
	assert.Equal(t, DefaultMaxExchangeCandidates, cfg.MaxExchangeCandidates)
}

func TestLoadOverridesContiguousModes(t *testing.T) {
	cfg, err := Load([]byte("contiguous_modes:\n  - character\n  - word\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"character", "word"}, cfg.ContiguousModes)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("tab_width: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadZeroValuesFallBackToDefaults(t *testing.T) {
	cfg, err := Load([]byte("tab_width: 0\nmax_exchange_candidates: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.TabWidth)
	assert.Equal(t, DefaultMaxExchangeCandidates, cfg.MaxExchangeCandidates)
}
