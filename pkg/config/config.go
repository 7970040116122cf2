// Package config decodes the editor's tuning knobs from YAML: tab width,
// the contiguous-selection-mode override list, the jump label alphabet,
// the exchange-candidate search cap, and the selection-history ring size.
// Grounded on the pack's yaml.v3 config-struct convention (field tags,
// Unmarshal-into-zero-value, defaults filled in after decode) but
// deliberately never opens a file itself: the engine's own Non-goal list
// excludes file I/O, so Load takes bytes the caller already read.
package config

import (
	"gopkg.in/yaml.v3"
)

// DefaultTabWidth is used when a loaded config omits TabWidth or sets it
// to zero.
const DefaultTabWidth = 4

// DefaultMaxExchangeCandidates bounds how many neighbor candidates the
// Faultless Exchange search tries before giving up with NoProgress.
const DefaultMaxExchangeCandidates = 32

// DefaultSelectionHistorySize bounds the selection-history ring buffer.
const DefaultSelectionHistorySize = 100

// DefaultJumpAlphabet mirrors pkg/jump.Alphabet as a string. pkg/jump
// labels candidates with its own Alphabet and does not read this value.
const DefaultJumpAlphabet = "abcdefghiklmnopqrstuvwxyzABCDEFGHIKLMNOPQRSTUVWXYZ0123456789,."

// Config holds every tuning knob a frontend may set via YAML; every
// field has a sensible zero-value-safe default applied by Load.
// pkg/editor reads MaxExchangeCandidates, SelectionHistorySize and
// ReadOnly. TabWidth, ContiguousModes and JumpAlphabet are decoded and
// defaulted only: Tab inserts a literal tab, deletes use
// selection.ContiguousModes, and jump labels come from jump.Alphabet.
type Config struct {
	TabWidth              int      `yaml:"tab_width"`
	ContiguousModes       []string `yaml:"contiguous_modes,omitempty"`
	JumpAlphabet          string   `yaml:"jump_alphabet,omitempty"`
	MaxExchangeCandidates int      `yaml:"max_exchange_candidates"`
	SelectionHistorySize  int      `yaml:"selection_history_size"`
	ReadOnly              bool     `yaml:"read_only,omitempty"`
}

// Default returns a Config with every field set to its documented
// default, for callers with no YAML to load.
func Default() Config {
	return Config{
		TabWidth:              DefaultTabWidth,
		JumpAlphabet:          DefaultJumpAlphabet,
		MaxExchangeCandidates: DefaultMaxExchangeCandidates,
		SelectionHistorySize:  DefaultSelectionHistorySize,
	}
}

// Load decodes YAML bytes into a Config, filling any zero-valued field
// with its default afterward. The caller is responsible for reading the
// bytes from wherever they live (file, embed, network) — this package
// performs no I/O of its own.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}
	if cfg.JumpAlphabet == "" {
		cfg.JumpAlphabet = DefaultJumpAlphabet
	}
	if cfg.MaxExchangeCandidates <= 0 {
		cfg.MaxExchangeCandidates = DefaultMaxExchangeCandidates
	}
	if cfg.SelectionHistorySize <= 0 {
		cfg.SelectionHistorySize = DefaultSelectionHistorySize
	}
	return cfg, nil
}
