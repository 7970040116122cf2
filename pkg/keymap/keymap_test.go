package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupNormalLetters(t *testing.T) {
	cmd, ok := LookupNormal(Char('w'))
	assert.True(t, ok)
	assert.Equal(t, CmdWord, cmd)

	cmd, ok = LookupNormal(Char('X'))
	assert.True(t, ok)
	assert.Equal(t, CmdExchangeBackward, cmd)

	cmd, ok = LookupNormal(Char('0'))
	assert.True(t, ok)
	assert.Equal(t, CmdResetToCustom, cmd)
}

func TestLookupNormalEscAndBackspace(t *testing.T) {
	cmd, ok := LookupNormal(Special(KeyEsc, ModNone))
	assert.True(t, ok)
	assert.Equal(t, CmdClearExtension, cmd)

	cmd, ok = LookupNormal(Special(KeyBackspace, ModNone))
	assert.True(t, ok)
	assert.Equal(t, CmdChange, cmd)
}

func TestLookupNormalUnboundKey(t *testing.T) {
	_, ok := LookupNormal(Char('Q'))
	assert.False(t, ok)
}

func TestLookupUniversalCtrlBindings(t *testing.T) {
	cmd, ok := LookupUniversal(CharWithMods('z', ModCtrl))
	assert.True(t, ok)
	assert.Equal(t, CmdUndo, cmd)

	cmd, ok = LookupUniversal(CharWithMods('y', ModCtrl))
	assert.True(t, ok)
	assert.Equal(t, CmdRedo, cmd)

	cmd, ok = LookupUniversal(Special(KeyLeft, ModNone))
	assert.True(t, ok)
	assert.Equal(t, CmdMoveCaretLeft, cmd)
}

func TestLookupUniversalUnboundKey(t *testing.T) {
	_, ok := LookupUniversal(Char('q'))
	assert.False(t, ok)
}
