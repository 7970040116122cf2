package editor

import "errors"

// ErrNoProgress is returned internally when Faultless Exchange exhausts
// every candidate without finding a legal swap; HandleKey absorbs it and
// commits an empty transaction rather than surfacing it to the caller.
var ErrNoProgress = errors.New("editor: no progress")

// ErrReadOnly marks why a mutating command became a no-op when
// Config.ReadOnly is set, grounded on the keystorm-adjacent engine's own
// ErrReadOnly for a frontend that wants a read-only viewer mode — not
// part of spec.md's error taxonomy, but the natural degrade-to-no-op
// extension a Config.ReadOnly flag needs. Every mutating command checks
// Config.ReadOnly directly rather than returning this value (HandleKey
// has no error return per spec.md §6), but it names the reason in one
// place for callers inspecting Config themselves.
var ErrReadOnly = errors.New("editor: buffer is read-only")
