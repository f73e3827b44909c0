package envelope

import "errors"

// ErrInputParse marks a malformed envelope: invalid JSON, or JSON that
// fails the entry point's structural schema. Never returned across the
// FFI boundary as a Go error — the three entry points catch it and
// render {"error": "input: <detail>"} instead, per spec.md §6/§7.
var ErrInputParse = errors.New("input")

// ErrOutputSerialize marks an output marshaling failure. Unreachable
// with well-typed inputs; kept so the envelope's error taxonomy is
// complete and testable, per spec.md §7.
var ErrOutputSerialize = errors.New("serde")
