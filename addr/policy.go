package addr

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/errorutil"
)

// LookupPolicy controls the behavior of a lookup when the designated entry
// is absent. It is threaded as an explicit parameter at every lookup call
// site, never global state.
type LookupPolicy int

const (
	// LookupFail reports [ErrInexistentEntry] for an absent entry unless a
	// substitute callback supplies a replacement value.
	LookupFail LookupPolicy = iota
	// LookupAbsent silently returns a zero value for an absent entry.
	LookupAbsent
)

// ReplacePolicy controls the behavior of an insertion when the target name
// is already occupied.
type ReplacePolicy int

const (
	// ReplaceConfirm delegates the conflict to a confirm callback; without
	// one it reports [ErrEntryReplacement] and keeps the old entry.
	ReplaceConfirm ReplacePolicy = iota
	// ReplaceWarn emits a diagnostic and replaces the old entry.
	ReplaceWarn
	// ReplaceKeep silently keeps the old entry.
	ReplaceKeep
	// ReplaceAlways silently overwrites the old entry.
	ReplaceAlways
)

// ConfirmFunc decides a registration conflict under [ReplaceConfirm]:
// returning true confirms the replacement, false aborts it and keeps the
// old entry.
type ConfirmFunc func(name string, old, repl Builder) bool

// resolveLookup resolves a possibly absent entry per the lookup policy.
// Present entries resolve to their value regardless of policy. The sub
// callback is the recovery resumption for LookupFail: if it supplies a
// value, that value becomes the result instead of the error.
func resolveLookup[V any](designator string, val V, ok bool, pol LookupPolicy, sub func(string) (V, bool)) (V, error) {
	if ok {
		return val, nil
	}

	var zero V
	if pol == LookupAbsent {
		return zero, nil
	}
	if sub != nil {
		if v, ok := sub(designator); ok {
			return v, nil
		}
	}
	return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrInexistentEntry, "%q", designator))
}

// resolveInsert decides whether an occupied entry is replaced.
// It has no side effects beyond the ReplaceWarn diagnostic.
func resolveInsert(name string, old, repl Builder, pol ReplacePolicy, logger *slog.Logger, confirm ConfirmFunc) (bool, error) {
	switch pol {
	case ReplaceWarn:
		logger.Warn("transport already registered, replacing",
			slog.String("transport", name),
		)
		return true, nil
	case ReplaceKeep:
		return false, nil
	case ReplaceAlways:
		return true, nil
	default: // ReplaceConfirm
		if confirm != nil {
			return confirm(name, old, repl), nil
		}
		return false, errtrace.Wrap(errorutil.NewWrapperError(ErrEntryReplacement, "%q", name))
	}
}
