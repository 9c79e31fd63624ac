package addr

import (
	"github.com/wirebus/wirebus/internal/errorutil"
	"github.com/wirebus/wirebus/internal/grammar"
)

// Error represents an address error.
// See [errorutil.Error].
type Error = errorutil.Error

// Recoverable errors: a caller may resolve them by supplying a [Substitute]
// or a [ConfirmFunc] at the call site; unhandled, they propagate as-is.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInexistentEntry is reported by lookups under [LookupFail] when the
	// designated entry is absent.
	ErrInexistentEntry Error = "inexistent entry"
	// ErrEntryReplacement is reported by registration under [ReplaceConfirm]
	// when the target name is occupied and no confirm callback is supplied.
	// The old entry is retained.
	ErrEntryReplacement Error = "entry replacement attempt"
)

// Fatal parse errors. They abort the whole parse, no partial address list
// is returned.
const (
	ErrMalformedEscape  = grammar.ErrMalformedEscape
	ErrMalformedAddress = grammar.ErrMalformedAddress
)
