package addr

//go:generate go tool errtrace -w .

import (
	"os"

	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/grammar"
	"github.com/wirebus/wirebus/internal/types"
)

// Properties maps a property name to its value.
// Names are case-sensitive and compared by exact equality.
type Properties = types.Properties

// Substitute supplies a replacement value for an absent property during a
// lookup under [LookupFail]. Returning false declines, and the lookup fails
// with [ErrInexistentEntry].
type Substitute func(designator string) (string, bool)

// Addr represents one entry of a parsed server address string.
// Implementations are immutable once constructed.
type Addr interface {
	// Transport returns the transport name of the entry.
	Transport() string
	// Property returns the value of the named property.
	// An absent name resolves per the lookup policy, with an optional
	// substitute consulted under [LookupFail].
	Property(name string, pol LookupPolicy, sub ...Substitute) (string, error)
	// Properties returns a copy of the entry's property set.
	Properties() Properties
}

// EnvAddress is the conventional environment variable holding the escaped
// address-list string for the current session.
const EnvAddress = "WIREBUS_ADDRESS"

// Parse parses an address-list string from a given input s (string or []byte)
// into server address values, preserving entry order.
//
// The whole string is percent-unescaped first, then tokenized; each entry is
// assembled by consulting the transport registry (the package default one
// unless [WithRegistry] is given). On any malformed input no partial result
// is returned.
func Parse[T ~string | ~[]byte](s T, opts ...ParseOption) ([]Addr, error) {
	var o parseOpts
	o.registry = defRegistry
	for _, opt := range opts {
		opt(&o)
	}

	us, err := grammar.Unescape(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	raws, err := grammar.ScanAddresses(us)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(raws) == 0 {
		return nil, nil
	}

	addrs := make([]Addr, 0, len(raws))
	for _, raw := range raws {
		props := types.FromPairs(raw.Pairs)
		b, _ := o.registry.Lookup(raw.Transport, LookupAbsent)
		if b == nil {
			addrs = append(addrs, &Any{transport: raw.Transport, props: props})
			continue
		}
		addrs = append(addrs, b(raw.Transport, props))
	}
	return addrs, nil
}

// ParseEnv reads the named environment variable and parses its value.
// An unset variable yields (nil, nil): having no candidate addresses is not
// an error. A set but empty variable likewise yields no addresses.
func ParseEnv(name string, opts ...ParseOption) ([]Addr, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil, nil
	}
	return errtrace.Wrap2(Parse(v, opts...))
}

type parseOpts struct {
	registry *Registry
}

// ParseOption configures parsing.
type ParseOption func(*parseOpts)

// WithRegistry sets the transport registry consulted during assembly.
func WithRegistry(reg *Registry) ParseOption {
	return func(o *parseOpts) {
		if reg != nil {
			o.registry = reg
		}
	}
}
