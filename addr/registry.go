package addr

import (
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/errorutil"
	"github.com/wirebus/wirebus/internal/log"
	"github.com/wirebus/wirebus/internal/syncutil"
)

// Builder constructs a transport-specific address representation from a
// transport name and its decoded properties. The builder owns the passed
// map and may retain it without copying.
//
// Builders are the registry's descriptors: registering one for a transport
// name makes [Parse] produce its representation for matching entries.
type Builder func(transport string, props Properties) Addr

// BuilderSubstitute supplies a replacement builder for a failed registry
// lookup under [LookupFail].
type BuilderSubstitute func(designator string) (Builder, bool)

// Registry maps transport names to representation builders.
// Names are case-sensitive. There is no removal operation: entries persist
// for the registry's lifetime. Safe for concurrent use: a lookup running
// concurrently with a registration observes the pre- or post-registration
// state, never a partial one.
type Registry struct {
	builders syncutil.RWMap[string, Builder]
	logger   *slog.Logger
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(reg *Registry) {
		if logger != nil {
			reg.logger = logger
		}
	}
}

// NewRegistry creates an empty transport registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{logger: log.Def}
	for _, o := range opts {
		o(reg)
	}
	return reg
}

// Register maps name to the builder b. A vacant name is inserted
// unconditionally; an occupied one resolves per the replace policy, with an
// optional confirm callback deciding [ReplaceConfirm] conflicts. The confirm
// callback runs under the registry's write lock, keeping the whole
// read-decide-write step atomic.
//
// The returned bool reports whether the registry now maps name to b.
func (reg *Registry) Register(name string, b Builder, pol ReplacePolicy, confirm ...ConfirmFunc) (bool, error) {
	if name == "" || b == nil {
		return false, errtrace.Wrap(errorutil.NewInvalidArgumentError("transport name and builder are required"))
	}

	var cf ConfirmFunc
	if len(confirm) > 0 {
		cf = confirm[0]
	}

	var (
		applied bool
		err     error
	)
	reg.builders.Update(name, func(old Builder, ok bool) (Builder, bool) {
		if !ok {
			applied = true
			return b, true
		}
		applied, err = resolveInsert(name, old, b, pol, reg.logger, cf)
		return b, applied
	})
	return applied, errtrace.Wrap(err)
}

// Lookup returns the builder registered for name. An absent name resolves
// per the lookup policy, with an optional substitute consulted under
// [LookupFail].
func (reg *Registry) Lookup(name string, pol LookupPolicy, sub ...BuilderSubstitute) (Builder, error) {
	b, ok := reg.builders.Get(name)

	var s func(string) (Builder, bool)
	if len(sub) > 0 && sub[0] != nil {
		s = sub[0]
	}
	return errtrace.Wrap2(resolveLookup(name, b, ok, pol, s))
}

// Transports returns a sorted snapshot of the registered transport names.
func (reg *Registry) Transports() []string {
	names := make([]string, 0, reg.builders.Len())
	for name := range reg.builders.All() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var defRegistry = NewRegistry()

// Register registers a builder in the package default registry.
// See [Registry.Register].
func Register(name string, b Builder, pol ReplacePolicy, confirm ...ConfirmFunc) (bool, error) {
	return errtrace.Wrap2(defRegistry.Register(name, b, pol, confirm...))
}

// Lookup looks a builder up in the package default registry.
// See [Registry.Lookup].
func Lookup(name string, pol LookupPolicy, sub ...BuilderSubstitute) (Builder, error) {
	return errtrace.Wrap2(defRegistry.Lookup(name, pol, sub...))
}
