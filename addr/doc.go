// Package addr parses and models bus server address strings.
//
// A server address string describes how a client should locate and connect
// to a bus instance. It is a semicolon-separated list of entries, each
// naming a transport and a set of key/value properties:
//
//	unix:path=/tmp/bus-socket;tcp:host=localhost,port=4222
//
// Values may carry arbitrary bytes as percent-escapes ("%XY" with two hex
// digits); the fully unescaped string must be valid UTF-8. The entry order
// is meaningful: the first entry is the first connection attempt.
//
// # Parsing
//
//	addrs, err := addr.Parse("unix:path=/tmp/bus-socket;tcp:host=localhost,port=4222")
//
// Each parsed entry satisfies the [Addr] interface. Transports without a
// registered representation come back as the generic [Any]; transports
// registered in the consulted [Registry] come back as the representation
// their [Builder] constructs, e.g. [Unix] or [TCP]:
//
//	addr.Register("unix", addr.BuildUnix, addr.ReplaceKeep)
//	addrs, _ = addr.Parse("unix:path=/tmp/bus-socket")
//	u := addrs[0].(*addr.Unix)
//
// The representation of an entry is fixed at parse time from the registry
// state at that moment, and entries are immutable once constructed.
//
// # Policies
//
// Property and registry lookups take a [LookupPolicy]: [LookupAbsent]
// returns a zero value for a missing entry, [LookupFail] reports
// [ErrInexistentEntry] unless a [Substitute] supplies a replacement value.
// Registration takes a [ReplacePolicy] deciding conflicts on an occupied
// name; see [Registry.Register].
//
// # Environment seed
//
// The address list for the current session conventionally comes from a
// single environment variable:
//
//	addrs, err := addr.ParseEnv(addr.EnvAddress)
//
// An unset variable yields no addresses and no error.
//
// This package only decodes address text. Opening connections, wire
// encoding and authentication are the concern of transport implementations,
// which plug in through the registry seam.
package addr
