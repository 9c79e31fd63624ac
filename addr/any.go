package addr

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/util"
)

// Any implements a generic server address. It is the fallback
// representation for transports without a registered builder.
type Any struct {
	transport string
	props     Properties
}

// NewAny creates a generic server address with a copy of the given
// properties.
func NewAny(transport string, props Properties) *Any {
	return &Any{transport: transport, props: props.Clone()}
}

// Transport returns the transport name of the entry.
func (a *Any) Transport() string {
	if a == nil {
		return ""
	}
	return a.transport
}

// Property returns the value of the named property per the lookup policy.
func (a *Any) Property(name string, pol LookupPolicy, sub ...Substitute) (string, error) {
	var props Properties
	if a != nil {
		props = a.props
	}
	v, ok := props.Get(name)

	var s func(string) (string, bool)
	if len(sub) > 0 && sub[0] != nil {
		s = sub[0]
	}
	return errtrace.Wrap2(resolveLookup(name, v, ok, pol, s))
}

// Properties returns a copy of the entry's property set.
func (a *Any) Properties() Properties {
	if a == nil {
		return nil
	}
	return a.props.Clone()
}

// String renders the entry for diagnostics: the transport name followed by
// the properties with sorted keys. Values are emitted verbatim, without
// percent-escaping, so the result is not necessarily re-parsable.
func (a *Any) String() string {
	if a == nil {
		return "<nil>"
	}
	return renderAddr(a.transport, a.props)
}

// Equal compares with another generic address by transport name and exact
// property equality.
func (a *Any) Equal(val any) bool {
	var other *Any
	switch v := val.(type) {
	case Any:
		other = &v
	case *Any:
		other = v
	default:
		return false
	}

	if a == other {
		return true
	} else if a == nil || other == nil {
		return false
	}
	return a.transport == other.transport && a.props.Equal(other.props)
}

func renderAddr(transport string, props Properties) string {
	kvs := make([][]string, 0, len(props))
	for k, v := range props {
		kvs = append(kvs, []string{k, v})
	}
	slices.SortFunc(kvs, util.CmpKVs)

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(transport)
	sb.WriteByte(':')
	for i, kv := range kvs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(kv[0])
		sb.WriteByte('=')
		sb.WriteString(kv[1])
	}
	return sb.String()
}
