package addr

// Property names recognized by the tcp transport.
const (
	PropHost   = "host"
	PropPort   = "port"
	PropFamily = "family"
)

// TCP represents a server address reachable over a TCP socket.
// Property values are exposed as raw text: the port is not validated or
// converted, that is the connecting transport's concern.
type TCP struct {
	Any
}

// BuildTCP constructs the tcp representation. It is a [Builder] suitable
// for registration:
//
//	addr.Register("tcp", addr.BuildTCP, addr.ReplaceKeep)
func BuildTCP(transport string, props Properties) Addr {
	return &TCP{Any{transport: transport, props: props}}
}

// Host returns the host name or address to connect to.
func (t *TCP) Host() string { return t.prop(PropHost) }

// Port returns the port value as it appeared in the address text.
func (t *TCP) Port() string { return t.prop(PropPort) }

// Family returns the requested address family ("ipv4" or "ipv6"), if any.
func (t *TCP) Family() string { return t.prop(PropFamily) }

func (t *TCP) prop(name string) string {
	if t == nil {
		return ""
	}
	v, _ := t.props.Get(name)
	return v
}

// Equal compares with another tcp address by transport name and exact
// property equality.
func (t *TCP) Equal(val any) bool {
	var other *TCP
	switch v := val.(type) {
	case TCP:
		other = &v
	case *TCP:
		other = v
	default:
		return false
	}

	if t == other {
		return true
	} else if t == nil || other == nil {
		return false
	}
	return t.transport == other.transport && t.props.Equal(other.props)
}
