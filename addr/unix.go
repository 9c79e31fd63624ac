package addr

// Property names recognized by the unix transport.
const (
	PropPath     = "path"
	PropAbstract = "abstract"
	PropDir      = "dir"
	PropTmpDir   = "tmpdir"
)

// Unix represents a server address in the unix socket family: a filesystem
// socket path, an abstract socket name, or a directory the server creates
// its socket in. Exactly which property is set is the server's choice; the
// accessors return an empty string for an unset one.
type Unix struct {
	Any
}

// BuildUnix constructs the unix representation. It is a [Builder] suitable
// for registration:
//
//	addr.Register("unix", addr.BuildUnix, addr.ReplaceKeep)
func BuildUnix(transport string, props Properties) Addr {
	return &Unix{Any{transport: transport, props: props}}
}

// Path returns the filesystem path of the socket.
func (u *Unix) Path() string { return u.prop(PropPath) }

// Abstract returns the name of the abstract namespace socket.
func (u *Unix) Abstract() string { return u.prop(PropAbstract) }

// Dir returns the directory in which a socket file is created.
func (u *Unix) Dir() string { return u.prop(PropDir) }

// TmpDir returns the directory in which an abstract or file socket is
// created with a random name.
func (u *Unix) TmpDir() string { return u.prop(PropTmpDir) }

func (u *Unix) prop(name string) string {
	if u == nil {
		return ""
	}
	v, _ := u.props.Get(name)
	return v
}

// Equal compares with another unix address by transport name and exact
// property equality.
func (u *Unix) Equal(val any) bool {
	var other *Unix
	switch v := val.(type) {
	case Unix:
		other = &v
	case *Unix:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.transport == other.transport && u.props.Equal(other.props)
}
