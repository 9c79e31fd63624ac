package addr_test

import (
	"testing"

	"github.com/wirebus/wirebus/addr"
)

func TestUnix(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	if _, err := reg.Register("unix", addr.BuildUnix, addr.ReplaceKeep); err != nil {
		t.Fatalf("reg.Register error = %v, want nil", err)
	}

	cases := []struct {
		name         string
		str          string
		wantPath     string
		wantAbstract string
		wantDir      string
		wantTmpDir   string
	}{
		{"path", "unix:path=/run/bus/socket", "/run/bus/socket", "", "", ""},
		{"abstract", "unix:abstract=/tmp/bus-mF9aU", "", "/tmp/bus-mF9aU", "", ""},
		{"dir", "unix:dir=/run/bus", "", "", "/run/bus", ""},
		{"tmpdir", "unix:tmpdir=/tmp", "", "", "", "/tmp"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			addrs, err := addr.Parse(c.str, addr.WithRegistry(reg))
			if err != nil {
				t.Fatalf("addr.Parse(%q) error = %v, want nil", c.str, err)
			}
			u, ok := addrs[0].(*addr.Unix)
			if !ok {
				t.Fatalf("addrs[0] = %T, want *addr.Unix", addrs[0])
			}

			if got := u.Path(); got != c.wantPath {
				t.Errorf("u.Path() = %q, want %q", got, c.wantPath)
			}
			if got := u.Abstract(); got != c.wantAbstract {
				t.Errorf("u.Abstract() = %q, want %q", got, c.wantAbstract)
			}
			if got := u.Dir(); got != c.wantDir {
				t.Errorf("u.Dir() = %q, want %q", got, c.wantDir)
			}
			if got := u.TmpDir(); got != c.wantTmpDir {
				t.Errorf("u.TmpDir() = %q, want %q", got, c.wantTmpDir)
			}
			if got, want := u.Transport(), "unix"; got != want {
				t.Errorf("u.Transport() = %q, want %q", got, want)
			}
		})
	}
}

func TestUnix_Equal(t *testing.T) {
	t.Parallel()

	u1 := addr.BuildUnix("unix", addr.Properties{"path": "/tmp/foo"})
	u2 := addr.BuildUnix("unix", addr.Properties{"path": "/tmp/foo"})
	u3 := addr.BuildUnix("unix", addr.Properties{"path": "/tmp/bar"})

	if !u1.(*addr.Unix).Equal(u2) {
		t.Errorf("u1.Equal(u2) = false, want true")
	}
	if u1.(*addr.Unix).Equal(u3) {
		t.Errorf("u1.Equal(u3) = true, want false")
	}
	// same transport and properties, different representation
	if u1.(*addr.Unix).Equal(addr.NewAny("unix", addr.Properties{"path": "/tmp/foo"})) {
		t.Errorf("u1.Equal(any) = true, want false")
	}
}
