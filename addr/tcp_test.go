package addr_test

import (
	"testing"

	"github.com/wirebus/wirebus/addr"
)

func TestTCP(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	if _, err := reg.Register("tcp", addr.BuildTCP, addr.ReplaceKeep); err != nil {
		t.Fatalf("reg.Register error = %v, want nil", err)
	}

	addrs, err := addr.Parse("tcp:host=localhost,port=1234,family=ipv4", addr.WithRegistry(reg))
	if err != nil {
		t.Fatalf("addr.Parse error = %v, want nil", err)
	}
	tc, ok := addrs[0].(*addr.TCP)
	if !ok {
		t.Fatalf("addrs[0] = %T, want *addr.TCP", addrs[0])
	}

	if got, want := tc.Host(), "localhost"; got != want {
		t.Errorf("tc.Host() = %q, want %q", got, want)
	}
	if got, want := tc.Port(), "1234"; got != want {
		t.Errorf("tc.Port() = %q, want %q", got, want)
	}
	if got, want := tc.Family(), "ipv4"; got != want {
		t.Errorf("tc.Family() = %q, want %q", got, want)
	}

	// values come back as raw text, a non-numeric port is not this
	// package's concern
	addrs, err = addr.Parse("tcp:port=none", addr.WithRegistry(reg))
	if err != nil {
		t.Fatalf("addr.Parse error = %v, want nil", err)
	}
	if got, want := addrs[0].(*addr.TCP).Port(), "none"; got != want {
		t.Errorf("tc.Port() = %q, want %q", got, want)
	}
}
