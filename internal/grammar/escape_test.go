package grammar_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wirebus/wirebus/internal/grammar"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    string
		wantErr error
	}{
		{"empty", "", "", nil},
		{"no escapes", "unix:path=/tmp/foo", "unix:path=/tmp/foo", nil},
		{"upper hex", "a%20b", "a b", nil},
		{"lower hex", "a%2fb", "a/b", nil},
		{"mixed hex", "%2Fvar%2frun", "/var/run", nil},
		{"escaped delimiters", "k%3Dv%3B%2C", "k=v;,", nil},
		{"multibyte", "abc%E4%B8%96", "abc世", nil},
		{"escape only", "%41", "A", nil},
		{"trailing percent", "abc%", "", grammar.ErrMalformedEscape},
		{"one hex digit", "abc%a", "", grammar.ErrMalformedEscape},
		{"non-hex digits", "abc%zz", "", grammar.ErrMalformedEscape},
		{"lone percent mid-string", "a%;b", "", grammar.ErrMalformedEscape},
		{"invalid utf8", "abc%FF", "", grammar.ErrMalformedEscape},
		{"truncated multibyte", "abc%E4%B8", "", grammar.ErrMalformedEscape},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.Unescape(c.str)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.Unescape(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, c.want)
			}
		})
	}
}

func TestUnescape_Idempotence(t *testing.T) {
	t.Parallel()

	// input without '%' must come back equal to itself
	in := "unix:path=/tmp/foo;tcp:host=localhost,port=1234"
	got, err := grammar.Unescape(in)
	if err != nil {
		t.Fatalf("grammar.Unescape(%q) error = %v, want nil", in, err)
	}
	if got != in {
		t.Errorf("grammar.Unescape(%q) = %q, want the input back", in, got)
	}
}

func TestUnescape_RoundTrip(t *testing.T) {
	t.Parallel()

	// escaping every byte of valid UTF-8 text and unescaping the result
	// must recover the original text
	texts := []string{
		"/tmp/foo bar",
		"host=localhost;port=1234",
		"世界",
		"%;:,=",
	}
	for _, text := range texts {
		var sb strings.Builder
		for i := 0; i < len(text); i++ {
			fmt.Fprintf(&sb, "%%%02X", text[i])
		}

		got, err := grammar.Unescape(sb.String())
		if err != nil {
			t.Fatalf("grammar.Unescape(%q) error = %v, want nil", sb.String(), err)
		}
		if got != text {
			t.Errorf("grammar.Unescape(%q) = %q, want %q", sb.String(), got, text)
		}
	}
}

func BenchmarkUnescape(b *testing.B) {
	in := "unix:path=%2Ftmp%2Ffoo%20bar;tcp:host=localhost,port=1234"
	b.ReportAllocs()
	for b.Loop() {
		if _, err := grammar.Unescape(in); err != nil {
			b.Fatal(err)
		}
	}
}
