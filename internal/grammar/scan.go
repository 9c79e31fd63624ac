package grammar

import (
	"braces.dev/errtrace"

	"github.com/wirebus/wirebus/internal/errorutil"
)

// RawAddr is a tokenized address entry: a transport name and the flat
// key1, value1, key2, value2, ... list in source order. Property semantics,
// including duplicate keys, are left to the caller.
type RawAddr struct {
	Transport string
	Pairs     []string
}

type scanState int

const (
	stateTransport scanState = iota
	stateKey
	stateValue
)

// ScanAddresses tokenizes an unescaped address-list string into raw entries,
// preserving source order. It is a single pass with three states; in each
// state only that state's delimiters are special and every other byte is
// accumulated into the current token:
//
//   - transport ends at ':' (empty transport name is an error); a ';' with
//     no accumulated text is skipped (tolerates back-to-back ';;'), with
//     accumulated text it is an error since an entry requires a ':';
//   - a key ends at '=' (value follows) or at ';' (an empty key token is
//     discarded, which permits a trailing ';');
//   - a value ends at ',' (next key follows) or at ';' (entry finalized).
//
// End of input behaves like a ';' in the current state.
// Empty input yields no entries.
func ScanAddresses(s string) ([]RawAddr, error) {
	var (
		addrs []RawAddr
		cur   RawAddr
		tok   []byte
		state scanState
	)

	flush := func() string {
		t := string(tok)
		tok = tok[:0]
		return t
	}
	finalize := func() {
		addrs = append(addrs, cur)
		cur = RawAddr{}
		state = stateTransport
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateTransport:
			switch c {
			case ':':
				if len(tok) == 0 {
					return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedAddress, "empty transport name at offset %d", i))
				}
				cur.Transport = flush()
				state = stateKey
			case ';':
				if len(tok) > 0 {
					return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedAddress, "transport %q without ':' at offset %d", string(tok), i))
				}
			default:
				tok = append(tok, c)
			}

		case stateKey:
			switch c {
			case '=':
				cur.Pairs = append(cur.Pairs, flush())
				state = stateValue
			case ';':
				// an empty key token before ';' is dropped, the entry may
				// legitimately have zero properties
				if len(tok) > 0 {
					cur.Pairs = append(cur.Pairs, flush(), "")
				}
				finalize()
			default:
				tok = append(tok, c)
			}

		case stateValue:
			switch c {
			case ',':
				cur.Pairs = append(cur.Pairs, flush())
				state = stateKey
			case ';':
				cur.Pairs = append(cur.Pairs, flush())
				finalize()
			default:
				tok = append(tok, c)
			}
		}
	}

	switch state {
	case stateTransport:
		if len(tok) > 0 {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedAddress, "transport %q without ':' at end of input", string(tok)))
		}
	case stateKey:
		if len(tok) > 0 {
			cur.Pairs = append(cur.Pairs, flush(), "")
		}
		finalize()
	case stateValue:
		cur.Pairs = append(cur.Pairs, flush())
		finalize()
	}
	return addrs, nil
}
