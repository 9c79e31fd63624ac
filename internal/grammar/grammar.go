// Package grammar implements the textual grammar of bus server address
// strings: percent-escape decoding and the address-list tokenizer.
package grammar

//go:generate go tool errtrace -w .

// Error represents an address grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrMalformedEscape is returned on a '%' not followed by two hex digits
	// or when the unescaped byte sequence is not valid UTF-8.
	ErrMalformedEscape Error = "malformed escape"
	// ErrMalformedAddress is returned on a structurally invalid address
	// entry, e.g. an empty transport name.
	ErrMalformedAddress Error = "malformed address"
)
