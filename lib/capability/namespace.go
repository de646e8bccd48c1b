// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "fmt"

// Namespace is a validated grouping identifier for a family of
// capabilities (e.g. "credential", "kepler"). A Namespace can only be
// obtained through ParseNamespace, so holding one guarantees the
// grammar holds — downstream code never re-validates.
//
// Equality and ordering are exact comparison of the raw text; the
// zero value is invalid and reports IsZero.
type Namespace struct {
	name string
}

// allowedNamespaceChars is the set of characters permitted in a
// namespace token: letters, digits, and the separators . _ -.
// The colon is deliberately excluded — it delimits the namespace from
// the encoded payload in a capability resource entry.
var allowedNamespaceChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		allowedNamespaceChars[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		allowedNamespaceChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		allowedNamespaceChars[c] = true
	}
	allowedNamespaceChars['.'] = true
	allowedNamespaceChars['_'] = true
	allowedNamespaceChars['-'] = true
}

// ParseNamespace validates text and returns it as a Namespace. Fails
// with ErrInvalidNamespace if text is empty or contains a character
// outside the allowed grammar.
func ParseNamespace(text string) (Namespace, error) {
	if text == "" {
		return Namespace{}, fmt.Errorf("%w: namespace is empty", ErrInvalidNamespace)
	}
	for i := 0; i < len(text); i++ {
		if !allowedNamespaceChars[text[i]] {
			return Namespace{}, fmt.Errorf("%w: character %q at position %d in %q (allowed: a-z, A-Z, 0-9, ., _, -)",
				ErrInvalidNamespace, text[i], i, text)
		}
	}
	return Namespace{name: text}, nil
}

// String returns the namespace text, satisfying fmt.Stringer.
func (n Namespace) String() string { return n.name }

// IsZero reports whether this is an uninitialized zero-value Namespace.
func (n Namespace) IsZero() bool { return n.name == "" }

// MarshalText implements encoding.TextMarshaler.
func (n Namespace) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero-value Namespace")
	}
	return []byte(n.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Namespace) UnmarshalText(data []byte) error {
	parsed, err := ParseNamespace(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
