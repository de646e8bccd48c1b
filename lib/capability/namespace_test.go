// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"errors"
	"testing"
)

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		text  string
		valid bool
	}{
		{"credential", true},
		{"kepler", true},
		{"my-namespace", true},
		{"name_space.v2", true},
		{"UPPER", true},
		{"ns0", true},
		{"", false},
		{"has space", false},
		{"has:colon", false},
		{"has/slash", false},
		{"has=equals", false},
		{"tab\there", false},
		{"ünïcode", false},
	}

	for _, tt := range tests {
		namespace, err := ParseNamespace(tt.text)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseNamespace(%q): unexpected error %v", tt.text, err)
				continue
			}
			if namespace.String() != tt.text {
				t.Errorf("ParseNamespace(%q).String() = %q", tt.text, namespace.String())
			}
		} else {
			if !errors.Is(err, ErrInvalidNamespace) {
				t.Errorf("ParseNamespace(%q): got %v, want ErrInvalidNamespace", tt.text, err)
			}
		}
	}
}

func TestNamespaceZeroValue(t *testing.T) {
	var zero Namespace
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if _, err := zero.MarshalText(); err == nil {
		t.Error("zero value should refuse to marshal")
	}

	parsed, err := ParseNamespace("credential")
	if err != nil {
		t.Fatalf("ParseNamespace: %v", err)
	}
	if parsed.IsZero() {
		t.Error("parsed namespace should not report IsZero")
	}
}

func TestNamespaceTextRoundtrip(t *testing.T) {
	original, err := ParseNamespace("kepler")
	if err != nil {
		t.Fatalf("ParseNamespace: %v", err)
	}

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var decoded Namespace
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %v, want %v", decoded, original)
	}

	if err := decoded.UnmarshalText([]byte("not valid!")); !errors.Is(err, ErrInvalidNamespace) {
		t.Errorf("UnmarshalText invalid: got %v, want ErrInvalidNamespace", err)
	}
}
