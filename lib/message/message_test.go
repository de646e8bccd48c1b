// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		// sign-in request for the example dapp
		"domain": "example.com",
		"statement": "Some custom statement.",
		"uri": "did:key:example",
		"version": "1",
		"chain_id": 1,
		"nonce": "mynonce1",
		"issued_at": "2022-06-21T12:00:00.000Z",
		"resources": [
			"https://example.com",
		],
	}`)

	msg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if msg.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", msg.Domain)
	}
	if msg.URI != "did:key:example" {
		t.Errorf("URI = %q, want did:key:example", msg.URI)
	}
	if msg.Statement == nil || *msg.Statement != "Some custom statement." {
		t.Errorf("Statement = %v, want Some custom statement.", msg.Statement)
	}
	if msg.ChainID != 1 {
		t.Errorf("ChainID = %d, want 1", msg.ChainID)
	}
	if len(msg.Resources) != 1 || msg.Resources[0] != "https://example.com" {
		t.Errorf("Resources = %v", msg.Resources)
	}
}

func TestParseAbsentStatement(t *testing.T) {
	msg, err := Parse([]byte(`{"uri": "did:key:example"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Absent must stay absent — not become the empty string.
	if msg.Statement != nil {
		t.Errorf("Statement = %q, want nil", *msg.Statement)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"uri": `))
	if err == nil {
		t.Fatal("Parse should reject malformed input")
	}
	if !strings.Contains(err.Error(), "parsing sign-in message") {
		t.Errorf("error %q lacks parse context", err)
	}
}

func TestClone(t *testing.T) {
	statement := "original"
	msg := Message{
		URI:       "did:key:example",
		Statement: &statement,
		Resources: []string{"a", "b"},
	}

	clone := msg.Clone()
	*clone.Statement = "changed"
	clone.Resources[0] = "changed"

	if *msg.Statement != "original" {
		t.Errorf("clone aliases statement: %q", *msg.Statement)
	}
	if msg.Resources[0] != "a" {
		t.Errorf("clone aliases resources: %v", msg.Resources)
	}
}
