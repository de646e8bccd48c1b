// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/tidwall/jsonc"
)

// Message is a sign-in message: a structured, signable record with a
// URI, an optional free-text statement, and an ordered list of
// resource identifiers.
//
// Statement is a pointer because absence and the empty string are
// different states: a message with no statement stays without one
// through an empty delegation, and verification treats "no statement"
// and "empty statement" differently.
//
// Every field other than URI, Statement, and Resources is passive
// envelope data — never validated or interpreted here.
type Message struct {
	Domain         string   `json:"domain,omitempty"`
	Address        string   `json:"address,omitempty"`
	Statement      *string  `json:"statement,omitempty"`
	URI            string   `json:"uri"`
	Version        string   `json:"version,omitempty"`
	ChainID        uint64   `json:"chain_id,omitempty"`
	Nonce          string   `json:"nonce,omitempty"`
	IssuedAt       string   `json:"issued_at,omitempty"`
	ExpirationTime string   `json:"expiration_time,omitempty"`
	NotBefore      string   `json:"not_before,omitempty"`
	RequestID      string   `json:"request_id,omitempty"`
	Resources      []string `json:"resources,omitempty"`
}

// Clone returns a copy that shares no mutable state with m: the
// statement pointer and the resource slice are duplicated, so
// mutating the copy never aliases the caller's message.
func (m Message) Clone() Message {
	clone := m
	if m.Statement != nil {
		statement := *m.Statement
		clone.Statement = &statement
	}
	clone.Resources = slices.Clone(m.Resources)
	return clone
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result into a Message.
func Parse(data []byte) (Message, error) {
	stripped := jsonc.ToJSON(data)

	var msg Message
	if err := json.Unmarshal(stripped, &msg); err != nil {
		return Message{}, fmt.Errorf("parsing sign-in message: %w", err)
	}
	return msg, nil
}

// ReadFile reads a JSONC message file from disk and parses it.
func ReadFile(path string) (Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("reading sign-in message: %w", err)
	}
	msg, err := Parse(data)
	if err != nil {
		return Message{}, fmt.Errorf("%s: %w", path, err)
	}
	return msg, nil
}
