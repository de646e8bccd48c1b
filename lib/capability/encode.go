// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"encoding/base64"
	"fmt"

	"github.com/bureau-foundation/capgrant/lib/codec"
)

// ResourcePrefix is the fixed prefix marking a resource entry as a
// capability delegation. Entries without it are ordinary resources
// and are left untouched by this package.
const ResourcePrefix = "urn:capability:"

// payload is the structured wire payload for one namespace's grants:
// an optional list of default action tokens and an optional mapping
// from resource text to action tokens. Absent members are omitted
// rather than encoded as empty. Compact keyasint encoding; CBOR Core
// Deterministic Encoding sorts the resource map on the wire.
type payload struct {
	DefaultActions  []string            `cbor:"1,keyasint,omitempty"`
	ResourceActions map[string][]string `cbor:"2,keyasint,omitempty"`
}

// wirePayload assembles the canonical payload for one namespace
// entry. Action lists are sorted, matching the statement emission
// order.
func (e *entry) wirePayload() payload {
	p := payload{}
	if len(e.defaults) > 0 {
		p.DefaultActions = sortedTokens(e.defaults)
	}
	if len(e.resources) > 0 {
		p.ResourceActions = make(map[string][]string, len(e.resources))
		for resource, actions := range e.resources {
			p.ResourceActions[resource] = sortedTokens(actions)
		}
	}
	return p
}

// EncodeNamespace serializes one namespace's grants into its resource
// entry: ResourcePrefix + namespace + ":" + base64url (unpadded) of
// the CBOR payload.
func (s *Set) EncodeNamespace(namespace Namespace) (string, error) {
	e, ok := s.entries[namespace]
	if !ok {
		return "", fmt.Errorf("%w: namespace %q not in set", ErrEncodingFailure, namespace)
	}
	data, err := codec.Marshal(e.wirePayload())
	if err != nil {
		return "", fmt.Errorf("%w: namespace %q: %v", ErrEncodingFailure, namespace, err)
	}
	return ResourcePrefix + namespace.String() + ":" + base64.RawURLEncoding.EncodeToString(data), nil
}

// EncodeResources emits one capability resource entry per namespace,
// in first-declaration order.
func (s *Set) EncodeResources() ([]string, error) {
	if s.IsEmpty() {
		return nil, nil
	}
	encoded := make([]string, 0, len(s.order))
	for _, namespace := range s.order {
		resource, err := s.EncodeNamespace(namespace)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, resource)
	}
	return encoded, nil
}
