// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bureau-foundation/capgrant/lib/codec"
	"github.com/bureau-foundation/capgrant/lib/message"
)

// ExtractCapabilities scans the message's resources in order and
// union-merges every capability entry into one Set. Entries without
// the capability prefix are ignored. Entries with the prefix must
// decode: a prefixed entry that fails to parse is always an error,
// never treated as "no capability here" — an unparseable grant set
// means the message cannot be authenticated at all.
//
// Because merging is a union, entries for the same namespace may
// appear at arbitrary, non-adjacent positions (interleaved with
// unrelated resources or other namespaces) and still converge to the
// same canonical Set.
func ExtractCapabilities(msg message.Message) (*Set, error) {
	set := NewSet()
	for _, resource := range msg.Resources {
		if !strings.HasPrefix(resource, ResourcePrefix) {
			continue
		}
		namespace, p, err := decodeResource(resource)
		if err != nil {
			return nil, err
		}
		if err := mergePayload(set, namespace, p); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// decodeResource splits a prefixed resource entry into its namespace
// and payload.
func decodeResource(resource string) (Namespace, payload, error) {
	rest := resource[len(ResourcePrefix):]
	delimiter := strings.IndexByte(rest, ':')
	if delimiter < 0 {
		return Namespace{}, payload{}, fmt.Errorf("%w: entry %q has no payload delimiter", ErrDecodingFailure, resource)
	}

	namespace, err := ParseNamespace(rest[:delimiter])
	if err != nil {
		return Namespace{}, payload{}, err
	}

	data, err := base64.RawURLEncoding.DecodeString(rest[delimiter+1:])
	if err != nil {
		return Namespace{}, payload{}, fmt.Errorf("%w: namespace %q: %v", ErrDecodingFailure, namespace, err)
	}

	var p payload
	if err := codec.Unmarshal(data, &p); err != nil {
		return Namespace{}, payload{}, fmt.Errorf("%w: namespace %q: %v", ErrDecodingFailure, namespace, err)
	}
	return namespace, p, nil
}

// mergePayload unions one decoded namespace payload into the set.
// Empty action tokens inside a payload are a structural defect of the
// encoding, not a caller error, so they surface as ErrDecodingFailure.
func mergePayload(set *Set, namespace Namespace, p payload) error {
	for _, action := range p.DefaultActions {
		if action == "" {
			return fmt.Errorf("%w: namespace %q: empty action token in payload", ErrDecodingFailure, namespace)
		}
	}
	for resource, actions := range p.ResourceActions {
		for _, action := range actions {
			if action == "" {
				return fmt.Errorf("%w: namespace %q, resource %q: empty action token in payload", ErrDecodingFailure, namespace, resource)
			}
		}
	}

	// Validated above; the Set's add operations cannot fail here.
	if err := set.AddDefaultActions(namespace, p.DefaultActions); err != nil {
		return err
	}
	for resource, actions := range p.ResourceActions {
		if err := set.AddResourceActions(namespace, resource, actions); err != nil {
			return err
		}
	}
	return nil
}
