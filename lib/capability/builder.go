// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "github.com/bureau-foundation/capgrant/lib/message"

// Builder accumulates delegation grants and applies them to a sign-in
// message in one terminal Build call. Declaration methods chain; the
// first argument error (zero-value Namespace, empty action token) is
// recorded and surfaced by Build, so a fluent chain never needs
// per-call error checks.
//
// The Builder exclusively owns its accumulating Set until Build
// consumes it. A Builder is sequentially owned: do not share one
// instance across goroutines.
type Builder struct {
	set *Set
	err error
}

// NewBuilder returns a Builder with an empty grant set.
func NewBuilder() *Builder {
	return &Builder{set: NewSet()}
}

// WithDefaultActions declares actions that apply to the namespace as
// a whole — to every resource under it and to the namespace-level
// grant itself.
func (b *Builder) WithDefaultActions(namespace Namespace, actions ...string) *Builder {
	if b.err == nil {
		b.err = b.set.AddDefaultActions(namespace, actions)
	}
	return b
}

// WithActions declares actions on one specific resource under the
// namespace.
func (b *Builder) WithActions(namespace Namespace, resource string, actions ...string) *Builder {
	if b.err == nil {
		b.err = b.set.AddResourceActions(namespace, resource, actions)
	}
	return b
}

// Build applies the accumulated grants to msg and returns the mutated
// copy. With no declared grants the message comes back unchanged —
// statement untouched, no resources appended. Otherwise the generated
// description is appended to the statement (separated by a single
// space when a non-empty caller statement exists) and one encoded
// capability entry per namespace is appended after the existing
// resources, in declaration order.
//
// The input message is never modified; statement pointer and resource
// slice are copied before mutation.
func (b *Builder) Build(msg message.Message) (message.Message, error) {
	if b.err != nil {
		return message.Message{}, b.err
	}

	result := msg.Clone()
	if b.set.IsEmpty() {
		return result, nil
	}

	generated := GenerateStatement(b.set, msg.URI)
	if result.Statement != nil && *result.Statement != "" {
		combined := *result.Statement + " " + *generated
		result.Statement = &combined
	} else {
		result.Statement = generated
	}

	encoded, err := b.set.EncodeResources()
	if err != nil {
		return message.Message{}, err
	}
	result.Resources = append(result.Resources, encoded...)
	return result, nil
}
