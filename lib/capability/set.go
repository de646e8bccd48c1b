// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"fmt"
	"maps"
	"slices"
)

// Set is the canonical merge-closed aggregate of declared grants,
// keyed by Namespace. It is the single source of truth for both the
// statement text and the resource encoding; the two are never
// generated independently of a Set, which is what guarantees
// round-trip fidelity between them.
//
// Namespaces keep first-declaration order. Within a namespace, action
// and resource emission order is lexicographic, so the canonical
// output is independent of the order in which grants were declared or
// merged.
type Set struct {
	order   []Namespace
	entries map[Namespace]*entry
}

// entry holds one namespace's grants: the default actions that apply
// to the namespace as a whole, and per-resource action sets.
type entry struct {
	defaults  map[string]struct{}
	resources map[string]map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{entries: make(map[Namespace]*entry)}
}

// validateActions rejects empty action tokens. Actions are otherwise
// opaque — this library assigns them no semantics.
func validateActions(actions []string) error {
	for _, action := range actions {
		if action == "" {
			return fmt.Errorf("%w: empty action token", ErrInvalidAction)
		}
	}
	return nil
}

// entryFor returns the namespace's entry, creating it (and recording
// declaration order) on first use. Callers must only invoke this when
// they are about to add at least one action; an entry with no actions
// and no resources must never exist (the pruning invariant).
func (s *Set) entryFor(namespace Namespace) *entry {
	if existing, ok := s.entries[namespace]; ok {
		return existing
	}
	created := &entry{
		defaults:  make(map[string]struct{}),
		resources: make(map[string]map[string]struct{}),
	}
	s.entries[namespace] = created
	s.order = append(s.order, namespace)
	return created
}

// AddDefaultActions unions actions into the namespace's default-action
// set. A call with no actions is a no-op: nothing was declared, so no
// entry is created.
func (s *Set) AddDefaultActions(namespace Namespace, actions []string) error {
	if namespace.IsZero() {
		return fmt.Errorf("%w: zero-value namespace", ErrInvalidNamespace)
	}
	if err := validateActions(actions); err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}
	e := s.entryFor(namespace)
	for _, action := range actions {
		e.defaults[action] = struct{}{}
	}
	return nil
}

// AddResourceActions unions actions into the given resource's action
// set under the namespace. The resource identifier is opaque text
// (typically a URI) and is not interpreted. A call with no actions is
// a no-op.
func (s *Set) AddResourceActions(namespace Namespace, resource string, actions []string) error {
	if namespace.IsZero() {
		return fmt.Errorf("%w: zero-value namespace", ErrInvalidNamespace)
	}
	if err := validateActions(actions); err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}
	e := s.entryFor(namespace)
	target, ok := e.resources[resource]
	if !ok {
		target = make(map[string]struct{})
		e.resources[resource] = target
	}
	for _, action := range actions {
		target[action] = struct{}{}
	}
	return nil
}

// Merge unions other into s, namespace by namespace, default by
// default, resource by resource. Union merging is associative,
// commutative, and idempotent per namespace/resource, so the final
// content never depends on merge order — only namespace ordering
// follows first appearance.
func (s *Set) Merge(other *Set) {
	for _, namespace := range other.order {
		source := other.entries[namespace]
		target := s.entryFor(namespace)
		for action := range source.defaults {
			target.defaults[action] = struct{}{}
		}
		for resource, actions := range source.resources {
			dest, ok := target.resources[resource]
			if !ok {
				dest = make(map[string]struct{})
				target.resources[resource] = dest
			}
			for action := range actions {
				dest[action] = struct{}{}
			}
		}
	}
}

// IsEmpty reports whether the Set holds no namespace entries.
func (s *Set) IsEmpty() bool { return len(s.order) == 0 }

// Namespaces returns the namespaces in first-declaration order.
func (s *Set) Namespaces() []Namespace {
	return slices.Clone(s.order)
}

// DefaultActions returns the namespace's default actions, sorted.
// Nil if the namespace is not in the Set.
func (s *Set) DefaultActions(namespace Namespace) []string {
	e, ok := s.entries[namespace]
	if !ok {
		return nil
	}
	return sortedTokens(e.defaults)
}

// Resources returns the namespace's resource identifiers, sorted.
// Nil if the namespace is not in the Set.
func (s *Set) Resources(namespace Namespace) []string {
	e, ok := s.entries[namespace]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(e.resources))
}

// ResourceActions returns the actions granted on one resource under
// the namespace, sorted. Nil if absent.
func (s *Set) ResourceActions(namespace Namespace, resource string) []string {
	e, ok := s.entries[namespace]
	if !ok {
		return nil
	}
	actions, ok := e.resources[resource]
	if !ok {
		return nil
	}
	return sortedTokens(actions)
}

// sortedTokens returns the members of a token set in lexicographic
// order — the fixed emission order used by both the statement and the
// wire encoding.
func sortedTokens(tokens map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(tokens))
}
