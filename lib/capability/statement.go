// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"fmt"
	"strings"
)

// GenerateStatement produces the canonical human-readable description
// of the Set's grants, naming uri as the delegate. Returns nil for an
// empty Set — no grants, no text.
//
// The text is byte-deterministic for a given Set and URI: namespaces
// appear in first-declaration order; within a namespace, default
// actions come first (sorted), then each resource (sorted) with its
// actions (sorted). One enumerated clause per granted action:
//
//	I further authorize did:key:example to perform the following
//	actions on my behalf: (1) "present" under "credential".
//	(2) "get" under "kepler" for "kepler:ens:example.eth://default/kv".
//
// The result is meant to be appended to any caller-supplied statement,
// never prepended or spliced; VerifyStatement checks it as a suffix.
func GenerateStatement(set *Set, uri string) *string {
	if set.IsEmpty() {
		return nil
	}

	var text strings.Builder
	fmt.Fprintf(&text, "I further authorize %s to perform the following actions on my behalf:", uri)

	clause := 0
	for _, namespace := range set.order {
		e := set.entries[namespace]
		for _, action := range sortedTokens(e.defaults) {
			clause++
			fmt.Fprintf(&text, " (%d) %q under %q.", clause, action, namespace)
		}
		for _, resource := range set.Resources(namespace) {
			for _, action := range sortedTokens(e.resources[resource]) {
				clause++
				fmt.Fprintf(&text, " (%d) %q under %q for %q.", clause, action, namespace, resource)
			}
		}
	}

	generated := text.String()
	return &generated
}
