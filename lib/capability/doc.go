// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package capability attaches machine-verifiable delegation grants to
// a cryptographically-signed sign-in message while producing a
// deterministic human-readable description of those grants inside the
// message's free-text statement.
//
// A grant is (namespace, optional resource, action): an opaque action
// token permitted either namespace-wide (a default action) or on one
// specific resource. Grants accumulate in a Set, the single canonical
// form from which both representations are generated:
//
//   - one resource entry per namespace, of the form
//     "urn:capability:<namespace>:<base64url(CBOR payload)>", appended
//     to the message's resource list, and
//   - an enumerated statement suffix naming the message URI as the
//     delegate, appended to the message's statement.
//
// Because both are derived from the Set's canonical order and never
// generated independently, a verifier can re-extract the Set from the
// resource entries, regenerate the statement text, and confirm the
// signer saw an accurate description of what they delegated:
//
//	verified, err := capability.VerifyStatement(msg)
//
// VerifyStatement distinguishes three outcomes: true (the statement
// suffix matches the grants), false (well-formed but mismatched, e.g.
// a tampered statement or URI), and a decode error (the capability
// resources cannot be parsed at all — the message cannot be
// authenticated and must be rejected, not treated as a mismatch).
//
// The declaration side is a fluent Builder:
//
//	credential, _ := capability.ParseNamespace("credential")
//	msg, err := capability.NewBuilder().
//		WithDefaultActions(credential, "present").
//		WithActions(credential, "type:type1", "present").
//		Build(msg)
//
// Everything here is synchronous and free of I/O. Distinct Builder and
// Set instances are independent; a single instance is sequentially
// owned and must not be mutated concurrently.
package capability
