// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// capability payloads.
//
// Two serialization formats appear in this repository with a clear
// boundary:
//
//   - JSON for external interfaces: sign-in message files and CLI
//     output.
//   - CBOR for the capability wire format: the structured payload
//     embedded in each urn:capability: resource entry.
//
// This package provides the shared CBOR encoding and decoding modes so
// that the encoder, the extractor, and the CLI all encode identically
// without duplicating configuration. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. Determinism is a
// correctness requirement here, not a nicety — statement verification
// depends on a Set always re-encoding to the same bytes.
//
//	data, err := codec.Marshal(payload)
//	err = codec.Unmarshal(data, &payload)
package codec
