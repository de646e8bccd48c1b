// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// capgrant inspects and produces capability delegations in sign-in
// messages.
//
//	capgrant decode <urn>...        decode capability URNs to JSON
//	capgrant statement <file>       regenerate a message's canonical statement
//	capgrant verify <file>          check statement against encoded grants
//	capgrant delegate [flags]       apply grants to a base message
//
// Message files are JSON with optional JSONC extensions. Output is
// plain JSON or text on stdout; verify exits 0 on match, 1 on
// mismatch, and reports an error when the grants cannot be decoded
// at all.
package main
