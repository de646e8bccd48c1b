// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package message defines the sign-in message record the capability
// layer collaborates with.
//
// The message's own grammar, field validation, and signing live in the
// host application; this package treats it as an opaque record. The
// capability layer reads exactly three fields — URI (read only),
// Statement (read and replaced), and Resources (read and appended) —
// and carries the rest verbatim.
//
// Message files are JSON, optionally with JSONC extensions (line
// comments, block comments, trailing commas) when authored by hand:
//
//	msg, err := message.ReadFile("signin.jsonc")
package message
