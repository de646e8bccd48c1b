// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import "errors"

// Errors returned by the capability codec. All fallible operations
// wrap one of these sentinels; callers assert with errors.Is.
var (
	// ErrInvalidNamespace reports a namespace token that violates the
	// grammar (empty, or characters outside a-z, A-Z, 0-9, ., _, -).
	ErrInvalidNamespace = errors.New("capability: invalid namespace")

	// ErrInvalidAction reports an empty action token in a declaration.
	ErrInvalidAction = errors.New("capability: invalid action")

	// ErrEncodingFailure reports a capability payload that could not
	// be serialized. Not expected under validated inputs.
	ErrEncodingFailure = errors.New("capability: encoding payload")

	// ErrDecodingFailure reports a resource entry that carries the
	// capability prefix but cannot be decoded: missing payload
	// delimiter, invalid base64url data, or a structurally invalid
	// payload. A message with such an entry cannot be authenticated.
	ErrDecodingFailure = errors.New("capability: decoding resource")
)
