// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"strings"

	"github.com/bureau-foundation/capgrant/lib/message"
)

// VerifyStatement checks that the encoded delegations in the message's
// resources match the human-readable description in its statement, and
// that the URI named in the statement is the message's URI.
//
// The comparison is a three-way case split — absence is not an empty
// string:
//
//   - no statement and no grants: match
//   - both present: match iff the statement ends with the regenerated
//     text, byte for byte (a caller-chosen prefix before the appended
//     description is allowed)
//   - exactly one present: no match
//
// A decode failure in the resources is returned as an error, not
// false: an unparseable grant set means the message cannot be
// authenticated at all, which callers must treat as "reject" —
// distinct from a clean false meaning the statement does not match
// the grants.
func VerifyStatement(msg message.Message) (bool, error) {
	set, err := ExtractCapabilities(msg)
	if err != nil {
		return false, err
	}

	generated := GenerateStatement(set, msg.URI)
	switch {
	case msg.Statement == nil && generated == nil:
		return true, nil
	case msg.Statement != nil && generated != nil:
		return strings.HasSuffix(*msg.Statement, *generated), nil
	default:
		return false, nil
	}
}
