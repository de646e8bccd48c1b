// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/capgrant/lib/capability"
	"github.com/bureau-foundation/capgrant/lib/codec"
	"github.com/bureau-foundation/capgrant/lib/message"
)

// decodedGrants is the JSON output shape for one decoded capability
// URN.
type decodedGrants struct {
	Namespace       string              `json:"namespace"`
	DefaultActions  []string            `json:"default_actions,omitempty"`
	ResourceActions map[string][]string `json:"resource_actions,omitempty"`
}

func runDecode(args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	compact := flags.BoolP("compact", "c", false, "compact single-line JSON output")
	diag := flags.Bool("diag", false, "print CBOR diagnostic notation instead of JSON")
	if err := flags.Parse(args); err != nil {
		return err
	}

	urns := flags.Args()
	if len(urns) == 0 {
		return fmt.Errorf("decode requires at least one capability URN argument")
	}

	for _, urn := range urns {
		if *diag {
			notation, err := diagnoseURN(urn)
			if err != nil {
				return err
			}
			fmt.Println(notation)
			continue
		}

		decoded, err := decodeURN(urn)
		if err != nil {
			return err
		}
		if err := writeJSON(os.Stdout, decoded, *compact); err != nil {
			return err
		}
	}
	return nil
}

// decodeURN decodes one capability URN through the library's own
// extraction path, so the CLI rejects exactly what a verifier would
// reject.
func decodeURN(urn string) (decodedGrants, error) {
	if !strings.HasPrefix(urn, capability.ResourcePrefix) {
		return decodedGrants{}, fmt.Errorf("%q is not a capability URN (missing %q prefix)", urn, capability.ResourcePrefix)
	}

	set, err := capability.ExtractCapabilities(message.Message{Resources: []string{urn}})
	if err != nil {
		return decodedGrants{}, err
	}

	namespaces := set.Namespaces()
	if len(namespaces) != 1 {
		return decodedGrants{}, fmt.Errorf("%q decoded to %d namespaces, want 1", urn, len(namespaces))
	}
	namespace := namespaces[0]

	decoded := decodedGrants{
		Namespace:      namespace.String(),
		DefaultActions: set.DefaultActions(namespace),
	}
	if resources := set.Resources(namespace); len(resources) > 0 {
		decoded.ResourceActions = make(map[string][]string, len(resources))
		for _, resource := range resources {
			decoded.ResourceActions[resource] = set.ResourceActions(namespace, resource)
		}
	}
	return decoded, nil
}

// diagnoseURN prints the raw CBOR structure of a capability payload
// without interpreting it — useful when decodeURN rejects an entry
// and the question is what is actually on the wire.
func diagnoseURN(urn string) (string, error) {
	if !strings.HasPrefix(urn, capability.ResourcePrefix) {
		return "", fmt.Errorf("%q is not a capability URN (missing %q prefix)", urn, capability.ResourcePrefix)
	}
	rest := urn[len(capability.ResourcePrefix):]
	delimiter := strings.IndexByte(rest, ':')
	if delimiter < 0 {
		return "", fmt.Errorf("%q has no payload delimiter", urn)
	}

	data, err := base64.RawURLEncoding.DecodeString(rest[delimiter+1:])
	if err != nil {
		return "", fmt.Errorf("decode base64 payload of %q: %w", urn, err)
	}

	notation, err := codec.Diagnose(data)
	if err != nil {
		return "", fmt.Errorf("diagnose payload of %q: %w", urn, err)
	}
	return rest[:delimiter] + ": " + notation, nil
}
