// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/capgrant/lib/capability"
	"github.com/bureau-foundation/capgrant/lib/message"
)

func builtURN(t *testing.T) string {
	t.Helper()

	credential, err := capability.ParseNamespace("credential")
	if err != nil {
		t.Fatalf("ParseNamespace: %v", err)
	}
	built, err := capability.NewBuilder().
		WithDefaultActions(credential, "present").
		WithActions(credential, "type:type1", "present", "issue").
		Build(message.Message{URI: "did:key:example"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(built.Resources) != 1 {
		t.Fatalf("resources = %v, want one entry", built.Resources)
	}
	return built.Resources[0]
}

func TestDecodeURN(t *testing.T) {
	decoded, err := decodeURN(builtURN(t))
	if err != nil {
		t.Fatalf("decodeURN: %v", err)
	}

	if decoded.Namespace != "credential" {
		t.Errorf("Namespace = %q, want credential", decoded.Namespace)
	}
	if !slices.Equal(decoded.DefaultActions, []string{"present"}) {
		t.Errorf("DefaultActions = %v, want [present]", decoded.DefaultActions)
	}
	if got := decoded.ResourceActions["type:type1"]; !slices.Equal(got, []string{"issue", "present"}) {
		t.Errorf("ResourceActions[type:type1] = %v, want [issue present]", got)
	}
}

func TestDecodeURNRejectsNonCapability(t *testing.T) {
	if _, err := decodeURN("https://example.com"); err == nil {
		t.Error("decodeURN should reject a non-capability resource")
	}
	if _, err := decodeURN(capability.ResourcePrefix + "credential:???"); err == nil {
		t.Error("decodeURN should reject invalid base64 payload")
	}
}

func TestDiagnoseURN(t *testing.T) {
	notation, err := diagnoseURN(builtURN(t))
	if err != nil {
		t.Fatalf("diagnoseURN: %v", err)
	}

	if !strings.HasPrefix(notation, "credential: ") {
		t.Errorf("notation %q should name the namespace", notation)
	}
	if !strings.Contains(notation, `"present"`) {
		t.Errorf("notation %q should contain the action token", notation)
	}
}
