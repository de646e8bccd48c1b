// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"slices"
	"testing"
)

func TestParseDefaultGrant(t *testing.T) {
	namespace, actions, err := parseDefaultGrant("credential=present,issue")
	if err != nil {
		t.Fatalf("parseDefaultGrant: %v", err)
	}
	if namespace.String() != "credential" {
		t.Errorf("namespace = %q, want credential", namespace)
	}
	if !slices.Equal(actions, []string{"present", "issue"}) {
		t.Errorf("actions = %v, want [present issue]", actions)
	}
}

func TestParseDefaultGrantErrors(t *testing.T) {
	for _, grant := range []string{"credential", "bad ns=present", "=present"} {
		if _, _, err := parseDefaultGrant(grant); err == nil {
			t.Errorf("parseDefaultGrant(%q): expected error", grant)
		}
	}
}

func TestParseResourceGrant(t *testing.T) {
	namespace, resource, actions, err := parseResourceGrant(
		"kepler#kepler:ens:example.eth://default/kv=list,get,metadata")
	if err != nil {
		t.Fatalf("parseResourceGrant: %v", err)
	}
	if namespace.String() != "kepler" {
		t.Errorf("namespace = %q, want kepler", namespace)
	}
	if resource != "kepler:ens:example.eth://default/kv" {
		t.Errorf("resource = %q", resource)
	}
	if !slices.Equal(actions, []string{"list", "get", "metadata"}) {
		t.Errorf("actions = %v", actions)
	}
}

func TestParseResourceGrantResourceWithEquals(t *testing.T) {
	// The action list is split at the last "=", so "=" inside the
	// resource identifier survives.
	_, resource, actions, err := parseResourceGrant("ns#https://example.com/?q=1=get")
	if err != nil {
		t.Fatalf("parseResourceGrant: %v", err)
	}
	if resource != "https://example.com/?q=1" {
		t.Errorf("resource = %q, want query string intact", resource)
	}
	if !slices.Equal(actions, []string{"get"}) {
		t.Errorf("actions = %v, want [get]", actions)
	}
}

func TestParseResourceGrantErrors(t *testing.T) {
	for _, grant := range []string{
		"kepler=get",      // missing resource
		"kepler#res1",     // missing actions
		"bad ns#res1=get", // invalid namespace
		"kepler#=get",     // empty resource
	} {
		if _, _, _, err := parseResourceGrant(grant); err == nil {
			t.Errorf("parseResourceGrant(%q): expected error", grant)
		}
	}
}
