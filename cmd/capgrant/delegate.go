// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/capgrant/lib/capability"
	"github.com/bureau-foundation/capgrant/lib/message"
)

func runDelegate(args []string) error {
	flags := pflag.NewFlagSet("delegate", pflag.ContinueOnError)
	messagePath := flags.String("message", "", "path to the base sign-in message (JSONC)")
	defaults := flags.StringArray("default", nil, `namespace-wide grant: "namespace=action1,action2" (repeatable)`)
	actions := flags.StringArray("action", nil, `resource grant: "namespace#resource=action1,action2" (repeatable)`)
	compact := flags.BoolP("compact", "c", false, "compact single-line JSON output")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("delegate takes no positional arguments, got %q", flags.Arg(0))
	}
	if *messagePath == "" {
		return fmt.Errorf("--message is required")
	}
	if len(*defaults) == 0 && len(*actions) == 0 {
		return fmt.Errorf("delegate requires at least one --default or --action grant")
	}

	msg, err := message.ReadFile(*messagePath)
	if err != nil {
		return err
	}

	builder := capability.NewBuilder()
	for _, grant := range *defaults {
		namespace, grantActions, err := parseDefaultGrant(grant)
		if err != nil {
			return err
		}
		builder.WithDefaultActions(namespace, grantActions...)
	}
	for _, grant := range *actions {
		namespace, resource, grantActions, err := parseResourceGrant(grant)
		if err != nil {
			return err
		}
		builder.WithActions(namespace, resource, grantActions...)
	}

	built, err := builder.Build(msg)
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, built, *compact)
}

// parseDefaultGrant splits "namespace=action1,action2".
func parseDefaultGrant(grant string) (capability.Namespace, []string, error) {
	name, list, found := strings.Cut(grant, "=")
	if !found {
		return capability.Namespace{}, nil, fmt.Errorf("grant %q: expected \"namespace=action1,action2\"", grant)
	}
	namespace, err := capability.ParseNamespace(name)
	if err != nil {
		return capability.Namespace{}, nil, fmt.Errorf("grant %q: %w", grant, err)
	}
	return namespace, splitActions(list), nil
}

// parseResourceGrant splits "namespace#resource=action1,action2".
// The action list is taken after the last "=" so that resource
// identifiers containing "=" survive.
func parseResourceGrant(grant string) (capability.Namespace, string, []string, error) {
	name, rest, found := strings.Cut(grant, "#")
	if !found {
		return capability.Namespace{}, "", nil, fmt.Errorf("grant %q: expected \"namespace#resource=action1,action2\"", grant)
	}
	namespace, err := capability.ParseNamespace(name)
	if err != nil {
		return capability.Namespace{}, "", nil, fmt.Errorf("grant %q: %w", grant, err)
	}

	separator := strings.LastIndexByte(rest, '=')
	if separator < 0 {
		return capability.Namespace{}, "", nil, fmt.Errorf("grant %q: missing \"=action1,action2\"", grant)
	}
	resource := rest[:separator]
	if resource == "" {
		return capability.Namespace{}, "", nil, fmt.Errorf("grant %q: empty resource", grant)
	}
	return namespace, resource, splitActions(rest[separator+1:]), nil
}

// splitActions splits a comma-separated action list, dropping empty
// segments from stray commas.
func splitActions(list string) []string {
	var actions []string
	for _, action := range strings.Split(list, ",") {
		if action != "" {
			actions = append(actions, action)
		}
	}
	return actions
}
