// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/capgrant/lib/capability"
	"github.com/bureau-foundation/capgrant/lib/message"
)

func runStatement(args []string) error {
	flags := pflag.NewFlagSet("statement", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("statement requires exactly one message file argument")
	}

	msg, err := message.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}

	set, err := capability.ExtractCapabilities(msg)
	if err != nil {
		return err
	}

	generated := capability.GenerateStatement(set, msg.URI)
	if generated == nil {
		fmt.Fprintln(os.Stderr, "message carries no capability resources")
		return nil
	}

	fmt.Println(*generated)
	return nil
}
