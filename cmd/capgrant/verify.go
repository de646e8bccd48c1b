// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/capgrant/lib/capability"
	"github.com/bureau-foundation/capgrant/lib/message"
)

func runVerify(args []string) error {
	flags := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	quiet := flags.BoolP("quiet", "q", false, "no output, exit status only")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("verify requires exactly one message file argument")
	}

	msg, err := message.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}

	verified, err := capability.VerifyStatement(msg)
	if err != nil {
		// Undecodable grants: the message cannot be authenticated.
		// This is an error, not a mismatch verdict.
		return fmt.Errorf("cannot authenticate message: %w", err)
	}

	if !verified {
		if !*quiet {
			fmt.Println("statement does not match encoded capabilities")
		}
		return exitError{code: 1}
	}

	if !*quiet {
		fmt.Println("statement matches encoded capabilities")
	}
	return nil
}
