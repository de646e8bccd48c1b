// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Commands that print their own verdict (verify) return an
		// exitError with the desired code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("subcommand required")
	}
	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(os.Stderr)
		return nil
	}

	switch args[0] {
	case "decode":
		return runDecode(args[1:])
	case "statement":
		return runStatement(args[1:])
	case "verify":
		return runVerify(args[1:])
	case "delegate":
		return runDelegate(args[1:])
	default:
		return fmt.Errorf("unknown command %q\n\nRun 'capgrant --help' for usage.", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `capgrant inspects and produces capability delegations in sign-in messages.

Usage:
  capgrant <command> [flags]

Commands:
  decode     Decode capability URNs to JSON
  statement  Regenerate a message's canonical delegation statement
  verify     Check a message's statement against its encoded grants
  delegate   Apply grants to a base message and print the result

Run 'capgrant <command> --help' for more information on a command.
`)
}

// exitError signals a non-zero exit code without an extra error
// message; the command has already written its own output.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit code %d", e.code) }

// ExitCode returns the exit code; main checks for this interface to
// distinguish "handled non-zero exit" from "unexpected error".
func (e exitError) ExitCode() int { return e.code }

// writeJSON encodes value as JSON and writes it to w with a trailing
// newline. When compact is false, output is pretty-printed with
// 2-space indentation.
func writeJSON(w io.Writer, value any, compact bool) error {
	var output []byte
	var err error
	if compact {
		output, err = json.Marshal(value)
	} else {
		output, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(output))
	return err
}
