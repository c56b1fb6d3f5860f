// storagekey derives storage keys and decodes scalar values from the command
// line.
//
//	storagekey key    --namespace System --item Account --param blake2_128_concat=0x<hex>
//	storagekey decode --type 'Option<bool>' 0x0101
//	storagekey batch  requests.yaml
//	storagekey put    --snapshot state.db --namespace Timestamp --item Now --type u64 --value 1
//	storagekey get    --snapshot state.db --namespace Timestamp --item Now --type u64
//
// Configuration is read from --config or STORAGEKEY_CONFIG when either is set.
package main

import (
	"fmt"
	"io"
	"os"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) error
}

var commands = []command{
	{"key", "derive a storage key", runKey},
	{"decode", "decode a hex encoded scalar value", runDecode},
	{"batch", "derive keys for a yaml or cbor request file", runBatch},
	{"put", "store an encoded value in a snapshot", runPut},
	{"get", "look up and decode a value in a snapshot", runGet},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage(stdout)
		return exitOK
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		env := &environment{stdout: stdout, stderr: stderr}
		defer env.close()
		if err := c.run(env, args[1:]); err != nil {
			fmt.Fprintf(stderr, "storagekey %s: %v\n", c.name, err)
			if isUsage(err) {
				return exitUsage
			}
			return exitFail
		}
		return exitOK
	}

	fmt.Fprintf(stderr, "storagekey: unknown command %q\n", args[0])
	printUsage(stderr)
	return exitUsage
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: storagekey <command> [flags]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}
