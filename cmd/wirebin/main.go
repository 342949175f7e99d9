// wirebin is a command-line tool for the wirebin codec: it converts JSON
// on stdin to wirebin bytes on stdout and back, and can dump a wirebin
// stream in a human-readable form for debugging.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/slideinc/wirebin-go/internal/jsonconv"
	"github.com/slideinc/wirebin-go/pkg/wirebin"
)

const usage = `usage: wirebin <command> [flags]

commands:
  encode    read JSON on stdin, write wirebin bytes on stdout
  decode    read wirebin bytes on stdin, write JSON on stdout
  dump      read wirebin bytes on stdin, write a readable listing on stdout
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "encode":
		return encodeCommand(args[1:])
	case "decode":
		return decodeCommand(args[1:])
	case "dump":
		return dumpCommand(args[1:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func encodeCommand(args []string) error {
	var verbose bool
	flagSet := pflag.NewFlagSet("wirebin encode", pflag.ContinueOnError)
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "report encode progress on stderr")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	value, err := jsonconv.Decode(input)
	if err != nil {
		return err
	}

	var opts []wirebin.CallOption
	if verbose {
		opts = append(opts, wirebin.WithProgress(func(offset int, _ ...any) error {
			fmt.Fprintf(os.Stderr, "encoded %d bytes\n", offset)
			return nil
		}))
	}
	encoded, err := wirebin.Serialize(value, opts...)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(encoded)
	return err
}

func decodeCommand(args []string) error {
	var compact bool
	flagSet := pflag.NewFlagSet("wirebin decode", pflag.ContinueOnError)
	flagSet.BoolVarP(&compact, "compact", "c", false, "compact single-line JSON output")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	value, err := wirebin.Deserialize(input)
	if err != nil {
		return err
	}
	rendered, err := jsonconv.Encode(value, compact)
	if err != nil {
		return err
	}
	rendered = append(rendered, '\n')
	_, err = os.Stdout.Write(rendered)
	return err
}

func dumpCommand(args []string) error {
	flagSet := pflag.NewFlagSet("wirebin dump", pflag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	value, err := wirebin.Deserialize(input)
	if err != nil {
		return err
	}
	dumpValue(os.Stdout, value, 0)
	return nil
}
