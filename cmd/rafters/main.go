package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pthm/rafters"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

// keyEnv names the environment variable holding the settings token key.
const keyEnv = "RAFTERS_KEY"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "encode":
		if err := runEncode(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "decode":
		if err := runDecode(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "template-name":
		if err := runTemplateName(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("rafters version %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `rafters - component settings tooling

Usage:
  rafters <command> [arguments]

Commands:
  encode [--sensitive] <file.yaml>   Encode a YAML settings file as a token
  decode [--sensitive] <token>       Decode a token and print its settings as YAML
  template-name <Identifier>         Print the template name derived from an identifier
  version                            Print version
  help                               Show this help

Environment:
  RAFTERS_KEY   Key used to sign or encrypt settings tokens (required for encode/decode)

Examples:
  rafters encode settings.yaml
  rafters decode --sensitive "$TOKEN"
  rafters template-name admin.WidgetCard`)
}

// splitFlags separates --sensitive from positional arguments.
func splitFlags(args []string) (sensitive bool, rest []string) {
	for _, arg := range args {
		if arg == "--sensitive" {
			sensitive = true
		} else {
			rest = append(rest, arg)
		}
	}
	return sensitive, rest
}

func newEncoder() (*rafters.Encoder, error) {
	key := os.Getenv(keyEnv)
	if key == "" {
		return nil, fmt.Errorf("%s is not set", keyEnv)
	}
	return rafters.NewEncoder([]byte(key))
}

func runEncode(w io.Writer, args []string) error {
	sensitive, rest := splitFlags(args)
	if len(rest) != 1 {
		return fmt.Errorf("encode takes exactly one settings file")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	settings, err := rafters.ParseSettings(data)
	if err != nil {
		return err
	}

	enc, err := newEncoder()
	if err != nil {
		return err
	}
	token, err := rafters.EncodeSettings(enc, settings, sensitive)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	_, err = fmt.Fprintln(w, token)
	return err
}

func runDecode(w io.Writer, args []string) error {
	sensitive, rest := splitFlags(args)
	if len(rest) != 1 {
		return fmt.Errorf("decode takes exactly one token")
	}

	enc, err := newEncoder()
	if err != nil {
		return err
	}
	settings, err := rafters.DecodeSettings(enc, rest[0], sensitive)
	if err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}

	out, err := yaml.Marshal(map[string]any(settings))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func runTemplateName(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("template-name takes exactly one identifier")
	}
	_, err := fmt.Fprintln(w, rafters.DeriveTemplateName(args[0]))
	return err
}
