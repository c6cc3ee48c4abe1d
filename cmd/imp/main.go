package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"imp/interpreter-go/pkg/driver"
	"imp/interpreter-go/pkg/state"
)

const cliToolVersion = "imp-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "list":
		return runList(stdout)
	case "run":
		return runProgram(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: imp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  list                        list catalog programs")
	fmt.Fprintln(w, "  run [flags] <program>       run a catalog program")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "run flags:")
	fmt.Fprintln(w, "  -fuel N      recursion budget (default 500)")
	fmt.Fprintln(w, "  -set X=2     initial variable binding (repeatable)")
	fmt.Fprintln(w, "  -v           verbose run logging")
}

func runList(stdout io.Writer) int {
	for _, p := range driver.Catalog() {
		fmt.Fprintf(stdout, "%-14s %s\n", p.Name, p.Description)
	}
	return 0
}

// bindingsFlag collects repeated -set NAME=VALUE pairs.
type bindingsFlag map[string]int64

func (b bindingsFlag) String() string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, b[name]))
	}
	return strings.Join(parts, ",")
}

func (b bindingsFlag) Set(raw string) error {
	name, value, err := parseBinding(raw)
	if err != nil {
		return err
	}
	b[name] = value
	return nil
}

func parseBinding(raw string) (string, int64, error) {
	name, valueText, ok := strings.Cut(raw, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("binding %q is not of the form NAME=VALUE", raw)
	}
	value, err := strconv.ParseInt(valueText, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("binding %q has a non-integer value", raw)
	}
	return name, value, nil
}

func runProgram(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fuel := fs.Int("fuel", driver.DefaultFuel, "recursion budget")
	verbose := fs.Bool("v", false, "verbose run logging")
	bindings := bindingsFlag{}
	fs.Var(bindings, "set", "initial variable binding NAME=VALUE")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "run expects exactly one program name")
		return 1
	}
	if *fuel < 0 {
		fmt.Fprintf(stderr, "fuel must be non-negative, got %d\n", *fuel)
		return 1
	}

	program, err := driver.Lookup(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	harness := driver.NewHarness(logger).WithFuel(*fuel)
	outcome := harness.Run(state.FromMap(map[string]int64(bindings)), program)

	if outcome.Indeterminate {
		fmt.Fprintln(stdout, "indeterminate")
		return 2
	}
	names := make([]string, 0, len(outcome.Variables))
	for name := range outcome.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(stdout, "%s=%d\n", name, outcome.Variables[name])
	}
	return 0
}
