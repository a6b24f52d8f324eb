// Command ratsolve reads linear systems with exact rational coefficients and
// prints their classification.
//
// Usage:
//
//	ratsolve [-f file] [-batch] [-j N] [-lenient] [-param q] [-v]
//
// Input is one equation per line, tokens separated by single spaces, each
// token "int" or "int/int", the last token being the constant term:
//
//	$ printf '1 1 1\n' | ratsolve
//	SOL=(1; 0) + q1 * (-1; 1)
//
// With -batch, blank lines separate independent systems which are solved
// concurrently (-j workers); one SOL line is printed per system, in input
// order. The exit status is 1 if any system fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/ratsolve/builder"
	"github.com/katalvlaran/ratsolve/matrix"
	"github.com/katalvlaran/ratsolve/solver"
)

var log = logging.Logger("ratsolve")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals; it returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ratsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		fileFlag    = fs.String("f", "", "read input from file instead of stdin")
		batchFlag   = fs.Bool("batch", false, "blank-line separated systems, solved concurrently")
		jobsFlag    = fs.Int("j", solver.DefaultConcurrency, "max systems solved at once with -batch")
		lenientFlag = fs.Bool("lenient", false, "split tokens on any whitespace and skip blank lines")
		paramFlag   = fs.String("param", matrix.DefaultParamName, "free-parameter symbol in the output")
		verboseFlag = fs.Bool("v", false, "verbose logging (elimination trace)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *jobsFlag < 1 {
		fmt.Fprintln(stderr, "ratsolve: -j must be >= 1")
		return 2
	}
	if *paramFlag == "" || strings.ContainsAny(*paramFlag, ";()") || strings.IndexFunc(*paramFlag, unicode.IsSpace) >= 0 {
		fmt.Fprintf(stderr, "ratsolve: invalid -param %q\n", *paramFlag)
		return 2
	}

	if *verboseFlag {
		logging.SetAllLoggers(logging.LevelDebug)
	}

	input, err := readInput(*fileFlag, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "ratsolve: %v\n", err)
		return 1
	}

	bopts := []builder.BuilderOption{
		builder.WithMatrixOptions(matrix.WithParamName(*paramFlag), matrix.WithTrace(*verboseFlag)),
	}
	if *lenientFlag {
		bopts = append(bopts, builder.WithLenientWhitespace())
	}
	opts := []solver.Option{
		solver.WithBuilderOptions(bopts...),
		solver.WithConcurrency(*jobsFlag),
	}

	if !*batchFlag {
		out, err := solver.Solve(input, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "ratsolve: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}

	systems := splitSystems(input)
	log.Debugf("solving %d systems with %d workers", len(systems), *jobsFlag)

	results, err := solver.SolveAll(ctx, systems, opts...)
	code := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "ratsolve: system %d: %v\n", r.Index+1, r.Err)
			code = 1
			continue
		}
		fmt.Fprintln(stdout, r)
	}
	if err != nil {
		log.Errorf("batch stopped: %v", err)
		code = 1
	}

	return code
}

// readInput returns the whole input from path, or from stdin when path is "".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(b), nil
}

// splitSystems cuts input at blank lines; runs of blank lines count once.
func splitSystems(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var (
		systems []string
		cur     []string
	)
	flush := func() {
		if len(cur) > 0 {
			systems = append(systems, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()

	return systems
}
