// Command scnfmt is a thin line-oriented driver over scn.Scan/scn.ScanAll,
// kept deliberately small: it exists to give the library a runnable demo,
// not to grow into a general-purpose text-processing tool.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scngo/scn"
)

func main() {
	os.Exit(doMain(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// doMain is separated from main for the purpose of unit testing.
func doMain(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	flags := flag.NewFlagSet("scnfmt", flag.ContinueOnError)
	flags.SetOutput(stderr)

	format := flags.String("format", "", "format string applied to every input line; defaults to whitespace-separated fields (scn.ScanAll)")
	sep := flags.String("sep", " | ", "separator printed between scanned fields")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	scanner := bufio.NewScanner(stdin)
	lineNo := 0
	status := 0
	for scanner.Scan() {
		lineNo++
		fields, err := scanLine(scanner.Text(), *format)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", lineNo, err)
			status = 1
			continue
		}
		fmt.Fprintln(stdout, strings.Join(fields, *sep))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "reading input: %v\n", err)
		return 1
	}
	return status
}

// scanLine scans one line of input according to format. An empty format
// falls back to scn.ScanAll, splitting the line into whitespace-separated
// string fields; a non-empty format must place one "{}" per field scnfmt
// should report, since the CLI has no way to know each placeholder's type
// ahead of time and treats every destination as a string.
func scanLine(line, format string) ([]string, error) {
	if format == "" {
		return scanAllFields(line)
	}
	return scanFormattedFields(line, format)
}

func scanAllFields(line string) ([]string, error) {
	n := len(strings.Fields(line))
	if n == 0 {
		return nil, nil
	}
	dests := make([]string, n)
	ptrs := make([]any, n)
	for i := range dests {
		ptrs[i] = &dests[i]
	}
	if _, _, err := scn.ScanAll(line, ptrs...); err != nil {
		return nil, err
	}
	return dests, nil
}

func scanFormattedFields(line, format string) ([]string, error) {
	n := strings.Count(format, "{}")
	if n == 0 {
		return nil, fmt.Errorf("format %q has no \"{}\" placeholders", format)
	}
	dests := make([]string, n)
	ptrs := make([]any, n)
	for i := range dests {
		ptrs[i] = &dests[i]
	}
	if _, err := scn.Scan(line, format, ptrs...); err != nil {
		return nil, err
	}
	return dests, nil
}
