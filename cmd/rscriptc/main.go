// Command rscriptc is a thin driver over the scan -> parse -> bind ->
// check pipeline: it reads one or more source files, compiles them
// together as a Program, and prints diagnostics to stderr.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/funvibe/rscript/internal/config"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/pipeline"
	"github.com/funvibe/rscript/internal/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	verbose := false
	var paths []string
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			verbose = true
			continue
		}
		paths = append(paths, a)
	}

	if len(paths) == 0 {
		fmt.Fprintf(stderr, "usage: %s [-v] <file.ts> [file2.ts ...]\n", os.Args[0])
		return 2
	}

	sources := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "rscriptc: %s\n", err)
			return 2
		}
		sources[path] = string(data)
	}

	start := time.Now()
	prog, err := pipeline.CompileProgram(sources, config.Default())
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(stderr, "rscriptc: %s\n", err)
		return 2
	}

	lineMaps := make(map[string]*text.LineMap, len(sources))
	for file, src := range sources {
		lineMaps[file] = text.NewLineMap(src)
	}

	printer := diagnostic.NewPrinter(stderr).WithLineMap(func(file string, pos uint32) (int, int) {
		if lm, ok := lineMaps[file]; ok {
			return lm.LineAndColumn(text.Pos(pos))
		}
		return 0, 0
	})

	names := make([]string, 0, len(prog.Contexts))
	for name := range prog.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	hadErrors := false
	totalBytes := 0
	for _, name := range names {
		ctx := prog.Contexts[name]
		totalBytes += len(ctx.Source)
		ctx.Diags.Sort()
		printer.Print(ctx.Diags)
		if ctx.Diags.HasErrors() {
			hadErrors = true
		}
	}

	if verbose {
		fmt.Fprintf(stdout, "%s scanned in %s across %d file(s)\n",
			humanize.Bytes(uint64(totalBytes)), elapsed, len(sources))
		for _, name := range names {
			fmt.Fprintln(stdout, printer.Summary(prog.Contexts[name].Diags)+" — "+name)
		}
	}

	if hadErrors {
		return 1
	}
	return 0
}
