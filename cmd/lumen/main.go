/*
Command lumen parses and type-checks lumen source files.

Invoke it like so:

	lumen file.lum...

It prints the inferred type of each file's "main" function, or the first
parse/check error. With -watch, it re-runs the same pipeline whenever a
.lum file under the given directory changes.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"

	"github.com/lumen-lang/lumen"
	"github.com/lumen-lang/lumen/internal/trace"
)

var (
	watchDir = flag.String("watch", "", "directory to watch for .lum file changes")
	langTag  = flag.String("lang", "en", "BCP-47 tag used to localize the parse driver's diagnostics")
	verbose  = flag.Bool("v", false, "trace parse and check passes to stderr")
)

// catalog holds the two fixed parse-failure strings from spec.md §6/§7,
// keyed by the BCP-47 tags this build ships. English is the only bundled
// catalog; -lang proves the wiring without inventing a translation
// feature (SPEC_FULL.md §4.9).
var catalog = map[language.Tag]map[string]string{
	language.English: {
		lumen.ErrCouldNotParse.Error():      "Could not parse!",
		lumen.ErrCouldNotParseWhole.Error(): "Could not parse the whole input!",
	},
}

var matcher = language.NewMatcher([]language.Tag{language.English})

func localize(tag language.Tag, msg string) string {
	resolved, _, _ := matcher.Match(tag)
	if msgs, ok := catalog[resolved]; ok {
		if out, ok := msgs[msg]; ok {
			return out
		}
	}
	return msg
}

func main() {
	flag.Parse()

	tag, err := language.Parse(*langTag)
	if err != nil {
		log.Fatalf("lumen: invalid -lang %q: %v", *langTag, err)
	}

	var logger trace.Logger = trace.NoOp
	if *verbose {
		logger = trace.Gou{}
	}

	if *watchDir != "" {
		runWatch(*watchDir, tag, logger)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lumen [-watch DIR] [-lang TAG] FILE...")
		os.Exit(2)
	}

	status := 0
	for _, file := range flag.Args() {
		if err := runFile(file, tag, logger); err != nil {
			status = 1
		}
	}
	os.Exit(status)
}

func runFile(path string, tag language.Tag, logger trace.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return err
	}

	opts := lumen.Options{File: path, Logger: logger}
	program, err := lumen.Parse(string(content), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, localize(tag, err.Error()))
		return err
	}

	ns, err := lumen.Check(program, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return err
	}

	mainT, _ := lumen.TypeOf(ns, "main")
	fmt.Printf("%s: main: %s\n", path, mainT.Name())
	return nil
}

func runWatch(dir string, tag language.Tag, logger trace.Logger) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("lumen: %v", err)
	}
	defer watcher.Close()

	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	}); err != nil {
		log.Fatalf("lumen: %v", err)
	}

	fmt.Printf("lumen: watching %s for .lum changes\n", dir)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".lum") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			runFile(event.Name, tag, logger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "lumen: watch error: %v\n", err)
		}
	}
}
