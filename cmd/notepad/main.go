// Package main is the entry point for the notepad command line tool.
//
// notepad applies one editing command to each named file and saves it:
//
//	notepad sort -lang hr names.txt
//	notepad unique -o deduped.txt log.txt
//	notepad stats *.md
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/notepad/internal/app"
	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/transform"
	"github.com/dshills/notepad/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	language    string
	logLevel    string
	output      string
	descending  bool
	showVersion bool
	command     string
	files       []string
}

var commands = []string{"upper", "lower", "invert", "sort", "unique", "stats"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "notepad %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	fsys := vfs.NewOS()
	settings, err := app.LoadSettings(fsys, opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.language != "" {
		settings.Language = opts.language
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}

	logCfg := app.DefaultLoggerConfig()
	logCfg.Output = stderr
	logger := app.NewLogger(logCfg)

	editor, err := app.NewEditor(
		app.WithFS(fsys),
		app.WithLogger(logger),
		app.WithSettings(settings),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	status := 0
	for _, path := range opts.files {
		if err := process(editor, opts, path, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			status = 1
		}
	}
	return status
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("notepad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to settings file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to settings file (shorthand)")
	fs.StringVar(&opts.language, "lang", "", "Language for sorting and case mapping (e.g. hr, en)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.output, "o", "", "Write the result here instead of overwriting the input")
	fs.BoolVar(&opts.descending, "desc", false, "Sort in descending order")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "notepad - batch text transforms\n\n")
		fmt.Fprintf(stderr, "Usage: notepad [options] <command> <files...>\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  upper, lower, invert   Change the case of the whole file\n")
		fmt.Fprintf(stderr, "  sort                   Sort lines using the language's collation\n")
		fmt.Fprintf(stderr, "  unique                 Remove repeated lines, keeping the first\n")
		fmt.Fprintf(stderr, "  stats                  Print character and line counts\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return opts, errors.New("a command and at least one file are required")
	}
	opts.command, opts.files = rest[0], rest[1:]

	if !isCommand(opts.command) {
		return opts, fmt.Errorf("unknown command %q", opts.command)
	}
	if opts.logLevel != "" && !isLogLevel(opts.logLevel) {
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}
	if opts.output != "" && len(opts.files) > 1 {
		return opts, errors.New("-o needs exactly one input file")
	}
	return opts, nil
}

func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

func isLogLevel(level string) bool {
	for _, l := range config.LogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// process opens path, applies the command to the whole document and saves
// it. The document is closed afterwards.
func process(editor *app.Editor, opts options, path string, stdout io.Writer) error {
	doc, err := editor.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = editor.Close(doc, true) }()

	if err := editor.SelectAll(); err != nil {
		return err
	}

	switch opts.command {
	case "stats":
		stats, err := editor.Stats()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d characters, %d non-blank characters, %d lines, %d graphemes, %d bytes\n",
			path, stats.Characters, stats.NonBlank, stats.Lines, stats.Graphemes, stats.Bytes)
		return nil
	case "sort":
		err = editor.SortLines(opts.descending)
	case "unique":
		err = editor.UniqueLines()
	default:
		mode, _ := transform.ParseCaseMode(opts.command)
		err = editor.ChangeCase(mode)
	}
	if err != nil {
		return err
	}

	if opts.output == "" && !doc.IsModified() {
		return nil
	}
	return editor.Save(opts.output)
}
