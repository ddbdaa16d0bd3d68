// Command remindctl extracts tasks from text and documents with a local
// OpenAI-compatible model and files them as reminders.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/pflag"

	"reminder-extractor/config"
	_ "reminder-extractor/docs" // Swagger docs
	"reminder-extractor/pkg/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks bad invocations; main exits with exitUsage for them.
var errUsage = errors.New("usage")

type commandFunc func(ctx context.Context, a *app, args []string, stdin io.Reader, stdout io.Writer) error

type subcommand struct {
	summary string
	run     commandFunc
}

var commands = map[string]subcommand{
	"text":    {"extract tasks from text (arguments or stdin) and create reminders", runText},
	"pdf":     {"extract tasks from PDFs or images and create reminders", runPDF},
	"process": {"run an action (summarize, custom, quick actions) on text or documents", runProcess},
	"import":  {"create reminders from a JSON or YAML task file", runImport},
	"models":  {"list the models the endpoint serves", runModels},
	"export":  {"export due reminders as CSV or XLSX", runExport},
	"serve":   {"run the HTTP API", runServe},
	"watch":   {"watch the inbox folder and file every document dropped there", runWatch},
}

// @title       Reminder Extractor API
// @description Extracts tasks from text and documents with a local OpenAI-compatible model and files them as reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := pflag.NewFlagSet("remindctl", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	configPath := global.StringP("config", "c", "", "config file (default: search ./config, ., /etc/reminder-extractor/)")
	global.Usage = func() { usage(stderr, global) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if global.NArg() == 0 {
		usage(stderr, global)
		return exitUsage
	}

	name := global.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "remindctl: unknown command %q\n\n", name)
		usage(stderr, global)
		return exitUsage
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load config:", err)
		return exitError
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, "remindctl:", err)
		return exitError
	}

	if err := cmd.run(ctx, a, global.Args()[1:], stdin, stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "remindctl %s: %v\n", name, err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func usage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: remindctl [--config FILE] <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-8s %s\n", n, commands[n].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fmt.Fprint(w, global.FlagUsages())
}
