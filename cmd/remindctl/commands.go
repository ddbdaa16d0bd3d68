package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/extraction/prompt"
	"reminder-extractor/internal/httpserver"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/pkg/datemath"
)

var errNoBackend = errors.New("no reminder backend configured (reminders.backend is none)")

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

// parseFlags parses args and wraps flag errors as usage errors.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// fileFlags are shared by every command that creates reminders.
type fileFlags struct {
	list   string
	dryRun bool
	format string
}

func addFileFlags(fs *pflag.FlagSet, f *fileFlags) {
	fs.StringVarP(&f.list, "list", "l", "", "reminder list (default: reminders.list_name)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the tasks without creating reminders")
	fs.StringVarP(&f.format, "format", "f", formatTable, "output format: json, yaml or table")
}

// file commits tasks, or prints them on a dry run or without a backend.
func (a *app) file(ctx context.Context, w io.Writer, f fileFlags, tasks []model.Task) error {
	format, err := parseOutputFormat(f.format)
	if err != nil {
		return err
	}
	if f.dryRun || a.reminders == nil {
		if !f.dryRun {
			a.l.Warn(ctx, "No reminder backend configured, printing tasks only")
		}
		return printTasks(w, format, tasks)
	}

	out, err := a.reminders.Commit(ctx, reminder.CommitInput{Tasks: tasks, ListName: f.list})
	if len(out.Created) > 0 || err == nil {
		if pErr := printCommit(w, format, out); pErr != nil && err == nil {
			err = pErr
		}
	}
	return err
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (a *app) logWarnings(ctx context.Context, source string, warnings []string) {
	for _, w := range warnings {
		a.l.Warnf(ctx, "%s: %s", source, w)
	}
}

func runText(ctx context.Context, a *app, args []string, stdin io.Reader, stdout io.Writer) error {
	var ff fileFlags
	fs := newFlagSet("text")
	addFileFlags(fs, &ff)
	modelID := fs.StringP("model", "m", "", "model override")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	text, err := readInput(stdin, fs.Args())
	if err != nil {
		return err
	}
	out, err := a.extraction.ExtractText(ctx, extraction.ExtractTextInput{Text: text, Model: *modelID})
	if err != nil {
		return err
	}
	a.logWarnings(ctx, "text", out.Warnings)
	return a.file(ctx, stdout, ff, out.Tasks)
}

func runPDF(ctx context.Context, a *app, args []string, _ io.Reader, stdout io.Writer) error {
	var ff fileFlags
	fs := newFlagSet("pdf")
	addFileFlags(fs, &ff)
	modelID := fs.StringP("model", "m", "", "model override")
	cont := fs.Bool("continue", false, "keep going after a failing document")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: pdf needs at least one file", errUsage)
	}

	out, err := a.extraction.ExtractDocuments(ctx, extraction.ExtractDocumentsInput{
		Paths:       fs.Args(),
		Model:       *modelID,
		StopOnError: !*cont,
	})
	if err != nil {
		return err
	}

	var firstErr error
	for _, r := range out.Results {
		if r.Err != nil {
			a.l.Errorf(ctx, "pdf: file=%s err=%v", r.Path, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if r.Fallback {
			a.l.Infof(ctx, "pdf: file=%s read through local text extraction", r.Path)
		}
		a.logWarnings(ctx, r.Path, r.Warnings)
	}

	tasks := out.Tasks()
	if len(tasks) == 0 {
		return firstErr
	}
	if err := a.file(ctx, stdout, ff, tasks); err != nil {
		return err
	}
	if out.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed: %w", out.Failed, len(out.Results), firstErr)
	}
	return nil
}

func runProcess(ctx context.Context, a *app, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("process")
	action := fs.StringP("action", "a", extraction.ActionSummarize, "extract-tasks, summarize, custom or a quick action id")
	customPrompt := fs.StringP("prompt", "p", "", "instruction for the custom action")
	text := fs.StringP("text", "t", "", "input text (default: stdin when no files are given)")
	modelID := fs.StringP("model", "m", "", "model override")
	format := fs.StringP("format", "f", formatTable, "output format: json, yaml or table")
	listActions := fs.Bool("actions", false, "list the quick actions and exit")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	outFormat, err := parseOutputFormat(*format)
	if err != nil {
		return err
	}

	if *listActions {
		return printActions(stdout, outFormat)
	}

	in := extraction.ProcessInput{
		Action: *action,
		Prompt: *customPrompt,
		Model:  *modelID,
		Paths:  fs.Args(),
		Text:   *text,
	}
	if len(in.Paths) == 0 && in.Text == "" {
		if in.Text, err = readInput(stdin, nil); err != nil {
			return err
		}
	}

	out, err := a.extraction.Process(ctx, in)
	if err != nil {
		return err
	}
	for _, r := range out.Results {
		if r.Err != nil {
			a.l.Errorf(ctx, "process: file=%s err=%v", r.Path, r.Err)
		}
	}

	switch {
	case outFormat != formatTable:
		return printValue(stdout, outFormat, out)
	case out.Action == extraction.ActionExtractTasks:
		return printTasks(stdout, outFormat, out.Tasks)
	}
	_, err = fmt.Fprintln(stdout, strings.TrimRight(out.Text, "\n"))
	return err
}

func printActions(w io.Writer, format string) error {
	actions := prompt.Actions()
	if format != formatTable {
		return printValue(w, format, actions)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE")
	fmt.Fprintf(tw, "%s\t%s\n", extraction.ActionExtractTasks, "Extract tasks")
	fmt.Fprintf(tw, "%s\t%s\n", extraction.ActionCustom, "Custom prompt (--prompt)")
	for _, act := range actions {
		fmt.Fprintf(tw, "%s\t%s\n", act.ID, act.Title)
	}
	return tw.Flush()
}

func runImport(ctx context.Context, a *app, args []string, stdin io.Reader, stdout io.Writer) error {
	var ff fileFlags
	fs := newFlagSet("import")
	addFileFlags(fs, &ff)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: import takes one file", errUsage)
	}

	name := "-"
	if fs.NArg() == 1 {
		name = fs.Arg(0)
	}
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	tasks, err := decodeTaskFile(data, name)
	if err != nil {
		return err
	}
	return a.file(ctx, stdout, ff, tasks)
}

func runModels(ctx context.Context, a *app, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("models")
	format := fs.StringP("format", "f", formatTable, "output format: json, yaml or table")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	outFormat, err := parseOutputFormat(*format)
	if err != nil {
		return err
	}

	models, err := a.extraction.Models(ctx)
	if err != nil {
		return err
	}
	if outFormat != formatTable {
		return printValue(stdout, outFormat, map[string][]string{"models": models})
	}
	def := a.llm.Model()
	for _, m := range models {
		marker := ""
		if m == def {
			marker = " (default)"
		}
		fmt.Fprintln(stdout, m+marker)
	}
	return nil
}

func runExport(ctx context.Context, a *app, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("export")
	list := fs.StringP("list", "l", "", "reminder list (default: reminders.list_name)")
	from := fs.String("from", "", "start date YYYY-MM-DD (default today)")
	to := fs.String("to", "", "end date YYYY-MM-DD, exclusive")
	days := fs.IntP("days", "d", a.cfg.Export.Days, "window length when --to is not set")
	fileType := fs.StringP("type", "t", "", "csv or xlsx (default from --output, else csv)")
	layout := fs.String("layout", "", "split (expenses and income) or ledger")
	output := fs.StringP("output", "o", "", "output file (default stdout)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if a.reminders == nil {
		return errNoBackend
	}

	loc := a.dateMath.Location()
	in := reminder.ExportInput{ListName: *list, Days: *days, Layout: *layout, Format: *fileType}
	var err error
	if in.From, err = parseDay(*from, loc); err != nil {
		return err
	}
	if in.To, err = parseDay(*to, loc); err != nil {
		return err
	}
	if in.Format == "" && *output != "" {
		in.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(*output)), ".")
	}

	w := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	in.Output = w

	out, err := a.reminders.Export(ctx, in)
	if err != nil {
		if *output != "" {
			_ = os.Remove(*output)
		}
		return err
	}
	a.l.Infof(ctx, "export: list=%q count=%d expenses=%d income=%d net=%.2f",
		out.List, out.Count, out.Expenses, out.Income, out.Net)
	return nil
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(datemath.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", errUsage, s)
	}
	return t, nil
}

func runServe(ctx context.Context, a *app, args []string, _ io.Reader, _ io.Writer) error {
	fs := newFlagSet("serve")
	port := fs.IntP("port", "p", a.cfg.HTTPServer.Port, "listen port")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	srv, err := httpserver.New(a.l, httpserver.Config{
		Logger:          a.l,
		Port:            *port,
		Mode:            a.cfg.HTTPServer.Mode,
		Environment:     a.cfg.Environment.Name,
		Metrics:         a.metrics,
		RateLimitPerMin: a.cfg.RateLimit.PerMin,
		MaxUploadBytes:  int64(a.cfg.HTTPServer.MaxUploadMB) << 20,
		Location:        a.dateMath.Location(),
		Ready:           a.ready,
		ExtractionUC:    a.extraction,
		ReminderUC:      a.reminders,
	})
	if err != nil {
		return err
	}

	if a.cfg.Inbox.Enabled {
		w, err := a.newWatcher("")
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := w.Stop(); err != nil {
				a.l.Errorf(ctx, "serve: stop inbox watcher: %v", err)
			}
		}()
	}

	a.l.Infof(ctx, "Starting reminder-extractor API: env=%s model=%s backend=%s",
		a.cfg.Environment.Name, a.llm.Model(), a.cfg.Reminders.Backend)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	a.l.Info(ctx, "Server stopped gracefully")
	return nil
}

func runWatch(ctx context.Context, a *app, args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("watch")
	list := fs.StringP("list", "l", "", "reminder list (default: inbox.list_name, then reminders.list_name)")
	dir := fs.String("dir", a.cfg.Inbox.Dir, "folder to watch")
	once := fs.Bool("once", false, "scan once and exit")
	format := fs.StringP("format", "f", formatTable, "output format for --once: json, yaml or table")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	a.cfg.Inbox.Dir = *dir

	w, err := a.newWatcher(*list)
	if err != nil {
		return err
	}

	if *once {
		outFormat, err := parseOutputFormat(*format)
		if err != nil {
			return err
		}
		res, err := w.ScanOnce(ctx)
		if err != nil {
			return err
		}
		if err := printScan(stdout, outFormat, res); err != nil {
			return err
		}
		if res.Failed > 0 {
			return fmt.Errorf("%d document(s) failed", res.Failed)
		}
		return nil
	}

	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	a.l.Info(ctx, "Stopping inbox watcher...")
	return w.Stop()
}
