package main

import (
	"context"
	"fmt"

	"reminder-extractor/config"
	"reminder-extractor/internal/extraction"
	extractionUC "reminder-extractor/internal/extraction/usecase"
	"reminder-extractor/internal/inbox"
	"reminder-extractor/internal/reminder"
	"reminder-extractor/internal/reminder/repository/appledb"
	"reminder-extractor/internal/reminder/repository/applescript"
	gcalRepo "reminder-extractor/internal/reminder/repository/gcalendar"
	gtasksRepo "reminder-extractor/internal/reminder/repository/gtasks"
	reminderUC "reminder-extractor/internal/reminder/usecase"
	"reminder-extractor/pkg/command"
	"reminder-extractor/pkg/datemath"
	"reminder-extractor/pkg/doctext"
	"reminder-extractor/pkg/gcalendar"
	"reminder-extractor/pkg/googleauth"
	"reminder-extractor/pkg/gtasks"
	"reminder-extractor/pkg/llm"
	"reminder-extractor/pkg/log"
	"reminder-extractor/pkg/metrics"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg      *config.Config
	l        log.Logger
	metrics  *metrics.Metrics
	llm      llm.Client
	dateMath *datemath.Parser

	extraction extraction.UseCase
	reminders  reminder.UseCase // nil when reminders.backend is none
}

func newApp(ctx context.Context, cfg *config.Config, l log.Logger) (*app, error) {
	a := &app{cfg: cfg, l: l, metrics: metrics.New()}

	dm, err := datemath.NewParser(cfg.Reminders.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Reminders.Timezone, err)
		dm, _ = datemath.NewParser("")
	}
	a.dateMath = dm

	client, err := llm.New(llm.Config{
		APIURL:      cfg.LLM.APIURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.DefaultModel,
		Temperature: cfg.LLM.ParsedTemperature(),
		MaxTokens:   cfg.LLM.ParsedMaxTokens(),
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("llm client: %w", err)
	}
	a.llm = llm.WithBreaker(client, cfg.LLM.APIURL, llm.BreakerConfig{
		Enabled:      cfg.LLM.Breaker.Enabled,
		MinRequests:  cfg.LLM.Breaker.MinRequests,
		FailureRatio: cfg.LLM.Breaker.FailureRatio,
		OpenTimeout:  cfg.LLM.Breaker.OpenTimeout,
		OnStateChange: func(from, to string) {
			l.Warnf(context.Background(), "LLM circuit breaker: endpoint=%s %s -> %s", cfg.LLM.APIURL, from, to)
			a.metrics.SetBreakerState(cfg.LLM.APIURL, to)
		},
	})

	runner := command.NewExecRunner(l)
	extractor := doctext.New(doctext.Config{
		Pdftotext: cfg.Extractor.Pdftotext,
		Pdftoppm:  cfg.Extractor.Pdftoppm,
		Tesseract: cfg.Extractor.Tesseract,
		Lang:      cfg.Extractor.OCRLang,
		DPI:       cfg.Extractor.OCRDPI,
		MaxPages:  cfg.Extractor.MaxPages,
		MaxChars:  cfg.Extractor.MaxChars,
		Timeout:   cfg.Extractor.Timeout,
	}, runner, l)

	a.extraction = extractionUC.New(l, a.llm, extractor, dm, a.metrics, extractionUC.Config{
		ExtractionTemperature: cfg.LLM.ExtractionTemperature,
		ExtractionMaxTokens:   cfg.LLM.ExtractionMaxTokens,
	})

	store, lister, err := a.reminderBackend(ctx, runner)
	if err != nil {
		return nil, err
	}
	if store != nil {
		a.reminders = reminderUC.New(l, store, lister, dm, a.metrics, reminderUC.Config{
			Backend:     cfg.Reminders.Backend,
			DefaultList: cfg.Reminders.ListName,
		})
	}
	return a, nil
}

// reminderBackend builds the configured store and the lister used by exports.
func (a *app) reminderBackend(ctx context.Context, runner command.Runner) (reminder.Store, reminder.DueLister, error) {
	loc := a.dateMath.Location()

	var store reminder.Store
	var lister reminder.DueLister

	switch a.cfg.Reminders.Backend {
	case reminder.BackendAppleScript:
		repo := applescript.New(a.l, runner, applescript.Config{Binary: a.cfg.Reminders.Osascript, Location: loc})
		store, lister = repo, repo

	case reminder.BackendGoogleTasks:
		ts, err := googleauth.TokenSourceFromFile(ctx, a.cfg.Google.CredentialsPath, a.cfg.Google.TokenPath, googleauth.Scopes...)
		if err != nil {
			return nil, nil, fmt.Errorf("google tasks: %w", err)
		}
		client, err := gtasks.NewClient(ctx, ts)
		if err != nil {
			return nil, nil, fmt.Errorf("google tasks: %w", err)
		}
		repo := gtasksRepo.New(a.l, client, loc)
		store, lister = repo, repo

	case reminder.BackendCalendar:
		ts, err := googleauth.TokenSourceFromFile(ctx, a.cfg.Google.CredentialsPath, a.cfg.Google.TokenPath, googleauth.Scopes...)
		if err != nil {
			return nil, nil, fmt.Errorf("google calendar: %w", err)
		}
		client, err := gcalendar.NewClient(ctx, ts)
		if err != nil {
			return nil, nil, fmt.Errorf("google calendar: %w", err)
		}
		repo := gcalRepo.New(a.l, client, gcalRepo.Config{Location: loc, EventDuration: a.cfg.Reminders.EventDuration})
		store, lister = repo, repo

	case "none":
		a.l.Info(ctx, "Reminder backend disabled, extraction only")
		return nil, nil, nil
	}

	if a.cfg.Export.Source == reminder.BackendAppleDB {
		lister = appledb.New(a.l, appledb.Config{Glob: a.cfg.Export.AppleDBGlob, Location: loc})
	}
	return store, lister, nil
}

func (a *app) newWatcher(listName string) (inbox.Watcher, error) {
	if listName == "" {
		listName = a.cfg.Inbox.ListName
	}
	var committer inbox.Committer
	if a.reminders != nil {
		committer = a.reminders
	}
	return inbox.New(a.l, a.extraction, committer, inbox.Config{
		Dir:      a.cfg.Inbox.Dir,
		Interval: a.cfg.Inbox.Interval,
		ListName: listName,
	})
}

// ready reports whether the model endpoint answers.
func (a *app) ready(ctx context.Context) error {
	_, err := a.llm.Models(ctx)
	return err
}
