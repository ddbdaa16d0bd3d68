package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"reminder-extractor/internal/inbox"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

func parseOutputFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", formatTable:
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("%w: --format must be json, yaml or table, got %q", errUsage, s)
}

// printValue writes v as JSON or YAML. Table output is handled by the callers.
func printValue(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type tasksDoc struct {
	Tasks []model.Task `json:"tasks" yaml:"tasks"`
}

func printTasks(w io.Writer, format string, tasks []model.Task) error {
	if format != formatTable {
		return printValue(w, format, tasksDoc{Tasks: tasks})
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tDUE\tAMOUNT\tREPEAT\tKIND")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.Title, due(t), amount(t.Amount), dash(string(t.RepeatInterval)), kind(t))
	}
	return tw.Flush()
}

func printCommit(w io.Writer, format string, out reminder.CommitOutput) error {
	if format != formatTable {
		return printValue(w, format, out)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDUE\tAMOUNT")
	for _, c := range out.Created {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Task.Title, due(c.Task), amount(c.Task.Amount))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	created := ""
	if out.ListCreated {
		created = " (new list)"
	}
	fmt.Fprintf(w, "\n%d reminder(s) added to %q%s\n", len(out.Created), out.List, created)
	if out.Pending > 0 {
		fmt.Fprintf(w, "%d task(s) not added\n", out.Pending)
	}
	return nil
}

func printScan(w io.Writer, format string, res inbox.ScanResult) error {
	if format != formatTable {
		type fileDoc struct {
			Name    string `json:"name" yaml:"name"`
			Tasks   int    `json:"tasks" yaml:"tasks"`
			Created int    `json:"created" yaml:"created"`
			MovedTo string `json:"movedTo,omitempty" yaml:"movedTo,omitempty"`
			Error   string `json:"error,omitempty" yaml:"error,omitempty"`
		}
		doc := struct {
			Files     []fileDoc `json:"files" yaml:"files"`
			Processed int       `json:"processed" yaml:"processed"`
			Failed    int       `json:"failed" yaml:"failed"`
			Skipped   int       `json:"skipped" yaml:"skipped"`
		}{Processed: res.Processed, Failed: res.Failed, Skipped: res.Skipped}
		for _, f := range res.Files {
			fd := fileDoc{Name: f.Name, Tasks: f.Tasks, Created: f.Created, MovedTo: f.MovedTo}
			if f.Err != nil {
				fd.Error = f.Err.Error()
			}
			doc.Files = append(doc.Files, fd)
		}
		return printValue(w, format, doc)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tTASKS\tCREATED\tSTATUS")
	for _, f := range res.Files {
		status := "ok"
		if f.Err != nil {
			status = f.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", f.Name, f.Tasks, f.Created, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nprocessed=%d failed=%d skipped=%d\n", res.Processed, res.Failed, res.Skipped)
	return nil
}

func due(t model.Task) string {
	switch {
	case t.DueDate == "":
		return "-"
	case t.DueTime == "":
		return t.DueDate
	}
	return t.DueDate + " " + t.DueTime
}

func amount(a *float64) string {
	if a == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *a)
}

func kind(t model.Task) string {
	switch {
	case t.IsInvoice && t.IsBill:
		return "bill, invoice"
	case t.IsInvoice:
		return "invoice"
	case t.IsBill:
		return "bill"
	}
	return "-"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
