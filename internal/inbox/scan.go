package inbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"reminder-extractor/internal/extraction"
	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder"
)

var documentExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ScanOnce processes the documents in Dir in name order. Failures of single
// documents are recorded in the result; only folder errors are returned.
func (w *implWatcher) ScanOnce(ctx context.Context) (ScanResult, error) {
	var result ScanResult

	for _, sub := range []string{ProcessedDir, FailedDir} {
		if err := os.MkdirAll(filepath.Join(w.cfg.Dir, sub), 0o755); err != nil {
			return result, fmt.Errorf("inbox: %w", err)
		}
	}

	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return result, fmt.Errorf("inbox: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	now := w.cfg.Now()
	for _, e := range entries {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !documentExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Size() == 0 || now.Sub(info.ModTime()) < w.cfg.MinAge {
			result.Skipped++
			continue
		}

		fr := w.processFile(ctx, name)
		if fr.Err != nil {
			result.Failed++
		} else {
			result.Processed++
		}
		result.Files = append(result.Files, fr)
	}

	if len(result.Files) > 0 {
		w.l.Infof(ctx, "inbox.ScanOnce: dir=%s processed=%d failed=%d skipped=%d",
			w.cfg.Dir, result.Processed, result.Failed, result.Skipped)
	}
	return result, nil
}

func (w *implWatcher) processFile(ctx context.Context, name string) FileResult {
	fr := FileResult{Name: name}
	path := filepath.Join(w.cfg.Dir, name)

	tasks, err := w.extract(ctx, path)
	if err == nil {
		fr.Tasks = len(tasks)
		fr.Created, err = w.commit(ctx, tasks)
	}

	dest := ProcessedDir
	if err != nil {
		fr.Err = err
		dest = FailedDir
		w.l.Warnf(ctx, "inbox.processFile: file=%s err=%v", name, err)
	}

	moved, mvErr := w.move(path, dest)
	if mvErr != nil {
		w.l.Errorf(ctx, "inbox.processFile: move file=%s dest=%s err=%v", name, dest, mvErr)
		if fr.Err == nil {
			fr.Err = mvErr
		}
		return fr
	}
	fr.MovedTo = moved

	if fr.Err == nil {
		if err := writeSidecar(moved+tasksSuffix, tasks); err != nil {
			w.l.Warnf(ctx, "inbox.processFile: sidecar file=%s err=%v", name, err)
		}
	}
	return fr
}

func (w *implWatcher) extract(ctx context.Context, path string) ([]model.Task, error) {
	out, err := w.extractor.ExtractDocument(ctx, extraction.ExtractDocumentInput{Path: path, Model: w.cfg.Model})
	if err != nil {
		return nil, err
	}
	if len(out.Tasks) == 0 {
		return nil, ErrNoTasks
	}
	return out.Tasks, nil
}

func (w *implWatcher) commit(ctx context.Context, tasks []model.Task) (int, error) {
	if w.committer == nil {
		return 0, nil
	}
	out, err := w.committer.Commit(ctx, reminder.CommitInput{
		Tasks:    tasks,
		ListName: w.cfg.ListName,
		NoReveal: true,
	})
	return len(out.Created), err
}

// move renames path into dir under Dir, adding a timestamp when the name is taken.
func (w *implWatcher) move(path, dir string) (string, error) {
	base := filepath.Base(path)
	dest := filepath.Join(w.cfg.Dir, dir, base)
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(base)
		stamp := w.cfg.Now().Format("20060102-150405")
		dest = filepath.Join(w.cfg.Dir, dir, strings.TrimSuffix(base, ext)+"-"+stamp+ext)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.Rename(path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

type sidecar struct {
	Extracted time.Time    `yaml:"extracted"`
	Tasks     []model.Task `yaml:"tasks"`
}

func writeSidecar(path string, tasks []model.Task) error {
	data, err := yaml.Marshal(sidecar{Extracted: time.Now().UTC().Truncate(time.Second), Tasks: tasks})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
