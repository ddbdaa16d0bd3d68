package appledb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"reminder-extractor/internal/model"
	"reminder-extractor/internal/reminder/repository"
)

// ListDue queries every store matching the glob. An empty list matches all
// lists. Legacy stores carry no list names and are returned unfiltered.
func (r *implRepository) ListDue(ctx context.Context, list string, from, to time.Time) ([]model.Reminder, error) {
	paths, err := r.stores()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no Reminders database matches %s", repository.ErrFailedToList, r.cfg.Glob)
	}

	var out []model.Reminder
	for _, p := range paths {
		rems, err := r.queryStore(ctx, p, list, from, to)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", repository.ErrFailedToList, filepath.Base(p), err)
		}
		out = append(out, rems...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Due.Before(*out[j].Due) })

	r.l.Debugf(ctx, "appledb.ListDue: stores=%d list=%q count=%d", len(paths), list, len(out))
	return out, nil
}

func (r *implRepository) stores() ([]string, error) {
	pattern := r.cfg.Glob
	if strings.HasPrefix(pattern, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		pattern = filepath.Join(home, pattern[2:])
	}
	return filepath.Glob(pattern)
}

func (r *implRepository) queryStore(ctx context.Context, path, list string, from, to time.Time) ([]model.Reminder, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	modern, err := tableExists(ctx, db, "ZREMCDREMINDER")
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if modern {
		rows, err = db.QueryContext(ctx, listDueQuery, toCoreData(from), toCoreData(to), list, list)
	} else {
		r.l.Warnf(ctx, "appledb.ListDue: %s uses the legacy schema, list filter ignored", filepath.Base(path))
		rows, err = db.QueryContext(ctx, legacyListDueQuery, toCoreData(from), toCoreData(to))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reminder
	for rows.Next() {
		var (
			pk          int64
			title, note sql.NullString
			dueDate     float64
			listName    sql.NullString
		)
		if err := rows.Scan(&pk, &title, &note, &dueDate, &listName); err != nil {
			return nil, err
		}
		due := fromCoreData(dueDate, r.cfg.Location)
		out = append(out, model.Reminder{
			ID:    strconv.FormatInt(pk, 10),
			Title: title.String,
			Notes: note.String,
			List:  listName.String,
			Due:   &due,
		})
	}
	return out, rows.Err()
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, tableExistsQuery, name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
