package inbox

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	pkgLog "reminder-extractor/pkg/log"
)

type Config struct {
	Dir      string
	Interval time.Duration
	ListName string
	// MinAge skips files modified more recently, so half-copied files wait
	// for the next scan.
	MinAge time.Duration
	Model  string
	Now    func() time.Time
}

type implWatcher struct {
	l         pkgLog.Logger
	extractor Extractor
	committer Committer
	cfg       Config

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

// New creates a Watcher. A nil committer only writes the task sidecars.
func New(l pkgLog.Logger, extractor Extractor, committer Committer, cfg Config) (Watcher, error) {
	if cfg.Dir == "" {
		return nil, ErrNoDir
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.MinAge < 0 {
		cfg.MinAge = 0
	} else if cfg.MinAge == 0 {
		cfg.MinAge = DefaultMinAge
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implWatcher{
		l:         l,
		extractor: extractor,
		committer: committer,
		cfg:       cfg,
	}, nil
}
