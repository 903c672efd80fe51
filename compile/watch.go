package compile

import (
	"context"
	"os"
	"time"
)

// Watcher polls the files returned by List and recompiles the ones whose
// modification time changed since the last scan.
type Watcher struct {
	Driver *Driver

	// List returns the current set of source files. It is called on every
	// scan so new files are picked up.
	List func() ([]string, error)

	// Report receives the results of every scan that compiled something.
	Report func(results []*Result, err error)

	PollInterval time.Duration

	modTimes map[string]time.Time
}

// Watch scans immediately and then every PollInterval until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	interval := w.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Scan(ctx)
		}
	}
}

// Scan compiles every file that is new or changed and forgets files that
// disappeared. It returns the files it compiled.
func (w *Watcher) Scan(ctx context.Context) []string {
	if w.modTimes == nil {
		w.modTimes = make(map[string]time.Time)
	}
	files, err := w.List()
	if err != nil {
		log.Errorf("listing sources: %s", err)
		return nil
	}

	current := make(map[string]bool, len(files))
	var changed []string
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		current[path] = true
		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			changed = append(changed, path)
		}
	}
	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
			log.Debugf("%s removed", path)
		}
	}

	if len(changed) == 0 {
		return nil
	}
	results, err := w.Driver.Run(ctx, changed)
	if w.Report != nil {
		w.Report(results, err)
	}
	return changed
}
