package hotreload

import (
	"go.uber.org/zap"
)

// Source reports changed file names. *Watcher implements it.
type Source interface {
	Pending() []string
}

// Target is something rebuilt when one of its files changes.
type Target struct {
	Name    string
	Files   []string
	Rebuild func() error
}

// Reloader maps changed files to targets and rebuilds them.
type Reloader struct {
	source  Source
	targets []Target
	log     *zap.Logger
}

// NewReloader creates a reloader fed by source.
func NewReloader(source Source, log *zap.Logger) *Reloader {
	return &Reloader{source: source, log: log}
}

// Add registers a target.
func (r *Reloader) Add(t Target) {
	r.targets = append(r.targets, t)
}

// Apply rebuilds every target touched by pending changes, each at most
// once, in registration order. A failed rebuild is logged; the target keeps
// whatever it had before. Apply returns the names of targets rebuilt
// successfully.
func (r *Reloader) Apply() []string {
	changed := r.source.Pending()
	if len(changed) == 0 {
		return nil
	}

	var rebuilt []string
	for _, t := range r.Affected(changed) {
		if err := t.Rebuild(); err != nil {
			r.log.Warn("reload failed, keeping previous version",
				zap.String("target", t.Name),
				zap.Error(err))
			continue
		}
		r.log.Info("reloaded", zap.String("target", t.Name))
		rebuilt = append(rebuilt, t.Name)
	}
	return rebuilt
}

// Affected returns the targets that use any of the changed files.
func (r *Reloader) Affected(changed []string) []Target {
	set := make(map[string]bool, len(changed))
	for _, name := range changed {
		set[name] = true
	}

	var out []Target
	for _, t := range r.targets {
		for _, f := range t.Files {
			if set[f] {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
