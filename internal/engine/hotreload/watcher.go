// Package hotreload watches shader source files and rebuilds the programs
// that use them. The fsnotify goroutine only reports file names; rebuilds
// run on the caller's goroutine when it calls Apply, so GL calls stay on the
// render thread.
package hotreload

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

const pendingBuffer = 32

// Watcher reports changes to files in one directory.
type Watcher struct {
	dir     string
	fs      *fsnotify.Watcher
	changed chan string
	done    chan struct{}
	wg      sync.WaitGroup
	log     *zap.Logger
}

// NewWatcher starts watching dir. The directory is watched rather than the
// files so editors that save by rename are still seen.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		fs:      fsw,
		changed: make(chan string, pendingBuffer),
		done:    make(chan struct{}),
		log:     logger.Named("hotreload"),
	}
	w.wg.Add(1)
	go w.run()

	w.log.Info("watching shader sources", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changed <- filepath.Base(e.Name):
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Pending returns the base names of files changed since the last call,
// without duplicates. It never blocks.
func (w *Watcher) Pending() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changed:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops the watcher goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
