package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/flycam/engine/core"
)

// Watcher reloads the configuration file whenever it is written or replaced
// and publishes the result on Updates. Only the latest configuration is kept
// until it is received.
type Watcher struct {
	path string

	mutex sync.Mutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	updates  chan *Config
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("config: watch %s: %w", abs, err)
	}

	return &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		updates:  make(chan *Config, 1),
		done:     make(chan struct{}),
	}, nil
}

// Start runs the watch loop in its own goroutine.
func (w *Watcher) Start() {
	go w.start()
}

// Updates delivers reloaded configurations. It is closed by Close.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	return nil
}

func (w *Watcher) start() {
	for {
		select {

		case e := <-w.fsnotify.Events:
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case e := <-w.fsnotify.Errors:
			if e != nil {
				core.LogError("%s", e)
			}

		case <-w.done:
			w.fsnotify.Close()
			close(w.updates)
			return
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		// Half written files fail to parse; the next write event retries.
		core.LogWarn("config reload skipped: %s", err)
		return
	}
	core.LogDebug("config reloaded from %s", w.path)

	select {
	case w.updates <- c:
	default:
		// Drop the configuration nobody picked up yet.
		select {
		case <-w.updates:
		default:
		}
		w.updates <- c
	}
}
