package fblog

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher re-applies a TOML config file whenever it changes, so log
// levels can be adjusted on a running process. The parent directory is
// watched rather than the file itself: editors and config management tools
// usually replace the file, which would otherwise kill the watch.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	errors  chan error
	quit    chan struct{}
	done    chan struct{}
}

// WatchConfig applies the config at path and starts watching it. Reload
// failures (unreadable or invalid file) are reported on Errors and the
// previous configuration stays in effect.
func WatchConfig(path string) (*ConfigWatcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.Apply(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &ConfigWatcher{
		watcher: watcher,
		path:    path,
		errors:  make(chan error, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *ConfigWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.quit:
			return
		}
	}
}

func (w *ConfigWatcher) reload() {
	config, err := LoadConfig(w.path)
	if err != nil {
		w.report(err)
		return
	}
	if err := config.Apply(); err != nil {
		w.report(err)
	}
}

func (w *ConfigWatcher) report(err error) {
	select {
	case w.errors <- err:
	default:
		// Nobody is draining the channel; drop rather than block the loop.
	}
}

// Errors returns the channel carrying reload failures.
func (w *ConfigWatcher) Errors() <-chan error {
	return w.errors
}

// Stop halts the watch. The config applied last remains in effect.
func (w *ConfigWatcher) Stop() {
	close(w.quit)
	w.watcher.Close()
	<-w.done
}
