package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch generates the code once and then regenerates it whenever a Go file
// under the working directory changes. Rapid changes are debounced by the
// configured duration. Errors are printed but do not stop watching.
func (r *runner) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchDirs(watcher, r.wd); err != nil {
		return err
	}

	if err := r.run(ctx); err != nil {
		r.printErr(err)
	}

	debounce := time.Duration(r.cfg.Watch.Debounce)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	fmt.Println("Watching:", r.wd)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := watchDirs(watcher, event.Name); err != nil {
						slog.Warn("failed to watch new directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}

			if !r.affects(event) {
				continue
			}
			slog.Debug("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "err", err)

		case <-timer.C:
			if err := r.run(ctx); err != nil {
				r.printErr(err)
			}
		}
	}
}

// affects reports whether the event may change the generated code. Writes of
// the output files themselves are ignored.
func (r *runner) affects(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if filepath.Ext(event.Name) != ".go" {
		return false
	}
	return filepath.Base(event.Name) != r.cfg.Output
}

// watchDirs adds root and its subdirectories to the watcher. Directories the
// go command ignores are skipped.
func watchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		slog.Debug("watching", "dir", path)
		return watcher.Add(path)
	})
}

func skipDir(name string) bool {
	switch {
	case strings.HasPrefix(name, "."), strings.HasPrefix(name, "_"):
		return true
	case name == "testdata", name == "vendor":
		return true
	}
	return false
}
