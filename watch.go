package fractals

import (
	"context"
	"fmt"
	"hash/crc64"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file whenever its content changes.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	crc     uint64
}

var crcTable = crc64.MakeTable(crc64.ECMA)

// NewConfigWatcher starts watching path. The directory is watched rather
// than the file so that editors which replace the file are seen.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	w := &ConfigWatcher{path: path, watcher: watcher}
	w.crc = fileChecksum(path)
	return w, nil
}

// Run calls onChange with each newly loaded config until ctx is done or
// the watcher is closed. Files that fail to load are reported and skipped.
func (w *ConfigWatcher) Run(ctx context.Context, onChange func(Config)) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.changed() {
				continue
			}
			cfg, err := LoadConfig(w.path)
			if err != nil {
				fmt.Printf("Keeping previous config: %v\n", err)
				continue
			}
			onChange(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watch error: %v\n", err)
		}
	}
}

// Close stops the watcher.
func (w *ConfigWatcher) Close() error {
	return w.watcher.Close()
}

func (w *ConfigWatcher) changed() bool {
	sum := fileChecksum(w.path)
	// 0 is a missing or empty file, usually a save in progress.
	if sum == 0 || sum == w.crc {
		return false
	}
	w.crc = sum
	return true
}

func fileChecksum(fname string) uint64 {
	data, err := os.ReadFile(fname)
	if err != nil {
		return 0
	}
	return crc64.Checksum(data, crcTable)
}
