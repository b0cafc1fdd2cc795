// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/net/context"
)

// Watch watches the report files named by c and calls onChange each
// time one is written or created. It blocks until ctx is canceled or
// the watcher fails.
func (c *Config) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch directories, not files: editors and benchmark tools
	// replace report files, which drops a file-level watch.
	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, src := range c.Sources() {
		files[filepath.Clean(src.Path)] = true
		dirs[filepath.Dir(src.Path)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if files[filepath.Clean(ev.Name)] {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watching reports: %v", err)
		}
	}
}
