// Copyright (c) 2026, The InconsolataProtein Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colrgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch runs [Generate], and then runs it again every time the input
// file changes, until interrupted.
func Watch(c *Config) error {
	if err := Generate(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching for changes", "file", c.Input)
	return watchFile(ctx, expand(c.Input), func() error { return Generate(c) })
}

// watchFile calls run each time the given file is written or created,
// until the context is done. Errors from run are logged, not returned.
// The directory of the file is watched, so that editors that save by
// replacing the file are seen too.
func watchFile(ctx context.Context, file string, run func() error) error {
	file, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("colrgen: creating file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("colrgen: watching %q: %w", file, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			errors.Log(run())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("scheme file watcher error: " + err.Error())
		}
	}
}
