package app

import (
	"context"

	"github.com/dshills/notepad/internal/config"
	"github.com/dshills/notepad/internal/config/loader"
	"github.com/dshills/notepad/internal/config/watcher"
	"github.com/dshills/notepad/internal/vfs"
)

// LoadSettings resolves settings from the defaults, the settings file at
// path and the NOTEPAD_* environment. An empty path skips the file.
func LoadSettings(fsys vfs.FS, path string) (config.Settings, error) {
	s, err := loader.Load(fsys, path, loader.NewEnvLoader(loader.DefaultEnvPrefix))
	if err != nil {
		return s, NewOperationError("load settings", path, err)
	}
	return s, nil
}

// WatchSettings reloads the settings file at path whenever it changes and
// applies the result to the editor. Reload failures are logged and the
// current settings are kept. The caller closes the returned watcher.
func (e *Editor) WatchSettings(ctx context.Context, path string) (*watcher.Watcher, error) {
	log := e.logger.WithComponent("settings").WithField("path", path)

	w, err := watcher.New(path,
		func(s config.Settings) {
			if err := e.ApplySettings(s); err != nil {
				log.Warn("reload rejected: %v", err)
			}
		},
		watcher.WithEnv(loader.NewEnvLoader(loader.DefaultEnvPrefix)),
		watcher.WithErrorHandler(func(err error) {
			log.Warn("reload failed: %v", err)
		}),
	)
	if err != nil {
		return nil, NewOperationError("watch settings", path, err)
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Close()
		return nil, NewOperationError("watch settings", path, err)
	}
	log.Debug("watching settings file")
	return w, nil
}
