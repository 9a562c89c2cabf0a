package logfacade

import (
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/fsnotify/fsnotify"
)

// configWatcher re-applies the configuration file whenever it is written,
// created or replaced.
type configWatcher struct {
	src      configSource
	watcher  *fsnotify.Watcher
	apply    func(*Config) error
	onError  func(error)
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// watchConfig watches the directory holding src.Path, since editors often
// replace files rather than write them in place.
func watchConfig(src configSource, apply func(*Config) error, onError func(error)) (*configWatcher, error) {
	const op errors.Op = "logfacade.watchConfig"

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgWatch)
	}
	if err = w.Add(filepath.Dir(src.Path)); err != nil {
		_ = w.Close()
		return nil, errors.New(op).Err(err).Msg(errMsgWatch)
	}

	cw := &configWatcher{
		src:     src,
		watcher: w,
		apply:   apply,
		onError: onError,
		done:    make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.run()
	return cw, nil
}

func (cw *configWatcher) run() {
	defer cw.wg.Done()
	target := filepath.Clean(cw.src.Path)

	for {
		select {
		case <-cw.done:
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.onError(err)
		}
	}
}

func (cw *configWatcher) reload() {
	cfg, err := loadConfig(cw.src)
	if err != nil {
		cw.onError(err)
		return
	}
	if err = cw.apply(cfg); err != nil {
		cw.onError(err)
	}
}

// stop ends the watch loop and waits for it. Safe to call more than once.
func (cw *configWatcher) stop() error {
	var err error
	cw.stopOnce.Do(func() {
		close(cw.done)
		err = cw.watcher.Close()
		cw.wg.Wait()
	})
	return err
}
