package logfacade

import (
	"fmt"
	"strconv"
)

// call is one request to emit an entry.
type call struct {
	level Level
	// class, when set, replaces the stack derived type name.
	class string
	// offset skips further frames for callers that wrap the façade.
	offset  int
	message func() (string, error)
	err     error
}

// emit runs the dispatch pipeline: level gate, call-site resolution, logger
// lookup, per-logger gate, message materialisation, re-encoding and
// emission. Any failure or panic is reported on the fallback logger and
// the call returns normally. The message is built outside of mu, so a
// message func may itself log.
func (f *Facade) emit(c call) {
	if f == nil || f.closed.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.fail(fmt.Errorf("logfacade: recovered: %v", r))
		}
	}()

	if !f.gate.allows(c.level) {
		f.metrics.suppress(c.level)
		return
	}

	set := f.settings.Load()
	site, err := resolveCallSite(c.offset, set.wrappers)
	if err != nil {
		f.fail(err)
		return
	}
	if c.class != emptyString {
		site.Type = c.class
	}

	log := f.registry.get(compositeName(f.machine, site.Package, f.pid, site.Type, site.Function))
	// Fatal and Error are always emitted.
	if c.level > ErrorLevel && !log.Enabled(c.level) {
		f.metrics.suppress(c.level)
		return
	}

	msg, err := c.message()
	if err != nil {
		f.fail(err)
		return
	}
	if set.reencode != nil {
		if msg, err = set.reencode(msg); err != nil {
			f.fail(err)
			return
		}
	}
	if site.ExtraFrames > 0 {
		msg = "[Extra Frames: " + strconv.Itoa(site.ExtraFrames) + "] " + msg
	}

	written := f.write(log, Record{
		Level:   c.level,
		Message: msg,
		Err:     c.err,
		Context: CallContext{
			MachineName: f.machine,
			ProcessID:   f.pid,
			ThreadID:    goroutineID(),
			ClassName:   site.Type,
			MethodName:  site.Function,
			File:        site.File,
			Line:        site.Line,
		},
	})
	if written {
		f.metrics.emit(c.level)
	}
}

// write hands rec to log unless the façade has been closed. Close and
// reloads wait for writes in progress before releasing a sink.
func (f *Facade) write(log ProviderLogger, rec Record) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed.Load() {
		return false
	}
	log.Emit(rec)
	return true
}

// fail counts and reports an internal failure.
func (f *Facade) fail(err error) {
	f.metrics.fail()
	f.report(err)
}

// report writes err at Error on the fallback logger. It must not panic.
func (f *Facade) report(err error) {
	defer func() { _ = recover() }()
	f.write(f.registry.get(f.fallback), Record{
		Level:   ErrorLevel,
		Message: err.Error(),
		Context: CallContext{
			MachineName: f.machine,
			ProcessID:   f.pid,
			ThreadID:    goroutineID(),
			ClassName:   fallbackLoggerClass,
			MethodName:  fallbackLoggerMethod,
		},
	})
}

func templated(template string, args []any) func() (string, error) {
	return func() (string, error) {
		return formatTemplate(template, args)
	}
}

func deferred(fn func() string) func() (string, error) {
	return func() (string, error) {
		if fn == nil {
			return emptyString, nil
		}
		return fn(), nil
	}
}
