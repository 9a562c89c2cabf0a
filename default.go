package logfacade

import (
	"fmt"
	"os"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultFacade *Facade
)

// Default returns the process-wide façade, built on first use from the
// discovered configuration. If that configuration is unusable the error is
// printed to stderr and a façade that writes nowhere is returned instead.
func Default() *Facade {
	defaultOnce.Do(func() {
		f, err := New()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "logfacade:", err)
			f, _ = New(WithConfig(DefaultConfig()))
		}
		defaultFacade = f
	})
	return defaultFacade
}

// IsDebugEnabled reports IsDebugEnabled of the default façade.
func IsDebugEnabled() bool { return Default().IsDebugEnabled() }

// IsInfoEnabled reports IsInfoEnabled of the default façade.
func IsInfoEnabled() bool { return Default().IsInfoEnabled() }

// IsWarnEnabled reports IsWarnEnabled of the default façade.
func IsWarnEnabled() bool { return Default().IsWarnEnabled() }

// CurrentProcessID returns the process id captured by the default façade.
func CurrentProcessID() int { return Default().ProcessID() }

// PublishError publishes err on the default façade.
func PublishError(err error, extra string) error { return Default().PublishError(err, extra) }

// Fatal calls Fatal on the default façade.
func Fatal(template string, args ...any) {
	Default().Fatal(template, args...)
}

// FatalFn calls FatalFn on the default façade.
func FatalFn(fn func() string) {
	Default().FatalFn(fn)
}

// FatalSkip calls FatalSkip on the default façade.
func FatalSkip(skip int, template string, args ...any) {
	Default().FatalSkip(skip, template, args...)
}

// Error calls Error on the default façade.
func Error(template string, args ...any) {
	Default().Error(template, args...)
}

// ErrorFn calls ErrorFn on the default façade.
func ErrorFn(fn func() string) {
	Default().ErrorFn(fn)
}

// ErrorSkip calls ErrorSkip on the default façade.
func ErrorSkip(skip int, template string, args ...any) {
	Default().ErrorSkip(skip, template, args...)
}

// Warn calls Warn on the default façade.
func Warn(template string, args ...any) {
	Default().Warn(template, args...)
}

// WarnFn calls WarnFn on the default façade.
func WarnFn(fn func() string) {
	Default().WarnFn(fn)
}

// WarnSkip calls WarnSkip on the default façade.
func WarnSkip(skip int, template string, args ...any) {
	Default().WarnSkip(skip, template, args...)
}

// Info calls Info on the default façade.
func Info(template string, args ...any) {
	Default().Info(template, args...)
}

// InfoFn calls InfoFn on the default façade.
func InfoFn(fn func() string) {
	Default().InfoFn(fn)
}

// InfoSkip calls InfoSkip on the default façade.
func InfoSkip(skip int, template string, args ...any) {
	Default().InfoSkip(skip, template, args...)
}

// Debug calls Debug on the default façade.
func Debug(template string, args ...any) {
	Default().Debug(template, args...)
}

// DebugFn calls DebugFn on the default façade.
func DebugFn(fn func() string) {
	Default().DebugFn(fn)
}

// DebugSkip calls DebugSkip on the default façade.
func DebugSkip(skip int, template string, args ...any) {
	Default().DebugSkip(skip, template, args...)
}

// Trace calls Trace on the default façade.
func Trace(template string, args ...any) {
	Default().Trace(template, args...)
}

// TraceFn calls TraceFn on the default façade.
func TraceFn(fn func() string) {
	Default().TraceFn(fn)
}

// TraceSkip calls TraceSkip on the default façade.
func TraceSkip(skip int, template string, args ...any) {
	Default().TraceSkip(skip, template, args...)
}
