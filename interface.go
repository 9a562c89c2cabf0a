package logfacade

// Logger is the caller-facing surface shared by *Facade and *Bound.
// Application types can depend on it instead of a concrete façade.
type Logger interface {
	Fatal(template string, args ...any)
	Error(template string, args ...any)
	Warn(template string, args ...any)
	Info(template string, args ...any)
	Debug(template string, args ...any)
	Trace(template string, args ...any)

	FatalFn(fn func() string)
	ErrorFn(fn func() string)
	WarnFn(fn func() string)
	InfoFn(fn func() string)
	DebugFn(fn func() string)
	TraceFn(fn func() string)

	PublishError(err error, extra string) error

	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
}

var (
	_ Logger = (*Facade)(nil)
	_ Logger = (*Bound)(nil)
)
