package logfacade

// Bound logs with an explicit type name instead of the one derived from the
// stack. The method name is still taken from the calling frame.
type Bound struct {
	f     *Facade
	class string
}

// For returns a logger that reports class as the caller's type name.
func (f *Facade) For(class string) *Bound {
	return &Bound{f: f, class: class}
}

// Fatal is Facade.Fatal reported under the bound type name.
func (b *Bound) Fatal(template string, args ...any) {
	b.f.emit(call{level: FatalLevel, class: b.class, message: templated(template, args)})
}

// Error is Facade.Error reported under the bound type name.
func (b *Bound) Error(template string, args ...any) {
	b.f.emit(call{level: ErrorLevel, class: b.class, message: templated(template, args)})
}

// Warn is Facade.Warn reported under the bound type name.
func (b *Bound) Warn(template string, args ...any) {
	b.f.emit(call{level: WarnLevel, class: b.class, message: templated(template, args)})
}

// Info is Facade.Info reported under the bound type name.
func (b *Bound) Info(template string, args ...any) {
	b.f.emit(call{level: InfoLevel, class: b.class, message: templated(template, args)})
}

// Debug is Facade.Debug reported under the bound type name.
func (b *Bound) Debug(template string, args ...any) {
	b.f.emit(call{level: DebugLevel, class: b.class, message: templated(template, args)})
}

// Trace is Facade.Trace reported under the bound type name.
func (b *Bound) Trace(template string, args ...any) {
	b.f.emit(call{level: TraceLevel, class: b.class, message: templated(template, args)})
}

// FatalFn is Facade.FatalFn reported under the bound type name.
func (b *Bound) FatalFn(fn func() string) {
	b.f.emit(call{level: FatalLevel, class: b.class, message: deferred(fn)})
}

// ErrorFn is Facade.ErrorFn reported under the bound type name.
func (b *Bound) ErrorFn(fn func() string) {
	b.f.emit(call{level: ErrorLevel, class: b.class, message: deferred(fn)})
}

// WarnFn is Facade.WarnFn reported under the bound type name.
func (b *Bound) WarnFn(fn func() string) {
	b.f.emit(call{level: WarnLevel, class: b.class, message: deferred(fn)})
}

// InfoFn is Facade.InfoFn reported under the bound type name.
func (b *Bound) InfoFn(fn func() string) {
	b.f.emit(call{level: InfoLevel, class: b.class, message: deferred(fn)})
}

// DebugFn is Facade.DebugFn reported under the bound type name.
func (b *Bound) DebugFn(fn func() string) {
	b.f.emit(call{level: DebugLevel, class: b.class, message: deferred(fn)})
}

// TraceFn is Facade.TraceFn reported under the bound type name.
func (b *Bound) TraceFn(fn func() string) {
	b.f.emit(call{level: TraceLevel, class: b.class, message: deferred(fn)})
}

// PublishError is Facade.PublishError reported under the bound type name.
func (b *Bound) PublishError(err error, extra string) error {
	if err == nil {
		return nil
	}
	b.f.emit(call{
		level: ErrorLevel,
		class: b.class,
		err:   err,
		message: func() (string, error) {
			return FullMessage(err, extra, 0), nil
		},
	})
	return rootCause(err)
}

// IsDebugEnabled reports IsDebugEnabled of the underlying façade.
func (b *Bound) IsDebugEnabled() bool { return b.f.IsDebugEnabled() }

// IsInfoEnabled reports IsInfoEnabled of the underlying façade.
func (b *Bound) IsInfoEnabled() bool { return b.f.IsInfoEnabled() }

// IsWarnEnabled reports IsWarnEnabled of the underlying façade.
func (b *Bound) IsWarnEnabled() bool { return b.f.IsWarnEnabled() }
