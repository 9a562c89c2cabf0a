package logfacade

// Templated variants format positional "{0}" placeholders against args
// only when the entry will be emitted. Fn variants call fn only then.
// Skip variants are for helpers that wrap the façade: skip counts the
// helper frames between the application code and the call.

// Fatal logs a templated message at Fatal level.
// Fatal does not exit the process.
func (f *Facade) Fatal(template string, args ...any) {
	f.emit(call{level: FatalLevel, message: templated(template, args)})
}

// FatalFn logs the result of fn at Fatal level.
func (f *Facade) FatalFn(fn func() string) {
	f.emit(call{level: FatalLevel, message: deferred(fn)})
}

// FatalSkip is Fatal for callers that are themselves logging wrappers.
func (f *Facade) FatalSkip(skip int, template string, args ...any) {
	f.emit(call{level: FatalLevel, offset: skip, message: templated(template, args)})
}

// Error logs a templated message at Error level.
func (f *Facade) Error(template string, args ...any) {
	f.emit(call{level: ErrorLevel, message: templated(template, args)})
}

// ErrorFn logs the result of fn at Error level.
func (f *Facade) ErrorFn(fn func() string) {
	f.emit(call{level: ErrorLevel, message: deferred(fn)})
}

// ErrorSkip is Error for callers that are themselves logging wrappers.
func (f *Facade) ErrorSkip(skip int, template string, args ...any) {
	f.emit(call{level: ErrorLevel, offset: skip, message: templated(template, args)})
}

// Warn logs a templated message at Warn level.
func (f *Facade) Warn(template string, args ...any) {
	f.emit(call{level: WarnLevel, message: templated(template, args)})
}

// WarnFn logs the result of fn at Warn level.
func (f *Facade) WarnFn(fn func() string) {
	f.emit(call{level: WarnLevel, message: deferred(fn)})
}

// WarnSkip is Warn for callers that are themselves logging wrappers.
func (f *Facade) WarnSkip(skip int, template string, args ...any) {
	f.emit(call{level: WarnLevel, offset: skip, message: templated(template, args)})
}

// Info logs a templated message at Info level.
func (f *Facade) Info(template string, args ...any) {
	f.emit(call{level: InfoLevel, message: templated(template, args)})
}

// InfoFn logs the result of fn at Info level.
func (f *Facade) InfoFn(fn func() string) {
	f.emit(call{level: InfoLevel, message: deferred(fn)})
}

// InfoSkip is Info for callers that are themselves logging wrappers.
func (f *Facade) InfoSkip(skip int, template string, args ...any) {
	f.emit(call{level: InfoLevel, offset: skip, message: templated(template, args)})
}

// Debug logs a templated message at Debug level.
func (f *Facade) Debug(template string, args ...any) {
	f.emit(call{level: DebugLevel, message: templated(template, args)})
}

// DebugFn logs the result of fn at Debug level.
func (f *Facade) DebugFn(fn func() string) {
	f.emit(call{level: DebugLevel, message: deferred(fn)})
}

// DebugSkip is Debug for callers that are themselves logging wrappers.
func (f *Facade) DebugSkip(skip int, template string, args ...any) {
	f.emit(call{level: DebugLevel, offset: skip, message: templated(template, args)})
}

// Trace logs a templated message at Trace level.
func (f *Facade) Trace(template string, args ...any) {
	f.emit(call{level: TraceLevel, message: templated(template, args)})
}

// TraceFn logs the result of fn at Trace level.
func (f *Facade) TraceFn(fn func() string) {
	f.emit(call{level: TraceLevel, message: deferred(fn)})
}

// TraceSkip is Trace for callers that are themselves logging wrappers.
func (f *Facade) TraceSkip(skip int, template string, args ...any) {
	f.emit(call{level: TraceLevel, offset: skip, message: templated(template, args)})
}
