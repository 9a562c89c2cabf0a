// Package logfacade is a call-site aware logging façade over rs/zerolog.
//
// Every call derives its logger from the calling frame: the composite name
// machine.package.pid.Type.Method keys a cache of named loggers, and the
// same values are written onto the entry (machine, pid, thread, class,
// method, caller). Levels are gated before the message is built, so
// deferred and templated messages cost nothing when disabled.
//
// Key features
//   - Deferred (InfoFn), templated (Info "Value {0}") and wrapper-aware
//     (InfoSkip) variants for Fatal, Error, Warn, Info, Debug and Trace
//   - Logging never fails the caller: internal errors and panics go to a
//     fallback logger named Logging.<pid>.Logger.Trace
//   - PublishError logs an error with its cause chain and returns the root
//   - Configuration discovered next to the application config (a dedicated
//     logging.yaml wins), overridable from LOGFACADE_* variables and
//     re-applied on change
//   - Rolling files via lumberjack, optional Prometheus counters
//
// Typical usage
//
//	f, err := logfacade.New(logfacade.WithAppConfigPath("/etc/app/app.yaml"))
//	if err != nil { panic(err) }
//	defer f.Close()
//
//	f.InfoFn(func() string { return "Start" })
//	f.Error("Value {0}", 42)
//	if err := run(); err != nil {
//		root := f.PublishError(err, "run failed")
//		_ = root
//	}
package logfacade
