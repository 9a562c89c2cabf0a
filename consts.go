package logfacade

const (
	emptyString = ""

	// Parts of the logger that reports failures of the façade itself:
	// Logging.<pid>.Logger.Trace
	fallbackLoggerPrefix = "Logging"
	fallbackLoggerClass  = "Logger"
	fallbackLoggerMethod = "Trace"

	rootLoggerName = "Root"

	defaultAppConfigExt = ".yaml"
)

// dedicatedConfigNames are checked in order next to the app config file.
var dedicatedConfigNames = []string{"logging.yaml", "logging.yml", "logging.json"}

// Field names of the per-call properties written onto every entry.
const (
	FieldLogger  = "logger"
	FieldMachine = "machine"
	FieldPID     = "pid"
	FieldThread  = "thread"
	FieldClass   = "class"
	FieldMethod  = "method"
	FieldCaller  = "caller"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgConfigLoad    = "Logging configuration could not be loaded."
	errMsgBadCharset    = "Re-encoding charset is not supported."
	errMsgLogDir        = "Failed to create logs directory."
	errMsgWatch         = "Failed to watch logging configuration."
	errMsgLogFileClose  = "Failed to close the replaced log file."
)
