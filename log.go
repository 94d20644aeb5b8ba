package blockpool

import golog "github.com/bnclabs/golog"

// Logger is the logging surface blockpool needs. Applications can supply
// their own implementation via SetLogger; otherwise blockpool logs
// through the process-wide github.com/bnclabs/golog package, matching
// how the rest of this lineage wires logging (see llrb's debugf/errorf
// wrappers around the same package).
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// gologAdapter routes through golog's package-level functions so the
// default path carries no state of its own.
type gologAdapter struct{}

func (gologAdapter) Debugf(format string, v ...interface{}) { golog.Debugf(format, v...) }
func (gologAdapter) Infof(format string, v ...interface{})  { golog.Infof(format, v...) }
func (gologAdapter) Warnf(format string, v ...interface{})  { golog.Warnf(format, v...) }
func (gologAdapter) Errorf(format string, v ...interface{}) { golog.Errorf(format, v...) }

var defaultLogger Logger = gologAdapter{}

// SetLogger overrides the package-wide default logger that New (and so
// the singleton Init) hands to each Context it creates; settings carry no
// logger of their own, and a Context keeps the logger it was created
// with. Passing nil restores the golog-backed default.
func SetLogger(logger Logger) {
	if logger == nil {
		defaultLogger = gologAdapter{}
		return
	}
	defaultLogger = logger
}
