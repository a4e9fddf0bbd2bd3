package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes levelled lines to an io.Writer. Debug lines are
// dropped unless Debug is set.
type WriterLogger struct {
	l     *log.Logger
	Debug bool
}

// NewWriterLogger returns a Logger writing to w.
func NewWriterLogger(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{l: log.New(w, "firecalc ", log.LstdFlags), Debug: debug}
}

func (wl *WriterLogger) Debugf(format string, args ...any) {
	if wl.Debug {
		wl.l.Printf("DEBUG "+format, args...)
	}
}

func (wl *WriterLogger) Infof(format string, args ...any)  { wl.l.Printf("INFO "+format, args...) }
func (wl *WriterLogger) Warnf(format string, args ...any)  { wl.l.Printf("WARN "+format, args...) }
func (wl *WriterLogger) Errorf(format string, args ...any) { wl.l.Printf("ERROR "+format, args...) }
