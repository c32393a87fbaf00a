package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// stackDepth bounds the frames kept in a PanicError trace.
const stackDepth = 24

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide error handler. nil restores a
// LogHandler writing to slog.Default().
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and passes it to the installed handler.
func Report(err *KolibriError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic passes a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// RecoverWithCallback must be deferred directly. It reports a panic raised
// in op and then hands the panic value to callback, if any.
//
//	defer errors.RecoverWithCallback("ui.Add", func(r any) { ... })
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	if callback != nil {
		callback(r)
	}
}

// CaptureStack formats the caller's stack, one "function file:line" entry
// per frame, omitting CaptureStack and its direct caller.
func CaptureStack() string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
