package errors

import "log/slog"

// LogHandler is an ErrorHandler that logs through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a KolibriError. Recoverable kinds are logged at Warn.
func (h *LogHandler) HandleError(err *KolibriError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Widget != "" {
		attrs = append(attrs, "widget", err.Widget)
	}
	switch err.Kind {
	case KindAllocationExhausted, KindInvalidStyleContext:
		h.logger().Warn("kolibri error", attrs...)
	default:
		h.logger().Error("kolibri error", attrs...)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("kolibri panic", attrs...)
}
