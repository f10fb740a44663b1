package errors

import "go.uber.org/zap"

// ZapHandler is an ErrorHandler that forwards reports to a zap logger.
type ZapHandler struct {
	Logger *zap.SugaredLogger
}

// NewZapHandler wraps logger. A nil logger yields a no-op handler.
func NewZapHandler(logger *zap.SugaredLogger) *ZapHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ZapHandler{Logger: logger}
}

// HandleError logs an Error at error level.
func (h *ZapHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	msg := err.Kind.String() + " error"
	if err.Err != nil {
		msg = err.Err.Error()
	}
	h.Logger.Errorw(msg,
		"op", err.Op,
		"kind", err.Kind.String(),
		"time", err.Timestamp,
	)
}

// HandlePanic logs a PanicError at error level with its stack.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.Errorw("recovered panic",
		"op", err.Op,
		"value", err.Value,
		"stack", err.StackTrace,
	)
}
