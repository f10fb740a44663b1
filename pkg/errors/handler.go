package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets the active handler live behind one atomic pointer
// whatever its concrete type.
type handlerBox struct {
	h ErrorHandler
}

var active atomic.Pointer[handlerBox]

func init() {
	active.Store(&handlerBox{h: &LogHandler{}})
}

// Handler returns the handler that receives reports.
func Handler() ErrorHandler {
	return active.Load().h
}

// SetHandler installs h and returns the handler it replaces.
// Pass nil to restore a plain LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return active.Swap(&handlerBox{h: h}).h
}

// Report sends err to the active handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic sends err to the active handler, stamping it if needed.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover reports a panic in the calling goroutine and swallows it.
//
//	defer errors.Recover("iconfont.render")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverInto is Recover for functions that return an error: the reported
// *PanicError is also stored in *errp so callers see the failure.
//
//	func draw() (err error) {
//		defer errors.RecoverInto("iconfont.draw", &err)
//		...
//	}
func RecoverInto(op string, errp *error) {
	if r := recover(); r != nil {
		perr := reportRecovered(op, r)
		if errp != nil {
			*errp = perr
		}
	}
}

func reportRecovered(op string, value any) *PanicError {
	perr := &PanicError{
		Op:         op,
		Value:      value,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	}
	ReportPanic(perr)
	return perr
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// pair per frame.
func CaptureStack() string {
	return captureStack(3)
}

// captureStack skips skip frames, counting runtime.Callers itself.
func captureStack(skip int) string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
