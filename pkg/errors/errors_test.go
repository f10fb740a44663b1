package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "iconfont.Defaults.Typeface",
		Kind: KindInit,
		Err:  stderrors.New("missing font"),
	}
	got := err.Error()
	want := "iconfont.Defaults.Typeface [init]: missing font"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := io.ErrUnexpectedEOF
	err := &Error{Op: "test.op", Kind: KindParsing, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMalformedTableErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *MalformedTableError
		want string
	}{
		{
			name: "position",
			err:  &MalformedTableError{Source: "code.xml", Line: 3, Column: 5, Reason: "invalid state list tag \"list\""},
			want: "code.xml:3:5: invalid state list tag \"list\"",
		},
		{
			name: "no position",
			err:  &MalformedTableError{Reason: "no start tag found"},
			want: "<input>: no start tag found",
		},
		{
			name: "wrapped",
			err:  &MalformedTableError{Source: "a.yaml", Reason: "syntax error", Err: io.ErrUnexpectedEOF},
			want: "a.yaml: syntax error: unexpected EOF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMalformedTableErrorAs(t *testing.T) {
	var err error = &Error{
		Op:   "statelist.ParseFile",
		Kind: KindParsing,
		Err:  &MalformedTableError{Reason: "no items"},
	}
	var mte *MalformedTableError
	if !stderrors.As(err, &mte) {
		t.Fatal("expected errors.As to find MalformedTableError")
	}
	if mte.Reason != "no items" {
		t.Errorf("Reason = %q, want %q", mte.Reason, "no items")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "iconfont.View.Draw"
	if got, want := err.Error(), "panic in iconfont.View.Draw: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{
		onError: func(err *Error) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	Report(&Error{Op: "test.op", Kind: KindInit, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	defer SetHandler(SetHandler(nil))

	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	first := &testHandler{}
	defer SetHandler(SetHandler(first))

	if prev := SetHandler(&testHandler{}); prev != first {
		t.Errorf("SetHandler returned %v, want the previous handler", prev)
	}
}

func TestRecoverInto(t *testing.T) {
	var reported *PanicError
	defer SetHandler(SetHandler(&testHandler{
		onPanic: func(err *PanicError) {
			reported = err
		},
	}))

	run := func() (err error) {
		defer RecoverInto("test.recover_into", &err)
		panic("boom")
	}
	err := run()

	var perr *PanicError
	if !stderrors.As(err, &perr) {
		t.Fatalf("expected *PanicError, got %v", err)
	}
	if perr != reported {
		t.Error("returned error should be the reported panic")
	}
	if perr.Op != "test.recover_into" || perr.Value != "boom" {
		t.Errorf("PanicError = %+v", perr)
	}
	if !strings.Contains(perr.StackTrace, "TestRecoverInto") {
		t.Errorf("stack trace should include the panicking function:\n%s", perr.StackTrace)
	}

	ok := func() (err error) {
		defer RecoverInto("test.recover_into", &err)
		return nil
	}
	if err := ok(); err != nil {
		t.Errorf("no panic should leave err nil, got %v", err)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&Error{Op: "statelist.ParseFile", Kind: KindParsing, Err: stderrors.New("bad root")})
	if got, want := buf.String(), "[iconfont error] statelist.ParseFile: bad root\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "render", Value: 1, StackTrace: "frame"})
	out := buf.String()
	if !strings.Contains(out, "[iconfont panic] render: 1") || !strings.Contains(out, "Stack trace:\nframe") {
		t.Errorf("unexpected verbose panic output %q", out)
	}
}

func TestZapHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(core).Sugar())

	h.HandleError(&Error{Op: "iconfont.AssetLoader", Kind: KindInit, Err: stderrors.New("no font")})
	h.HandlePanic(&PanicError{Op: "demo.tap", Value: "boom"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Message != "no font" {
		t.Errorf("message = %q, want %q", entries[0].Message, "no font")
	}
	if got := entries[0].ContextMap()["kind"]; got != "init" {
		t.Errorf("kind field = %v, want init", got)
	}
	if got := entries[1].ContextMap()["op"]; got != "demo.tap" {
		t.Errorf("op field = %v, want demo.tap", got)
	}
}

func TestNewZapHandlerNil(t *testing.T) {
	h := NewZapHandler(nil)
	h.HandleError(&Error{Op: "x"})
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
