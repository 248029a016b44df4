package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives every report. Replace it with SetHandler; it
// starts as a non-verbose LogHandler writing to stderr.
var DefaultHandler ErrorHandler = &LogHandler{}

var handlerMu sync.RWMutex

// SetHandler installs h as the global handler. Nil restores a fresh
// LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err with the current time unless it already carries one
// and hands it to the global handler.
func Report(err *SheetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// Warn reports err as a warning for op.
func Warn(op string, kind ErrorKind, err error) {
	Report(&SheetError{
		Op:       op,
		Kind:     kind,
		Severity: SeverityWarning,
		Err:      err,
	})
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Invariant panics with an *InvariantError. It is used for conditions
// that indicate a defect in the engine rather than a runtime failure.
func Invariant(op, format string, args ...any) {
	panic(&InvariantError{
		Op:         op,
		Detail:     fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
	})
}

// Recover reports a panic in progress. Use it deferred at the boundary
// where the host calls into the engine:
//
//	defer errors.Recover("grid.scroll")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r), letting the
// caller reset state after a fault.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(newPanicError(op, r))
	if callback != nil {
		callback(r)
	}
}

// newPanicError keeps the stack of the panic site when the value is an
// invariant fault, which captured it before unwinding.
func newPanicError(op string, r any) *PanicError {
	stack := ""
	if inv, ok := r.(*InvariantError); ok {
		stack = inv.StackTrace
	}
	if stack == "" {
		stack = CaptureStack()
	}
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stack,
		Timestamp:  time.Now(),
	}
}

// CaptureStack formats the calling goroutine's stack, one function and
// one file:line per frame, leaving out the runtime and this package.
func CaptureStack() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if keepFrame(frame.Function) {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const packagePath = "github.com/go-drift/sheet/pkg/errors."

func keepFrame(function string) bool {
	if function == "" || strings.HasPrefix(function, "runtime.") {
		return false
	}
	// Tests of this package still want to see their own frames.
	return !strings.HasPrefix(function, packagePath) || strings.Contains(function, ".Test")
}
