package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes one line per record.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the records. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a SheetError.
func (h *LogHandler) HandleError(err *SheetError) {
	if err == nil {
		return
	}
	w := h.out()
	label := "sheet error"
	if err.Severity == SeverityWarning {
		label = "sheet warning"
	}
	if h.Verbose {
		fmt.Fprintf(w, "[%s] %s [%s]", label, err.Op, err.Kind)
		if err.Axis != "" {
			fmt.Fprintf(w, " axis=%s", err.Axis)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[%s] %s: %v\n", label, err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[sheet panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[sheet panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
