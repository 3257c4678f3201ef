package display

import (
	"fmt"
	"os"
	"sync"
)

// Logger writes newline-delimited log lines to stdout. It satisfies
// gl.Logger.
type Logger struct {
	mu sync.Mutex
	w  *os.File
}

func NewLogger() *Logger {
	return &Logger{w: os.Stdout}
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
