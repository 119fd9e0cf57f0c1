package telemetry

import (
	"io"
	"os"
	"sort"
	"sync"

	clog "github.com/charmbracelet/log"
)

// Logger writes JSON lines through charmbracelet/log. The terminal belongs
// to the frontend while a game runs, so output goes to a file or nowhere.
type Logger struct {
	mu  sync.Mutex
	w   io.WriteCloser
	log *clog.Logger
}

func NewJSONLogger(path string, debug bool) (*Logger, error) {
	var w io.WriteCloser = nopCloser{Writer: io.Discard}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}
	return newLogger(w, debug), nil
}

func newLogger(w io.WriteCloser, debug bool) *Logger {
	l := clog.NewWithOptions(w, clog.Options{
		Prefix:          "hanoi",
		ReportTimestamp: true,
		Formatter:       clog.JSONFormatter,
		Level:           clog.InfoLevel,
	})
	if debug {
		l.SetLevel(clog.DebugLevel)
	}
	return &Logger{w: w, log: l}
}

func (l *Logger) Debug(msg string, fields map[string]any) {
	l.emit(clog.DebugLevel, msg, fields)
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit(clog.InfoLevel, msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit(clog.ErrorLevel, msg, fields)
}

func (l *Logger) emit(level clog.Level, msg string, fields map[string]any) {
	if l == nil || l.log == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Log(level, msg, keyvals(fields)...)
}

func (l *Logger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

// keyvals flattens fields in key order so log lines are stable.
func keyvals(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
