package infra

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cloudlagoon/lagoon/ports"
)

// DailyFileWriter appends to <root>/<YYYY-MM-DD>/<prefix>.log and rolls
// over to a fresh directory when the date changes.
type DailyFileWriter struct {
	mu     sync.Mutex
	root   string
	prefix string
	day    string
	file   *os.File
}

func NewDailyFileWriter(root, prefix string) *DailyFileWriter {
	return &DailyFileWriter{root: root, prefix: prefix}
}

func (w *DailyFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensure(); err != nil {
		return 0, err
	}
	return w.file.Write(p)
}

func (w *DailyFileWriter) ensure() error {
	today := time.Now().Format(time.DateOnly)
	if w.file != nil && w.day == today {
		return nil
	}
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}
	dir := filepath.Join(w.root, today)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	file, err := os.OpenFile(filepath.Join(dir, w.prefix+".log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w.file, w.day = file, today
	return nil
}

func (w *DailyFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// WithDailyFile returns a logger which writes both to the given logger's
// handler and to a daily log file under dir. The returned close function
// flushes the current file.
func WithDailyFile(log ports.Logger, dir string) (ports.Logger, func() error) {
	w := NewDailyFileWriter(dir, "api")
	file := slog.NewTextHandler(w, nil)
	return slog.New(fanoutHandler{[]slog.Handler{log.Handler(), file}}), w.Close
}

type fanoutHandler struct {
	handlers []slog.Handler
}

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	for _, hh := range h.handlers {
		if !hh.Enabled(ctx, record.Level) {
			continue
		}
		if e := hh.Handle(ctx, record.Clone()); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		handlers[i] = hh.WithAttrs(attrs)
	}
	return fanoutHandler{handlers}
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		handlers[i] = hh.WithGroup(name)
	}
	return fanoutHandler{handlers}
}
