// Package logutil provides logging utilities.
//
// All loggers share one sink. Loggers obtained with GetLogger before the sink
// is changed follow the change.
package logutil

import (
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu    sync.Mutex
	out   io.Writer = io.Discard
	file  io.Closer
	level = new(slog.LevelVar)
)

// Log files rotate when they reach this many megabytes.
const maxFileSizeMB = 10

type sink struct{}

func (sink) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return out.Write(p)
}

// GetLogger gets a logger with a prefix. The prefix is recorded in the
// "scope" attribute of every record.
func GetLogger(prefix string) *slog.Logger {
	h := slog.NewTextHandler(sink{}, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("scope", prefix)
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out = newout
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to a rotating log file. If the argument is empty, logs are discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	lj := &lumberjack.Logger{
		Filename:   fname,
		MaxSize:    maxFileSizeMB,
		MaxBackups: 3,
		LocalTime:  true,
	}
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	out, file = lj, lj
	return nil
}

// SetLevel sets the minimum level of records that are written.
func SetLevel(l slog.Level) { level.Set(l) }

// Level returns the current minimum level.
func Level() slog.Level { return level.Level() }

func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}
