// Package logging provides the per-run diagnostic log file. One file is
// created per process lifetime, lazily, and every failure degrades to a
// no-op: a diagnostic hiccup must never take the caller down.
package logging

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// logDirName is the fixed subdirectory log files live in.
	logDirName = "logs"

	// fileStampLayout names the per-run file after its creation time.
	fileStampLayout = "2006-01-02_15-04-05"

	// lineStampLayout prefixes every logged line.
	lineStampLayout = "2006-01-02 15:04:05.000"
)

// SessionLogger is an append-only log sink writing to one file per process
// run, optionally mirrored to the console. Construct one explicitly and
// pass it to consumers; there is no package-global instance.
//
// Log lines are flushed and synced to storage per call, so a crash loses
// at most the line being written.
type SessionLogger struct {
	mu      sync.Mutex
	dir     string
	file    *os.File
	writer  *bufio.Writer
	console *logrus.Logger
}

// NewSessionLogger creates a logger rooted at baseDir; the log file will be
// created under baseDir/logs on Initialize. When mirrorToConsole is set,
// every line is also emitted through logrus.
func NewSessionLogger(baseDir string, mirrorToConsole bool) *SessionLogger {
	l := &SessionLogger{
		dir: filepath.Join(baseDir, logDirName),
	}

	if mirrorToConsole {
		l.console = logrus.New()
		l.console.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}

// Initialize creates the log directory and the per-run file. On failure the
// logger silently degrades to a no-op for the rest of the run.
func (l *SessionLogger) Initialize() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return
	}

	name := fmt.Sprintf("emubridge_%s.log", time.Now().Format(fileStampLayout))
	file, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}

	l.file = file
	l.writer = bufio.NewWriter(file)
}

// Log appends one timestamped line. Write, flush and sync failures are all
// swallowed.
func (l *SessionLogger) Log(tag, message string) {
	line := fmt.Sprintf("%s [%s] %s", time.Now().Format(lineStampLayout), tag, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console != nil {
		l.console.WithField("tag", tag).Info(message)
	}

	if l.writer == nil {
		return
	}

	if _, err := l.writer.WriteString(line + "\n"); err != nil {
		return
	}
	if err := l.writer.Flush(); err != nil {
		return
	}
	_ = l.file.Sync()
}

// Close releases the writer and file. Safe to call when Initialize was
// never called or failed, and safe to call twice.
func (l *SessionLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer != nil {
		_ = l.writer.Flush()
		l.writer = nil
	}
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// ListLogFiles returns the names of all files in the log directory, from
// this run and previous ones. A missing directory yields an empty list.
func (l *SessionLogger) ListLogFiles() []string {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}
