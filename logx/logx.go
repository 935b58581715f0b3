// Package logx is a small process-wide, level-gated logger. It plays
// the role the reference implementation's logger module plays
// (set_level/debug!/info!/error! macros backed by a global mutable
// level), built on the standard library log package the way the
// teacher calls log.Printf directly throughout its server and
// reporting code.
package logx

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level gates which calls actually print.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var level int32 = int32(LevelInfo)

var std = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// SetLevel parses a level name ("debug", "info", "error") and sets the
// process-wide threshold. Unrecognised names leave the level
// unchanged.
func SetLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		atomic.StoreInt32(&level, int32(LevelDebug))
	case "info":
		atomic.StoreInt32(&level, int32(LevelInfo))
	case "error":
		atomic.StoreInt32(&level, int32(LevelError))
	}
}

func enabled(l Level) bool {
	return int32(l) >= atomic.LoadInt32(&level)
}

func levelName(l Level) string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func logf(l Level, format string, args ...any) {
	if !enabled(l) {
		return
	}
	std.Printf("%s | "+format, append([]any{levelName(l)}, args...)...)
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }
