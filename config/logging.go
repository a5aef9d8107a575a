package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	LogDir  = "logs"
	LogFile = "maze-game.log"
)

// stderr reports fatal errors even while the standard logger is discarded.
var stderr = log.New(os.Stderr, "", log.LstdFlags)

// SetupLogging sends the standard logger to LogDir/LogFile when debug is on
// and discards it otherwise. The returned file, if any, is owned by the caller.
func SetupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(LogDir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("%s [INFO] %sdebug logging enabled%s", LogApp, LogInfoColor, LogColorReset)
	return f, nil
}

// Errorf logs an error line with the given prefix through the standard logger.
func Errorf(prefix, format string, args ...any) {
	log.Print(levelLine(prefix, "ERROR", format, args...))
}

// Fatalf writes a fatal line to stderr and exits.
func Fatalf(prefix, format string, args ...any) {
	stderr.Fatal(levelLine(prefix, "FATAL", format, args...))
}

func levelLine(prefix, level, format string, args ...any) string {
	return fmt.Sprintf("%s %s[%s]%s %s", prefix, LogErrorColor, level, LogColorReset, fmt.Sprintf(format, args...))
}
