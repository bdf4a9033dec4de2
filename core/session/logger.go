package session

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogger sends the standard logger to path, creating its directory.
// The returned closer must be closed when the session ends.
func SetupLogger(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags)
	return logFile, nil
}

func (s *Session) logError(err error, context string) {
	if err != nil {
		log.Printf("[ERROR] [%s] %s: %s", s.ID, context, err.Error())
	}
}

func (s *Session) logInfo(format string, args ...any) {
	log.Printf("[INFO] [%s] %s", s.ID, fmt.Sprintf(format, args...))
}

func (s *Session) logCommand(cmd string) {
	log.Printf("[CMD] [%s] %s", s.ID, cmd)
}
