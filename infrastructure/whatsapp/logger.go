package whatsapp

import (
	"fmt"
	"log/slog"

	waLog "go.mau.fi/whatsmeow/util/log"
)

// slogLogger routes whatsmeow's printf-style logging into slog.
type slogLogger struct {
	log *slog.Logger
}

var _ waLog.Logger = (*slogLogger)(nil)

func newLogger(log *slog.Logger, component string) waLog.Logger {
	return &slogLogger{log: log.With("component", component)}
}

func (s *slogLogger) Debugf(msg string, args ...any) {
	s.log.Debug(fmt.Sprintf(msg, args...))
}

func (s *slogLogger) Infof(msg string, args ...any) {
	s.log.Info(fmt.Sprintf(msg, args...))
}

func (s *slogLogger) Warnf(msg string, args ...any) {
	s.log.Warn(fmt.Sprintf(msg, args...))
}

func (s *slogLogger) Errorf(msg string, args ...any) {
	s.log.Error(fmt.Sprintf(msg, args...))
}

func (s *slogLogger) Sub(module string) waLog.Logger {
	return &slogLogger{log: s.log.With("module", module)}
}
