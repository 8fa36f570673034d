package handlers

import (
	"fanimal/internal/shared/logger"
)

type stubLogger struct{}

func (stubLogger) Debug(msg string, args ...any)                    {}
func (stubLogger) Info(msg string, args ...any)                     {}
func (stubLogger) Warn(msg string, args ...any)                     {}
func (stubLogger) Error(msg string, args ...any)                    {}
func (s stubLogger) With(args ...any) logger.Interface              { return s }
func (s stubLogger) Named(name string) logger.Interface             { return s }
func (stubLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (stubLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (stubLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (stubLogger) Errorw(msg string, keysAndValues ...interface{})  {}
