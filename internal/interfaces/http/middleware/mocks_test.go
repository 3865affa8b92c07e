package middleware

import "kostera/internal/shared/logger"

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                    {}
func (nopLogger) Info(msg string, args ...any)                     {}
func (nopLogger) Warn(msg string, args ...any)                     {}
func (nopLogger) Error(msg string, args ...any)                    {}
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (n nopLogger) With(args ...any) logger.Interface              { return n }
func (n nopLogger) Named(name string) logger.Interface             { return n }
