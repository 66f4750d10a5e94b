package log

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log wraps logrus with the service name and a coarse level gate.
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var levelPriority = map[string]int{
	"DEBUG": 1,
	"ERROR": 2,
}

// InitLogger builds the process-wide logger from Viper.
func InitLogger(v *viper.Viper) {
	logger = Log{
		AppName:  v.GetString("app.name"),
		LogLevel: levelPriority[v.GetString("log.level")],
		Logger:   newLogrusLogger(v),
	}
}

func GetLogger() Log {
	return logger
}

func newLogrusLogger(v *viper.Viper) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

func (l Log) fields(context, scope, meta string) logrus.Fields {
	_, file, line, _ := runtime.Caller(2)
	return logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file":    file,
		"line":    line,
	}
}

func (l Log) Info(context, message, scope, meta string) {
	if l.LogLevel <= 1 {
		l.Logger.WithFields(l.fields(context, scope, meta)).Info(message)
	}
}

func (l Log) Error(context, message, scope, meta string) {
	if l.LogLevel <= 2 {
		l.Logger.WithFields(l.fields(context, scope, meta)).Error(message)
	}
}
