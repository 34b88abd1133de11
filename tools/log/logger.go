package log

import "github.com/sirupsen/logrus"

// WarnLevel is the warning log level.
var WarnLevel = logrus.WarnLevel

// InfoLevel is the informational log level.
var InfoLevel = logrus.InfoLevel

// DebugLevel is the debug log level.
var DebugLevel = logrus.DebugLevel

// ErrorLevel is the error log level.
var ErrorLevel = logrus.ErrorLevel

// FatalLevel is the fatal log level.
var FatalLevel = logrus.FatalLevel

// TextFormatter is an alias for the logrus text formatter.
type TextFormatter = logrus.TextFormatter

// Level is an alias for the logrus level type.
type Level = logrus.Level

// CheckErr logs err at the given level when it is not nil.
func CheckErr(level Level, err error) {
	if err != nil {
		Log(level, err)
	}
}

// Log records the given messages at the requested level.
func Log(level Level, messages ...interface{}) {
	switch level {
	case logrus.InfoLevel:
		logrus.Info(messages...)
	case logrus.WarnLevel:
		logrus.Warn(messages...)
	case logrus.DebugLevel:
		logrus.Debug(messages...)
	case logrus.ErrorLevel:
		logrus.Error(messages...)
	case logrus.FatalLevel:
		logrus.Fatal(messages...)
	default:
		logrus.Print(messages...)
	}
}

// SetLevel adjusts the global log level.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// SetFormatter adjusts the global log formatter.
func SetFormatter(formatter logrus.Formatter) {
	logrus.SetFormatter(formatter)
}
