package core

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the package logger used by option construction and by
// parsers created without WithLogger. A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
