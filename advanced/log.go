package advanced

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// The engine is silent by default. Phase transitions are logged at debug
// level, so pass a logger with debug enabled to trace insertions.

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Set the logger used by the engine. Pass nil to silence it again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
