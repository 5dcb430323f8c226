package logger

import (
	"go.uber.org/zap"
)

var Log = zap.NewNop()

// New builds the process logger. Development mode switches to the console
// encoder so local runs stay readable.
func New(appEnv string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "dev" || appEnv == "" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}
