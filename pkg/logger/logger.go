// Package logger exposes the process-wide structured logger.
package logger

import "go.uber.org/zap"

// Log is a no-op until Initialize is called, so packages can log
// unconditionally.
var Log = zap.NewNop()

// Initialize replaces Log with a real zap logger. Production config is used
// when env is "production", development config otherwise.
func Initialize(env string) error {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Log = l

	return nil
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int64(key string, value int64) zap.Field {
	return zap.Int64(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}
