package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{
		dsn: dsn,
		env: env,
	}
}
