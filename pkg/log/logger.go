package log

type logger struct {
	prefix string
}

// Logger is a prefix-scoped view of the global logger.
type Logger interface {
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	LogIfError(err error, msg string)
}

func WithLogger(prefix string) Logger {
	return &logger{
		prefix: prefix,
	}
}

func (l *logger) Errorf(format string, v ...interface{}) {
	sugar.Errorf(l.prefix+format, v...)
}

func (l *logger) Warnf(format string, v ...interface{}) {
	sugar.Warnf(l.prefix+format, v...)
}

func (l *logger) Infof(format string, v ...interface{}) {
	sugar.Infof(l.prefix+format, v...)
}

func (l *logger) Debugf(format string, v ...interface{}) {
	sugar.Debugf(l.prefix+format, v...)
}

func (l *logger) LogIfError(err error, msg string) {
	if err == nil {
		return
	}
	Error(l.prefix+msg, err)
}
