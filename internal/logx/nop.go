package logx

// Nop returns a Logger that discards everything. Packages fall back to it
// when constructed with a nil logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

func (n nopLogger) With(...Field) Logger { return n }

func (nopLogger) Sync() error { return nil }

var _ Logger = nopLogger{}
