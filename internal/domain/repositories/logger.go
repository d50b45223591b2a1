package repositories

// Logger уровневое логирование в стиле printf.
// Реализации: файловый логгер и адаптер для вывода в TUI.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
	Close() error
}
