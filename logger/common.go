package logger_wrapper

type LogEntry struct {
	Msg       string
	Args      any
	Error     error
	Component string
	Method    string
}
