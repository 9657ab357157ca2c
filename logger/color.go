package logger

const colorReset = "\033[0m"

var levelColors = [...]string{
	TraceLevel: "\033[32m", // green
	DebugLevel: "\033[34m", // blue
	InfoLevel:  "\033[35m", // purple
	WarnLevel:  "\033[33m", // yellow
	ErrorLevel: "\033[31m", // red
}

// colorize wraps the whole line in the color for level.
func colorize(level Level, line string) string {
	if !level.valid() {
		return line
	}
	return levelColors[level] + line + colorReset
}
