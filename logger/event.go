package logger

import (
	"runtime"
	"strconv"
	"strings"
)

// Event is a single log call, alive only for the duration of one dispatch.
type Event struct {
	Level Level
	// Module is the logical location of the call site, normally the import
	// path of the calling package.
	Module  string
	Line    int
	Message string
}

// Format returns the line written to the file sink:
//
//	[<module> - <line>] <LEVEL>: <message>\n
func (e Event) Format() string {
	return e.line() + "\n"
}

// line is Format without the trailing newline.
func (e Event) line() string {
	var b strings.Builder
	b.Grow(len(e.Module) + len(e.Message) + 24)
	b.WriteByte('[')
	b.WriteString(e.Module)
	b.WriteString(" - ")
	b.WriteString(strconv.Itoa(e.Line))
	b.WriteString("] ")
	b.WriteString(e.Level.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// callSite returns the package path and line of the function depth frames
// above callSite itself.
func callSite(depth int) (string, int) {
	pc, _, line, ok := runtime.Caller(depth)
	if !ok {
		return "???", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "???", line
	}
	return packagePath(fn.Name()), line
}

// packagePath strips the function part from a fully qualified function name,
// e.g. "github.com/a/b/pkg.(*T).Run.func1" becomes "github.com/a/b/pkg".
func packagePath(funcName string) string {
	lastSlash := strings.LastIndex(funcName, "/")
	dot := strings.Index(funcName[lastSlash+1:], ".")
	if dot < 0 {
		return funcName
	}
	return funcName[:lastSlash+1+dot]
}
