// Package log is a small leveled logger with colored prefixes.
//
// Colors are only emitted when the output is a terminal.
package log

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

var (
	Flags = log.Ltime | log.Lmicroseconds

	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	EnableDebug = false
)

var (
	mu       sync.Mutex
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	SetOutput(os.Stderr)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	au := aurora.NewAurora(IsTerminal(w))

	mu.Lock()
	defer mu.Unlock()
	logError = log.New(w, au.Bold(au.Red(PrefixError)).String(), Flags)
	logInfo = log.New(w, au.Bold(au.Blue(PrefixInfo)).String(), Flags)
	logDebug = log.New(w, au.Bold(au.Gray(DebugGreyLvl, PrefixDebug)).String(), Flags)
}

func loggers() (e, i, d *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	return logError, logInfo, logDebug
}

func Infof(f string, v ...interface{}) {
	_, l, _ := loggers()
	l.Printf(f, v...)
}

func Infoln(v ...interface{}) {
	_, l, _ := loggers()
	l.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	_, _, l := loggers()
	l.Printf(f, v...)
}

func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	_, _, l := loggers()
	l.Println(v...)
}

func Errorf(f string, v ...interface{}) {
	l, _, _ := loggers()
	l.Printf(f, v...)
}

func Errorln(v ...interface{}) {
	l, _, _ := loggers()
	l.Println(v...)
}

func Fatalf(f string, v ...interface{}) {
	l, _, _ := loggers()
	l.Fatalf(f, v...)
}
