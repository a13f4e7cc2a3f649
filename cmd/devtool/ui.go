package main

import (
	"fmt"
	"io"
	"os"
)

type status int

const (
	statusInfo status = iota
	statusSuccess
	statusWarning
	statusError
	statusHeader
)

const ansiReset = "\033[0m"

var statusStyles = map[status]struct{ color, prefix string }{
	statusInfo:    {"\033[0;34m", "ℹ "},
	statusSuccess: {"\033[0;32m", "✓ "},
	statusWarning: {"\033[1;33m", "⚠ "},
	statusError:   {"\033[0;31m", "✗ "},
	statusHeader:  {"\033[1;33m", ""},
}

// console is where devtool writes its progress; colors are dropped when
// NO_COLOR is set
var console = struct {
	out   io.Writer
	color bool
}{out: os.Stdout, color: os.Getenv("NO_COLOR") == ""}

func printStatus(s status, format string, a ...interface{}) {
	style := statusStyles[s]
	line := style.prefix + fmt.Sprintf(format, a...)
	if s == statusHeader {
		line = "\n=== " + line + " ==="
	}
	if console.color {
		line = style.color + line + ansiReset
	}
	fmt.Fprintln(console.out, line)
}

func PrintInfo(format string, a ...interface{}) { printStatus(statusInfo, format, a...) }
func PrintSuccess(format string, a ...interface{}) { printStatus(statusSuccess, format, a...) }
func PrintWarning(format string, a ...interface{}) { printStatus(statusWarning, format, a...) }
func PrintError(format string, a ...interface{}) { printStatus(statusError, format, a...) }

func PrintHeader(title string) { printStatus(statusHeader, "%s", title) }
