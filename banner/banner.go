// Package banner prints the human-readable status lines shown on the terminal.
// None of this output is meant to be parsed.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ProgramName is used in the retry hint when the port is taken
const ProgramName = "orchea"

var (
	title = color.New(color.FgMagenta, color.Bold)
	info  = color.New(color.FgCyan)
	hint  = color.New(color.Faint)
	fail  = color.New(color.FgRed)
)

// Startup prints the banner shown once the listener is bound.
func Startup(w io.Writer, name, url, root string) {
	title.Fprintf(w, "🌺 %s\n", name)
	info.Fprintf(w, "📡 Server running at %s\n", url)
	fmt.Fprintf(w, "📁 Serving directory: %s\n", root)
	fmt.Fprintf(w, "🌐 Open %s in your browser\n", url)
	hint.Fprintln(w, "🔄 Press Ctrl+C to stop the server")
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

// Farewell is printed after a signal stopped the server.
func Farewell(w io.Writer) {
	fmt.Fprintln(w, "\n👋 Server stopped. Goodbye!")
}

// PortInUse names the busy port and suggests the next one.
func PortInUse(w io.Writer, port int) {
	fail.Fprintf(w, "❌ Port %d is already in use. Try a different port: %s %d\n", port, ProgramName, port+1)
}

// StartFailed reports any other startup error with its raw text.
func StartFailed(w io.Writer, err error) {
	fail.Fprintf(w, "❌ Error starting server: %v\n", err)
}

// InvalidPort reports that the port argument was ignored.
func InvalidPort(w io.Writer, arg string, fallback int) {
	fail.Fprintf(w, "❌ Invalid port number %q. Using default port %d.\n", arg, fallback)
}
