// Package browser opens URLs in the user's default browser.
package browser

import (
	"io"

	"github.com/pkg/browser"
)

// Opener opens url somewhere a human can see it
type Opener func(url string) error

func init() {
	// The launcher helpers (xdg-open, open, rundll32) sometimes chatter on
	// stdout; keep the banner clean.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Default opens url with the platform's default browser.
func Default(url string) error {
	return browser.OpenURL(url)
}

// None never opens anything.
func None(string) error {
	return nil
}
