//go:build !unix && !windows

package server

import (
	"strings"
)

// No errno to compare against here (plan9, js, wasip1).
func isAddrInUse(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "address already in use")
}
