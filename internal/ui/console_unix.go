//go:build !windows

package ui

import "os"

func enableVirtualTerminal(f *os.File) bool {
	return true
}
