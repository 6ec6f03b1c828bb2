//go:build !linux

package main

// Interactive input is only supported on Linux; elsewhere stdin is always
// read to EOF.
func isTerminal(fd int) bool {
	return false
}
