// Package util contains helpers used across the application that don't match
// any other package
package util

import "os"

func IsRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}
