// Package testutil provides utilities for testing
package testutil

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomString generates a random string of given length
func RandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandomProjectName generates a unique project name for testing
func RandomProjectName() string {
	return fmt.Sprintf("test-proj-%s-%d", RandomString(8), time.Now().UnixNano())
}
