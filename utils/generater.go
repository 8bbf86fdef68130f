package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateBookingRef() string {
	// Short human-readable reference for confirmation emails, e.g. GLW-4F21A9
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("GLW-%X", b)
}

func GenerateSessionID() string {
	// Cart session identifier handed to the browser as a cookie
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
