// Package uuid generates identifiers for domain records.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a time-ordered UUIDv7 string. Time-ordered ids keep records in
// roughly insertion order when sorted lexically, which matches how expense
// lists are displayed.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source exhaustion; fall back to v4.
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
