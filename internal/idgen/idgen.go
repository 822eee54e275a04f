// Package idgen provides short, URL-safe unique ID generation backed by nanoid.
package idgen

import (
	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random portion of an ID.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters generated (excluding the prefix).
const Length = 12

// New returns a new unique ID with the given prefix.
func New(prefix string) string {
	return prefix + nanoid.MustGenerate(Alphabet, Length)
}
