// Package password generates random passwords for new entries and
// provides secure wiping of password bytes after use.
package password

import (
	"crypto/rand"
	"fmt"
)

// Alphabet is the character set generated passwords draw from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Length is the fixed length of generated passwords.
const Length = 30

// Generate returns a Length-character random string over Alphabet using
// the operating system's CSPRNG. Bytes outside the largest multiple of
// len(Alphabet) are rejected to keep the distribution uniform.
//
// It returns an error only if the random number generator fails.
func Generate() (string, error) {
	limit := 256 - 256%len(Alphabet)

	out := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out), nil
}

// Wipe overwrites the contents of b with zeros. This is used to remove
// password material from memory once it is no longer needed. A nil slice
// is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
