package generators

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// MaxTextLength is the largest string GenerateText produces in one call.
	MaxTextLength = 128

	// digits + upper + lower + punctuation
	charClasses = 10 + 26 + 26 + 25
)

// Punctuation is the fixed set of non-alphanumeric characters GenerateText uses.
const Punctuation = "!@#$%^&*()_-+=[{]};:>|./?"

// ErrOutOfRange is returned when GenerateText is called outside its bounds.
var ErrOutOfRange = errors.New("argument out of range")

// GenerateText returns length printable ASCII characters drawn from a
// cryptographically secure source, at least minNonAlphanumeric of which are
// punctuation. length must be in [1, MaxTextLength] and minNonAlphanumeric in
// [0, length].
func GenerateText(length, minNonAlphanumeric int) (string, error) {
	if length < 1 || length > MaxTextLength {
		return "", fmt.Errorf("length %d: %w", length, ErrOutOfRange)
	}
	if minNonAlphanumeric < 0 || minNonAlphanumeric > length {
		return "", fmt.Errorf("minNonAlphanumeric %d: %w", minNonAlphanumeric, ErrOutOfRange)
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	buf := make([]byte, length)
	count := 0
	for i, b := range raw {
		c := b % charClasses
		switch {
		case c < 10:
			buf[i] = '0' + c
		case c < 36:
			buf[i] = 'A' + c - 10
		case c < 62:
			buf[i] = 'a' + c - 36
		default:
			buf[i] = Punctuation[c-62]
			count++
		}
	}

	// Top up: overwrite random alphanumeric positions until the minimum is met.
	for ; count < minNonAlphanumeric; count++ {
		var k int
		for {
			idx, err := randomInt(length)
			if err != nil {
				return "", err
			}
			if isAlphanumeric(buf[idx]) {
				k = idx
				break
			}
		}
		p, err := randomInt(len(Punctuation))
		if err != nil {
			return "", err
		}
		buf[k] = Punctuation[p]
	}
	return string(buf), nil
}

// IsPunctuation reports whether c belongs to Punctuation.
func IsPunctuation(c byte) bool {
	for i := 0; i < len(Punctuation); i++ {
		if Punctuation[i] == c {
			return true
		}
	}
	return false
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random index: %w", err)
	}
	return int(v.Int64()), nil
}
