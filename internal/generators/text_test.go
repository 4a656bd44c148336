package generators

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateText(t *testing.T) {
	for length := 1; length <= MaxTextLength; length++ {
		for _, minPunct := range []int{0, 1, length / 4, length / 2, length} {
			t.Run(fmt.Sprintf("Length_%d_Min_%d", length, minPunct), func(t *testing.T) {
				s, err := GenerateText(length, minPunct)
				require.NoError(t, err)
				require.Len(t, s, length)

				punct := 0
				for i := 0; i < len(s); i++ {
					c := s[i]
					switch {
					case IsPunctuation(c):
						punct++
					case isAlphanumeric(c):
					default:
						t.Fatalf("unexpected character %q in %q", c, s)
					}
				}
				require.GreaterOrEqual(t, punct, minPunct)
			})
		}
	}
}

func TestGenerateText_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		minPunct int
	}{
		{"ZeroLength", 0, 0},
		{"TooLong", MaxTextLength + 1, 0},
		{"NegativeMinimum", 10, -1},
		{"MinimumAboveLength", 10, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := GenerateText(tc.length, tc.minPunct)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
			require.Empty(t, s)
		})
	}
}

func TestPunctuationSet(t *testing.T) {
	require.Len(t, Punctuation, 25)
	require.Equal(t, charClasses, 87)
	for i := 0; i < len(Punctuation); i++ {
		require.False(t, isAlphanumeric(Punctuation[i]))
	}
}
