// Package textscan implements the vowel analysis behind the analyzer page:
// a single forward pass over the input looking for the first vowel that
// immediately follows a vowel→consonant sequence and occurs exactly once in
// the whole text.
package textscan

import (
	"strings"
	"time"
	"unicode"
)

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// Result is the outcome of a scan. Vowel keeps the original casing from the
// input; Found is false when no vowel qualified.
type Result struct {
	Vowel   string
	Found   bool
	Elapsed time.Duration
}

// FirstUniqueVowel scans text once, forward only, and returns the first vowel
// that (a) directly follows a vowel→consonant run and (b) is unique in the
// whole text, counting case-insensitively. Characters that are neither vowel
// nor consonant break the run.
func FirstUniqueVowel(text string) Result {
	start := time.Now()

	counts := make(map[rune]int)
	for _, r := range text {
		counts[unicode.ToLower(r)]++
	}

	// lastWasVowel: the previous letter was a vowel.
	// afterVowelConsonant: a vowel→consonant sequence just ended.
	lastWasVowel := false
	afterVowelConsonant := false

	for _, r := range text {
		lower := unicode.ToLower(r)
		isVowel := strings.ContainsRune(vowels, lower)
		isConsonant := strings.ContainsRune(consonants, lower)

		switch {
		case isVowel:
			if afterVowelConsonant && counts[lower] == 1 {
				return Result{
					Vowel:   string(r),
					Found:   true,
					Elapsed: time.Since(start),
				}
			}
			lastWasVowel = true
			afterVowelConsonant = false

		case isConsonant:
			afterVowelConsonant = lastWasVowel
			lastWasVowel = false

		default:
			// The vowel-consonant-vowel sequence must be contiguous letters.
			lastWasVowel = false
			afterVowelConsonant = false
		}
	}

	return Result{Elapsed: time.Since(start)}
}
