package users

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus combining mark.
var diacriticReplacements = map[rune]string{
	'ø': "o",
	'Ø': "O",
	'æ': "ae",
	'Æ': "ae",
	'ß': "ss",
	'đ': "d",
	'Đ': "D",
	'ł': "l",
	'Ł': "L",
}

func foldDiacritics(name string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, name)
	if err != nil {
		folded = name
	}

	var builder strings.Builder
	for _, r := range folded {
		if replacement, ok := diacriticReplacements[r]; ok {
			builder.WriteString(replacement)
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// SanitizeNamePart normalizes one half of a name for use in a username:
// diacritics folded to ASCII, leading/trailing periods stripped, spaces
// removed, lower-cased.
func SanitizeNamePart(name string) string {
	name = foldDiacritics(name)
	name = strings.Trim(name, ".")
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}

// UsernameBase composes the sanitized firstname.lastname base.
func UsernameBase(firstName string, lastName string) string {
	return fmt.Sprintf("%s.%s", SanitizeNamePart(firstName), SanitizeNamePart(lastName))
}

// AllocateUsername returns the first principal name of the form
// base@domain, base1@domain, base2@domain, ... that does not collide
// case-insensitively with any of the existing usernames. Comparison is
// against full composed names, a username that merely starts with the base
// does not block it.
func AllocateUsername(usernameBase string, domain string, existingUsernames []string) (string, error) {
	if usernameBase == "" {
		return "", errors.New("username base cannot be empty")
	}
	if domain == "" {
		return "", errors.New("domain cannot be empty")
	}

	base := strings.ToLower(usernameBase)
	taken := make(map[string]struct{}, len(existingUsernames))
	for _, existing := range existingUsernames {
		taken[strings.ToLower(existing)] = struct{}{}
	}

	candidate := fmt.Sprintf("%s@%s", base, domain)
	if _, collides := taken[strings.ToLower(candidate)]; !collides {
		return candidate, nil
	}

	// The taken set is finite so this terminates.
	for suffix := 1; ; suffix++ {
		candidate = fmt.Sprintf("%s%d@%s", base, suffix, domain)
		if _, collides := taken[strings.ToLower(candidate)]; !collides {
			return candidate, nil
		}
	}
}
