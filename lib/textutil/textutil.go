package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var footnoteRegex = regexp.MustCompile(`\[[^\]]*\]`)

// strips wikipedia-style footnote markers ("[a]", "[12]", "[edit]")
// and collapses the remaining whitespace
func StripFootnotes(s string) string {
	s = footnoteRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.Trim(s, " \n\t")
}

// whitespace-to-hyphen slugification used by identity building
func Slugify(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.Trim(s, " \n\t"), "-")
}

func TitleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
