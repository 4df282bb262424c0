package medals

import (
	"strconv"
	"strings"
	"time"

	"fantasyolympics-backend/lib/textutil"
	"fantasyolympics-backend/lib/vocab"
)

// Normalizer converts raw discipline/country/medal/timestamp values
// into canonical form. All of its methods are total and idempotent:
// feeding a canonical value back in returns it unchanged.
type Normalizer struct {
	vocab *vocab.Vocabulary
}

func NewNormalizer(v *vocab.Vocabulary) Normalizer {
	return Normalizer{vocab: v}
}

// canonicalizes a raw discipline name, case-insensitively. Unknown
// names are title-cased rather than rejected since upstream naming is
// expected to eventually stabilize into the canonical set.
func (n Normalizer) Discipline(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonical, ok := n.vocab.Discipline(raw); ok {
		return canonical
	}
	return textutil.TitleCaseWords(raw)
}

// resolves a raw NOC code or a full country/team name to an
// upper-cased NOC code. Returns "" when the value is neither.
func (n Normalizer) Country(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if len(raw) == 3 {
		return strings.ToUpper(raw)
	}
	if noc, ok := n.vocab.CountryNOC(raw); ok {
		return noc
	}
	return ""
}

// maps a medal designation to its letter. Accepts medal names
// (case-insensitive substring), single-letter codes, and ordinal
// ranks 1/2/3 in string or numeric form. Anything else returns
// ok == false and the candidate record is dropped by the caller.
func (n Normalizer) Medal(raw any) (Medal, bool) {
	var s string
	switch value := raw.(type) {
	case nil:
		return "", false
	case string:
		s = value
	case int:
		s = strconv.Itoa(value)
	case int64:
		s = strconv.FormatInt(value, 10)
	case float64:
		// json numbers decode to float64
		s = strconv.FormatInt(int64(value), 10)
	default:
		return "", false
	}

	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "gold"):
		return Gold, true
	case strings.Contains(s, "silver"):
		return Silver, true
	case strings.Contains(s, "bronze"):
		return Bronze, true
	}
	switch s {
	case "g", "1":
		return Gold, true
	case "s", "2":
		return Silver, true
	case "b", "3":
		return Bronze, true
	}
	return "", false
}

// coerces a raw timestamp (RFC 3339 string or unix milliseconds) to
// an instant, falling back to the given batch placeholder so that
// re-runs over the same static source stay reproducible
func (n Normalizer) Timestamp(raw any, fallback time.Time) time.Time {
	switch value := raw.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
				return t.UTC()
			}
		}
	case float64:
		if value > 0 {
			return time.UnixMilli(int64(value)).UTC()
		}
	case int64:
		if value > 0 {
			return time.UnixMilli(value).UTC()
		}
	case time.Time:
		return value.UTC()
	}
	return fallback
}
