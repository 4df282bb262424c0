// Package vocab holds the canonical vocabulary of the winter-games
// results pipeline: the recognized discipline names, the NOC codes of
// competing delegations, and the country/team aliases that resolve to
// them. A Vocabulary is immutable after construction and is passed
// explicitly into normalizers and extractors.
package vocab

import (
	"strings"

	"fantasyolympics-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Vocabulary struct {
	disciplines map[string]string
	nocByAlias  map[string]string
	nocCodes    map[string]bool
}

// minimum JaroWinkler similarity for a country name to resolve
// through the fuzzy fallback
const fuzzyCountryThreshold = 0.93

func Default() *Vocabulary {
	v := &Vocabulary{
		disciplines: map[string]string{},
		nocByAlias:  map[string]string{},
		nocCodes:    map[string]bool{},
	}
	for _, d := range disciplines {
		v.disciplines[strings.ToLower(d)] = d
	}
	for alias, noc := range countryAliases {
		v.nocByAlias[textutil.NormalizeName(alias)] = noc
		v.nocCodes[noc] = true
	}
	return v
}

// resolves a raw discipline name against the canonical set,
// case-insensitively. ok is false on a miss.
func (v *Vocabulary) Discipline(raw string) (string, bool) {
	canonical, ok := v.disciplines[strings.ToLower(strings.TrimSpace(raw))]
	return canonical, ok
}

func (v *Vocabulary) IsNOC(code string) bool {
	return v.nocCodes[strings.ToUpper(strings.TrimSpace(code))]
}

// resolves a full country or team name to its NOC code through the
// alias table, falling back to a fuzzy best-match for near-miss
// spellings ("Republic of  Korea", "Czechia").
func (v *Vocabulary) CountryNOC(name string) (string, bool) {
	key := textutil.NormalizeName(name)
	if key == "" {
		return "", false
	}
	if noc, ok := v.nocByAlias[key]; ok {
		return noc, true
	}

	bestSimilarity := 0.0
	bestNOC := ""
	for alias, noc := range v.nocByAlias {
		similarity := matchr.JaroWinkler(key, alias, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestNOC = noc
		}
	}
	if bestSimilarity >= fuzzyCountryThreshold {
		return bestNOC, true
	}
	return "", false
}

// scans free text for any known country name, longest alias first,
// used as the last-resort fallback on wikitable cells
func (v *Vocabulary) FindCountryInText(text string) (string, bool) {
	key := textutil.NormalizeName(text)
	if key == "" {
		return "", false
	}

	bestLen := 0
	bestNOC := ""
	for alias, noc := range v.nocByAlias {
		if len(alias) > bestLen && strings.Contains(key, alias) {
			bestLen = len(alias)
			bestNOC = noc
		}
	}
	if bestNOC == "" {
		return "", false
	}
	return bestNOC, true
}
