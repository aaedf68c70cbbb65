// internal/services/search_service.go
package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cavea-app/cavea-backend/internal/models"
	"github.com/cavea-app/cavea-backend/internal/store"
)

// MaxSearchResults caps every catalog search; callers wanting fewer
// truncate on their side.
const MaxSearchResults = 15

var (
	queryVolumeRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(cl|l)\b`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// stripDiacritics removes combining marks after NFD decomposition, so
// "pétillant" and "petillant" normalize identically.
var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// SearchService matches free-text queries against the canonical catalog
// and the member directory by substring containment over normalized text.
// It never errors: an unmatched or empty query yields an empty list.
type SearchService struct {
	bottles *store.BottleStore
	users   *store.UserStore
}

func NewSearchService(bottles *store.BottleStore, users *store.UserStore) *SearchService {
	return &SearchService{bottles: bottles, users: users}
}

// SearchBottles returns up to MaxSearchResults matches in catalog order.
// A result is strict when the query names the bottle exactly (normalized
// text equality, or raw producer/name equality ignoring case), fuzzy
// otherwise.
func (s *SearchService) SearchBottles(query string) []models.SearchResult {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}
	}

	// Rewrite "70cl"/"1l" tokens into "700ml" before the text pipeline so
	// either unit spelling normalizes the same way. Volume is not part of
	// the searchable text today, so this rewrite does not change match
	// outcomes; it is kept for parity with the query grammar.
	normalizedQuery := NormalizeText(NormalizeVolumeTokens(query))

	results := make([]models.SearchResult, 0, MaxSearchResults)
	for _, b := range s.bottles.List() {
		text := NormalizeText(searchableText(b))
		if !strings.Contains(text, normalizedQuery) {
			continue
		}
		confidence := models.MatchFuzzy
		if text == normalizedQuery ||
			strings.EqualFold(b.Producer, query) ||
			strings.EqualFold(b.Name, query) {
			confidence = models.MatchStrict
		}
		results = append(results, models.SearchResult{Bottle: b, Confidence: confidence})
		if len(results) == MaxSearchResults {
			break
		}
	}
	return results
}

// SearchUsers matches the member directory on username and display name
// with the same pipeline and cap as the bottle search.
func (s *SearchService) SearchUsers(query string) []models.UserSearchResult {
	if strings.TrimSpace(query) == "" {
		return []models.UserSearchResult{}
	}

	normalizedQuery := NormalizeText(query)

	results := make([]models.UserSearchResult, 0, MaxSearchResults)
	for _, u := range s.users.List() {
		text := NormalizeText(u.Username + " " + u.DisplayName)
		if !strings.Contains(text, normalizedQuery) {
			continue
		}
		confidence := models.MatchFuzzy
		if strings.EqualFold(u.Username, query) || strings.EqualFold(u.DisplayName, query) {
			confidence = models.MatchStrict
		}
		results = append(results, models.UserSearchResult{User: u, Confidence: confidence})
		if len(results) == MaxSearchResults {
			break
		}
	}
	return results
}

// searchableText concatenates the identity fields a query can hit. The
// bottle's volume is deliberately not included; see NormalizeVolumeTokens.
func searchableText(b models.CanonicalBottle) string {
	return strings.Join([]string{
		b.Producer, b.Name, b.Vintage, b.AgeStatement, b.Region, b.Category,
	}, " ")
}

// NormalizeText lowercases, strips diacritics, replaces punctuation with
// spaces and collapses whitespace.
func NormalizeText(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		stripped = lowered
	}
	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
}

// NormalizeVolumeTokens rewrites centiliter and liter volume tokens to a
// canonical "<n>ml" form, e.g. "70cl" -> "700ml", "1l" -> "1000ml".
func NormalizeVolumeTokens(s string) string {
	return queryVolumeRe.ReplaceAllStringFunc(s, func(token string) string {
		m := queryVolumeRe.FindStringSubmatch(token)
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			return token
		}
		factor := 10.0
		if strings.EqualFold(m[2], "l") {
			factor = 1000.0
		}
		return strconv.Itoa(int(value*factor)) + "ml"
	})
}
