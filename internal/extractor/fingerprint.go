package extractor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest.
// Collision resistance at this scale is not a goal; determinism is.
const fingerprintLen = 16

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Fingerprint derives a stable identity key for a task so repeated
// extraction runs over the same summary dedupe to the same stored record.
// The same (sourceType, sourceID, title) triple always yields the same
// 16-hex-character string, across calls and process restarts.
func Fingerprint(sourceType SourceType, sourceID, title string) string {
	payload := fmt.Sprintf("%s:%s:%s", sourceType, sourceID, NormalizeTitle(title))
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// NormalizeTitle lowercases, trims and collapses internal whitespace runs to
// single spaces. Both the fingerprint and the per-call dedup compare titles
// through this.
func NormalizeTitle(title string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	return whitespaceRunRe.ReplaceAllString(normalized, " ")
}
