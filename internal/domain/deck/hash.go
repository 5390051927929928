package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// normalize cleans a part before hashing so that whitespace and case edits
// do not change a fact's identity.
func normalize(part string) string {
	p := strings.ToLower(part)
	p = strings.ReplaceAll(p, "\r\n", "\n")
	return strings.TrimSpace(p)
}

// FactID derives the stable identifier of a fact from its deck and content.
// Deck names are case-sensitive identities, so only the fact text is folded.
func FactID(deckName, content, back string) string {
	normalized := strings.Join([]string{strings.TrimSpace(deckName), normalize(content), normalize(back)}, "\n")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:16]
}
