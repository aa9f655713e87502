package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sandevgo/cuebot/internal/core"
)

// fingerprintVersion is baked into every digest so a change to the input
// layout invalidates old cache entries instead of colliding with them.
const fingerprintVersion = "v1"

// Fingerprint derives the cache key from the last nSeg segments (speaker and
// text only) and the last nSug previously produced suggestion texts. Inputs
// are length-prefixed so adjacent fields can never run together.
func Fingerprint(segments []core.Segment, suggestionTexts []string, nSeg, nSug int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s", fingerprintVersion)

	start := 0
	if nSeg > 0 && len(segments) > nSeg {
		start = len(segments) - nSeg
	}
	for _, seg := range segments[start:] {
		fmt.Fprintf(h, "|s:%d:%d:%s", seg.Speaker, len(seg.Text), seg.Text)
	}

	start = 0
	if nSug > 0 && len(suggestionTexts) > nSug {
		start = len(suggestionTexts) - nSug
	}
	for _, text := range suggestionTexts[start:] {
		fmt.Fprintf(h, "|g:%d:%s", len(text), text)
	}

	return hex.EncodeToString(h.Sum(nil))
}
