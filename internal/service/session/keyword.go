package session

import "regexp"

// KeywordTrigger is a pure predicate: case-insensitive whole-word match
// against a fixed keyword. It has no side effects of its own; the caller
// fires the recognition trigger on a match.
type KeywordTrigger struct {
	keyword string
	re      *regexp.Regexp
}

func NewKeywordTrigger(keyword string) *KeywordTrigger {
	return &KeywordTrigger{
		keyword: keyword,
		re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`),
	}
}

func (k *KeywordTrigger) Keyword() string {
	return k.keyword
}

func (k *KeywordTrigger) Detect(text string) bool {
	if text == "" || k.keyword == "" {
		return false
	}
	return k.re.MatchString(text)
}
