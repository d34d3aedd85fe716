package textrank

import (
	"strings"
	"unicode"
)

// Abbreviations that end with a period without closing a sentence, keyed by
// resolved language name. Lowercase, stored without the trailing dot.
var abbreviations = map[string]map[string]bool{
	"english": wordSet("mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st",
		"vs", "etc", "inc", "ltd", "co", "corp", "dept", "est", "fig",
		"gen", "gov", "approx", "min", "max", "no", "p", "pp", "vol", "rev"),
	"german": wordSet("dr", "prof", "nr", "bzw", "usw", "ca", "evtl", "ggf",
		"inkl", "mind", "sog", "str", "tel", "vgl", "zb"),
	"french": wordSet("m", "mme", "mlle", "dr", "st", "ste", "etc", "ex",
		"fig", "av", "boul", "p", "pp"),
	"spanish": wordSet("sr", "sra", "srta", "dr", "dra", "prof", "gral",
		"av", "avda", "etc", "ud", "uds", "pág"),
	"portuguese": wordSet("sr", "sra", "dr", "dra", "prof", "av", "etc",
		"ex", "pág", "tel"),
	"italian": wordSet("sig", "dott", "prof", "avv", "ing", "ecc", "es",
		"pag", "tel"),
	"dutch": wordSet("dhr", "mevr", "dr", "prof", "bv", "nl", "nr", "tel",
		"enz", "bijv"),
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// SplitSentences segments text into sentences for a resolved language,
// keeping abbreviations like "Dr." and single-letter initials attached to
// their sentence. Sentences come back trimmed and non-empty.
func SplitSentences(text, language string) []string {
	return splitAtBoundaries(text, abbreviations[language], true)
}

// FallbackSplit splits after runs of sentence terminators followed by
// whitespace. It is the language-agnostic degraded path and intentionally
// applies no abbreviation handling.
func FallbackSplit(text string) []string {
	return splitAtBoundaries(text, nil, false)
}

func splitAtBoundaries(text string, abbrevs map[string]bool, guarded bool) []string {
	runes := []rune(text)
	var sentences []string

	appendSentence := func(start, end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			i++
			continue
		}

		// Extend over a terminator run like "!?" or "...".
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		// The guarded splitter lets closing quotes and brackets ride along.
		if guarded {
			for end+1 < len(runes) && isClosing(runes[end+1]) {
				end++
			}
		}

		atEnd := end+1 >= len(runes)
		if !atEnd && !unicode.IsSpace(runes[end+1]) {
			i = end + 1
			continue
		}

		// A lone period after an abbreviation or initial is not a boundary.
		if guarded && r == '.' && end == i {
			word := lastWord(runes, start, i)
			lower := strings.ToLower(word)
			if abbrevs[lower] || isInitial(word) {
				i = end + 1
				continue
			}
		}

		appendSentence(start, end+1)
		i = end + 1
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
	}

	if start < len(runes) {
		appendSentence(start, len(runes))
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

// lastWord returns the letter run immediately before position end.
func lastWord(runes []rune, start, end int) string {
	j := end
	for j > start && unicode.IsLetter(runes[j-1]) {
		j--
	}
	return string(runes[j:end])
}

func isInitial(word string) bool {
	r := []rune(word)
	return len(r) == 1 && unicode.IsUpper(r[0])
}
