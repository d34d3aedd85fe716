package textrank

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Graph ranking parameters.
const (
	dampingFactor        = 0.85
	convergenceThreshold = 1e-4
	maxIterations        = 100
)

// Selection defaults.
const (
	DefaultSentencesPerVideo = 50
	DefaultFallbackSentences = 30
)

// Logger is the narrow logging interface this package consumes.
type Logger interface {
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

// Config tunes sentence selection.
type Config struct {
	// SentencesPerVideo is the count used when the caller does not request one.
	SentencesPerVideo int
	// FallbackSentences is the minimum selection on the degraded path.
	FallbackSentences int
}

// Extractor selects the most central sentences of a text by ranking a
// sentence-similarity graph. Selection never reorders: whatever ranks
// highest is emitted in original document order.
type Extractor struct {
	sentencesPerVideo int
	fallbackSentences int
	logger            Logger
}

// NewExtractor creates an extractor. Zero config fields use the defaults;
// a nil logger silences degradation warnings.
func NewExtractor(cfg Config, logger Logger) *Extractor {
	if cfg.SentencesPerVideo <= 0 {
		cfg.SentencesPerVideo = DefaultSentencesPerVideo
	}
	if cfg.FallbackSentences <= 0 {
		cfg.FallbackSentences = DefaultFallbackSentences
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Extractor{
		sentencesPerVideo: cfg.SentencesPerVideo,
		fallbackSentences: cfg.FallbackSentences,
		logger:            logger,
	}
}

// ExtractKeySentences returns the sentenceCount most central sentences of
// text, joined with single spaces in original order. An empty language
// defaults to english; unsupported languages degrade to the regex-style
// splitter with position/length scoring. Texts with no more sentences than
// requested come back unchanged.
func (e *Extractor) ExtractKeySentences(text, language string, sentenceCount int) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	count := sentenceCount
	if count <= 0 {
		count = e.sentencesPerVideo
	}

	if language == "" {
		language = "en"
	}
	lang, supported := ResolveLanguage(language)
	if !supported {
		e.logger.Warn("language not supported for sentence ranking, using fallback splitter",
			"language", language)
		return e.extractWithFallback(text, count)
	}

	sentences := SplitSentences(text, lang)
	if len(sentences) <= count {
		return text
	}

	scores := rankSentences(sentences)
	return joinSelected(sentences, topIndices(scores, count))
}

// SentenceCount reports how many sentences the degraded splitter sees in
// text. The compressor uses it to derive ratio-based targets.
func (e *Extractor) SentenceCount(text string) int {
	return len(FallbackSplit(text))
}

// extractWithFallback scores sentences by position and length. The selection
// is bounded below by the fallback count so degraded languages keep enough
// context.
func (e *Extractor) extractWithFallback(text string, count int) string {
	if count < e.fallbackSentences {
		count = e.fallbackSentences
	}

	sentences := FallbackSplit(text)
	if len(sentences) <= count {
		return text
	}

	total := float64(len(sentences))
	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		positionScore := 1.0 - (math.Abs(float64(i)-total/2)/(total/2))*0.3
		lengthScore := math.Min(float64(utf8.RuneCountInString(sentence))/200.0, 1.0)
		scores[i] = positionScore*0.4 + lengthScore*0.6
	}

	return joinSelected(sentences, topIndices(scores, count))
}

// rankSentences runs the centrality iteration over the sentence graph.
// Edge weight between two sentences is the count of shared terms normalized
// by the log of both sentence lengths.
func rankSentences(sentences []string) []float64 {
	n := len(sentences)
	tokens := make([][]string, n)
	termSets := make([]map[string]bool, n)
	for i, s := range sentences {
		tokens[i] = tokenize(s)
		termSets[i] = toSet(tokens[i])
	}

	weights := make([][]float64, n)
	outSums := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w := sentenceSimilarity(tokens[i], termSets[i], tokens[j], termSets[j])
			weights[i][j] = w
			outSums[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	base := (1.0 - dampingFactor) / float64(n)
	for iter := 0; iter < maxIterations; iter++ {
		next := make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				if weights[i][j] == 0 || outSums[i] == 0 {
					continue
				}
				sum += scores[i] * weights[i][j] / outSums[i]
			}
			next[j] = base + dampingFactor*sum
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores = next
		if delta < convergenceThreshold {
			break
		}
	}
	return scores
}

// sentenceSimilarity counts shared terms normalized by log sentence lengths.
// Sentences too short to normalize get no edge.
func sentenceSimilarity(a []string, aSet map[string]bool, b []string, bSet map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	common := 0
	for term := range aSet {
		if bSet[term] {
			common++
		}
	}
	if common == 0 {
		return 0
	}

	denom := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if denom == 0 {
		return 0
	}
	return float64(common) / denom
}

// topIndices returns the indices of the count best scores in original order.
// Ties keep document order.
func topIndices(scores []float64, count int) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if count > len(indices) {
		count = len(indices)
	}
	selected := make([]int, count)
	copy(selected, indices[:count])
	sort.Ints(selected)
	return selected
}

func joinSelected(sentences []string, indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, sentences[i])
	}
	return strings.Join(parts, " ")
}

func tokenize(sentence string) []string {
	return strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
