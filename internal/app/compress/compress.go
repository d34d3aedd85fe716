// Package compress shrinks oversized transcript corpora before they reach a
// language model. It extracts the most central sentences per video and is
// purely computational, so running it unconditionally costs nothing on small
// corpora.
package compress

import (
	"sync"
	"unicode/utf8"

	"yt-digest/internal/app/model"
)

// Defaults mirror the engine configuration.
const (
	DefaultThresholdChars    = 100_000
	DefaultRatio             = 0.15
	DefaultMinTextLength     = 500
	DefaultSentencesPerVideo = 50

	// Bounded fan-out for per-video extraction.
	extractionWorkers = 4
)

// Extractor selects key sentences from a text. Implemented by textrank.
type Extractor interface {
	ExtractKeySentences(text, language string, sentenceCount int) string
	SentenceCount(text string) int
}

// Logger is the narrow logging interface this package consumes.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

// Config tunes the compression gate and ratio.
type Config struct {
	// ThresholdChars activates compression only for corpora at or above
	// this total size. Below it Compress is a no-op.
	ThresholdChars int
	// Ratio is the target share of sentences kept per video.
	Ratio float64
	// MinTextLength exempts short transcripts from extraction.
	MinTextLength int
	// SentencesPerVideo caps the ratio-derived sentence target.
	SentencesPerVideo int
}

// Compressor applies extractive compression across a corpus. Video order and
// count are always preserved; a video that cannot be compressed passes
// through unchanged.
type Compressor struct {
	extractor         Extractor
	thresholdChars    int
	ratio             float64
	minTextLength     int
	sentencesPerVideo int
	logger            Logger
}

// NewCompressor creates a compressor. Zero config fields use the defaults.
func NewCompressor(extractor Extractor, cfg Config, logger Logger) *Compressor {
	if cfg.ThresholdChars <= 0 {
		cfg.ThresholdChars = DefaultThresholdChars
	}
	if cfg.Ratio <= 0 {
		cfg.Ratio = DefaultRatio
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = DefaultMinTextLength
	}
	if cfg.SentencesPerVideo <= 0 {
		cfg.SentencesPerVideo = DefaultSentencesPerVideo
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Compressor{
		extractor:         extractor,
		thresholdChars:    cfg.ThresholdChars,
		ratio:             cfg.Ratio,
		minTextLength:     cfg.MinTextLength,
		sentencesPerVideo: cfg.SentencesPerVideo,
		logger:            logger,
	}
}

// Compress replaces each video's transcript with its key sentences when the
// corpus is large enough to warrant it. The second return value reports
// whether compression ran. Below the activation threshold the input slice is
// returned untouched with no extractor calls at all.
func (c *Compressor) Compress(videos []model.Video) ([]model.Video, bool) {
	totalChars := 0
	for _, v := range videos {
		totalChars += utf8.RuneCountInString(v.FullText())
	}
	if totalChars < c.thresholdChars {
		return videos, false
	}

	compressed := make([]model.Video, len(videos))
	var wg sync.WaitGroup
	sem := make(chan struct{}, extractionWorkers)

	for i, video := range videos {
		wg.Add(1)
		go func(i int, video model.Video) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			compressed[i] = c.compressVideo(video)
		}(i, video)
	}
	wg.Wait()

	compressedChars := 0
	for _, v := range compressed {
		compressedChars += utf8.RuneCountInString(v.FullText())
	}
	c.logger.Info("compressed corpus",
		"videos", len(videos),
		"original_chars", totalChars,
		"compressed_chars", compressedChars,
	)

	return compressed, true
}

// compressVideo extracts key sentences from one video. Videos without a
// transcript or below the minimum length pass through unchanged.
func (c *Compressor) compressVideo(video model.Video) model.Video {
	if !video.HasTranscript() {
		return video
	}

	text := video.FullText()
	if utf8.RuneCountInString(text) < c.minTextLength {
		return video
	}

	target := int(float64(c.extractor.SentenceCount(text)) * c.ratio)
	if target < 1 {
		target = 1
	}
	if target > c.sentencesPerVideo {
		target = c.sentencesPerVideo
	}

	extracted := c.extractor.ExtractKeySentences(text, video.Language, target)
	if extracted == "" || len(extracted) > len(text) {
		return video
	}

	// Replace the transcript with one synthetic segment spanning the
	// original time range so FullText keeps working downstream.
	start := video.Transcript[0].Start
	end := video.Transcript[len(video.Transcript)-1].End()
	video.Transcript = []model.TranscriptSegment{{
		Text:     extracted,
		Start:    start,
		Duration: end - start,
	}}
	return video
}
