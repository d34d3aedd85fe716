// Package summarize generates playlist digests with an adaptive strategy:
// a specialized prompt for single videos, one direct call when the corpus
// fits the context window, and chunked map-reduce for everything larger.
package summarize

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/llm"
	"yt-digest/internal/app/model"
)

// Context budgets, counted in characters (runes). Roughly 4 chars per token.
const (
	// MaxSingleVideoChars caps one video's transcript inside any prompt.
	MaxSingleVideoChars = 2_000_000
	// MaxBatchContextChars is the largest corpus the direct strategy takes.
	MaxBatchContextChars = 3_000_000
	// MapChunkSizeChars caps one map-phase batch.
	MapChunkSizeChars = 2_000_000

	// DefaultMapConcurrency bounds parallel map-phase calls.
	DefaultMapConcurrency = 4

	truncationSuffix = "... (truncated)"
)

// Per-strategy sampling temperatures.
const (
	singleTemperature = 0.3
	directTemperature = 0.4
	mapTemperature    = 0.3
	reduceTemperature = 0.4
)

// Compressor shrinks oversized corpora before a strategy is chosen. The
// returned flag reports whether compression was applied.
type Compressor interface {
	Compress(videos []model.Video) ([]model.Video, bool)
}

// Logger is the subset of logging the engine needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// Config tunes the engine. Zero fields use the package defaults.
type Config struct {
	MaxSingleVideoChars  int
	MaxBatchContextChars int
	MapChunkSizeChars    int
	MapConcurrency       int
}

// Engine selects and runs the summarization strategy for a corpus.
type Engine struct {
	chat       llm.ChatProvider
	compressor Compressor
	cfg        Config
	logger     Logger
}

// NewEngine wires an engine. A nil compressor disables extractive
// compression; a nil logger disables logging.
func NewEngine(chat llm.ChatProvider, compressor Compressor, cfg Config, logger Logger) *Engine {
	if cfg.MaxSingleVideoChars <= 0 {
		cfg.MaxSingleVideoChars = MaxSingleVideoChars
	}
	if cfg.MaxBatchContextChars <= 0 {
		cfg.MaxBatchContextChars = MaxBatchContextChars
	}
	if cfg.MapChunkSizeChars <= 0 {
		cfg.MapChunkSizeChars = MapChunkSizeChars
	}
	if cfg.MapConcurrency <= 0 {
		cfg.MapConcurrency = DefaultMapConcurrency
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{chat: chat, compressor: compressor, cfg: cfg, logger: logger}
}

// SelectStrategy picks the summarization path for a corpus. One video always
// takes the single-video path; a corpus that fits maxBatchChars (boundary
// included) is summarized in one direct call; anything larger is map-reduced.
func SelectStrategy(videoCount, totalChars, maxBatchChars int) model.Strategy {
	if videoCount == 1 {
		return model.StrategySingle
	}
	if totalChars <= maxBatchChars {
		return model.StrategyDirect
	}
	return model.StrategyMapReduce
}

// SummarizePlaylist generates a digest for the playlist. Videos without
// transcripts are ignored; a corpus with no transcript text at all fails
// with ErrEmptyCorpus before any model call.
func (e *Engine) SummarizePlaylist(ctx context.Context, playlist model.Playlist) (model.Digest, error) {
	digest := model.Digest{PlaylistID: playlist.ID, CreatedAt: time.Now().UTC()}

	var valid []model.Video
	for _, video := range playlist.Videos {
		if video.HasTranscript() {
			valid = append(valid, video)
		}
	}
	if len(valid) == 0 {
		return digest, apperrors.ErrEmptyCorpus
	}

	start := time.Now()

	compressed := valid
	if e.compressor != nil {
		compressed, digest.Compressed = e.compressor.Compress(valid)
	}

	totalChars := 0
	for _, video := range compressed {
		totalChars += utf8.RuneCountInString(video.FullText())
	}
	digest.VideoCount = len(compressed)
	digest.TotalChars = totalChars
	digest.Strategy = SelectStrategy(len(compressed), totalChars, e.cfg.MaxBatchContextChars)

	e.logger.Info("strategy selected",
		"playlist_id", playlist.ID,
		"strategy", digest.Strategy,
		"videos", digest.VideoCount,
		"total_chars", totalChars,
		"compressed", digest.Compressed)

	var summary string
	var calls int
	var err error
	switch digest.Strategy {
	case model.StrategySingle:
		summary, err = e.summarizeSingle(ctx, compressed[0])
		calls = 1
	case model.StrategyDirect:
		summary, err = e.summarizeDirect(ctx, playlist.Title, compressed)
		calls = 1
	default:
		summary, calls, err = e.summarizeMapReduce(ctx, playlist.Title, compressed)
	}
	if err != nil {
		return digest, err
	}

	digest.Summary = summary
	digest.LLMCalls = calls
	digest.Elapsed = time.Since(start).Seconds()
	return digest, nil
}

func (e *Engine) summarizeSingle(ctx context.Context, video model.Video) (string, error) {
	text, truncated := truncateRunes(video.FullText(), e.cfg.MaxSingleVideoChars)
	if truncated {
		e.logger.Warn("transcript truncated", "video_id", video.ID)
	}

	prompt := fmt.Sprintf("Video Title: %s\n\nTranscript:\n%s", videoTitle(video), text)
	return e.chat.GenerateText(ctx,
		llm.SystemAndUser(singleVideoPrompt, prompt),
		llm.Options{Temperature: singleTemperature})
}

func (e *Engine) summarizeDirect(ctx context.Context, playlistTitle string, videos []model.Video) (string, error) {
	prompt := fmt.Sprintf(
		"Playlist Title: %s\nVideo Count: %d\n\n--- BEGIN TRANSCRIPTS ---\n\n%s\n\n--- END TRANSCRIPTS ---",
		defaultTitle(playlistTitle, "Untitled Playlist"), len(videos), e.buildContext(videos))
	return e.chat.GenerateText(ctx,
		llm.SystemAndUser(directBatchPrompt, prompt),
		llm.Options{Temperature: directTemperature})
}

func (e *Engine) summarizeMapReduce(ctx context.Context, playlistTitle string, videos []model.Video) (string, int, error) {
	batches := batchVideos(videos, e.cfg.MapChunkSizeChars)
	e.logger.Info("map phase", "batches", len(batches), "videos", len(videos))

	summaries := make([]string, len(batches))
	errs := make([]error, len(batches))
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.cfg.MapConcurrency)
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []model.Video) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			summaries[i], errs[i] = e.summarizeBatch(ctx, batch)
		}(i, batch)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return "", 0, apperrors.Wrapf(err, "map phase part %d/%d", i+1, len(batches))
		}
	}

	e.logger.Info("reduce phase", "summaries", len(summaries))
	reduced, err := e.reduceSummaries(ctx, playlistTitle, summaries)
	if err != nil {
		return "", 0, err
	}
	return reduced, len(batches) + 1, nil
}

func (e *Engine) summarizeBatch(ctx context.Context, videos []model.Video) (string, error) {
	prompt := fmt.Sprintf("Videos Segment:\n\n%s", e.buildContext(videos))
	return e.chat.GenerateText(ctx,
		llm.SystemAndUser(mapPhasePrompt, prompt),
		llm.Options{Temperature: mapTemperature})
}

func (e *Engine) reduceSummaries(ctx context.Context, playlistTitle string, summaries []string) (string, error) {
	blocks := make([]string, len(summaries))
	for i, summary := range summaries {
		blocks[i] = fmt.Sprintf("### Part %d/%d\n%s", i+1, len(summaries), summary)
	}

	prompt := fmt.Sprintf("Playlist: %s\nNumber of Videos: %d\n\nIndividual Video Summaries:\n\n%s",
		defaultTitle(playlistTitle, "Untitled Playlist"), len(summaries), strings.Join(blocks, "\n\n"))
	return e.chat.GenerateText(ctx,
		llm.SystemAndUser(reducePhasePrompt, prompt),
		llm.Options{Temperature: reduceTemperature})
}

// buildContext renders videos as "### Video: {title}" blocks, truncating any
// single transcript that would blow the per-video budget.
func (e *Engine) buildContext(videos []model.Video) string {
	parts := make([]string, 0, len(videos))
	for _, video := range videos {
		text, truncated := truncateRunes(video.FullText(), e.cfg.MaxSingleVideoChars)
		if truncated {
			e.logger.Warn("transcript truncated", "video_id", video.ID)
		}
		parts = append(parts, fmt.Sprintf("### Video: %s\n%s", videoTitle(video), text))
	}
	return strings.Join(parts, "\n\n")
}

// batchVideos groups videos greedily: a batch closes when it is non-empty
// and the next video would push it past maxChars. One oversized video still
// gets its own batch.
func batchVideos(videos []model.Video, maxChars int) [][]model.Video {
	var batches [][]model.Video
	var current []model.Video
	currentSize := 0

	for _, video := range videos {
		videoLen := utf8.RuneCountInString(video.FullText())
		if len(current) > 0 && currentSize+videoLen > maxChars {
			batches = append(batches, current)
			current = nil
			currentSize = 0
		}
		current = append(current, video)
		currentSize += videoLen
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}

// truncateRunes cuts text to max runes, marking the cut.
func truncateRunes(text string, max int) (string, bool) {
	if utf8.RuneCountInString(text) <= max {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:max]) + truncationSuffix, true
}

func videoTitle(video model.Video) string {
	return defaultTitle(video.Title, "Untitled")
}

func defaultTitle(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}
