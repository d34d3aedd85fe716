// Package testutil provides shared corpus fixtures for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"yt-digest/internal/app/model"
)

// sentencePool feeds deterministic transcript text. Sentences rotate so
// chunk and similarity tests see varied, non-repeating prose.
var sentencePool = []string{
	"The scheduler multiplexes goroutines onto operating system threads.",
	"Channels carry typed values between concurrent functions.",
	"A select statement waits on multiple channel operations at once.",
	"Interfaces describe behavior rather than concrete structure.",
	"The race detector instruments memory accesses during tests.",
	"Context values propagate deadlines across API boundaries.",
	"Slices share backing arrays until an append forces growth.",
	"Maps are not safe for concurrent writes without locking.",
}

// Sentences returns n deterministic sentences from the pool.
func Sentences(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = sentencePool[i%len(sentencePool)]
	}
	return out
}

// TextOfLength builds deterministic prose of at least chars characters.
func TextOfLength(chars int) string {
	var b strings.Builder
	for i := 0; b.Len() < chars; i++ {
		b.WriteString(sentencePool[i%len(sentencePool)])
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// Video builds one transcribed video. Each sentence becomes a ten-second
// segment so timestamp math stays predictable.
func Video(id string, sentenceCount int) model.Video {
	video := model.Video{
		ID:        id,
		Title:     "Video " + id,
		URL:       "https://youtu.be/" + id,
		Language:  "en",
		Duration:  sentenceCount * 10,
		FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for i, sentence := range Sentences(sentenceCount) {
		video.Transcript = append(video.Transcript, model.TranscriptSegment{
			Text:     sentence,
			Start:    float64(i * 10),
			Duration: 10,
		})
	}
	return video
}

// Playlist builds a playlist of videoCount videos with sentencesPerVideo
// segments each.
func Playlist(id string, videoCount, sentencesPerVideo int) model.Playlist {
	playlist := model.Playlist{
		ID:    id,
		Title: "Playlist " + id,
		URL:   "https://www.youtube.com/playlist?list=" + id,
	}
	for i := 0; i < videoCount; i++ {
		playlist.Videos = append(playlist.Videos, Video(fmt.Sprintf("%s-vid%02d", id, i), sentencesPerVideo))
	}
	return playlist
}

// Digest builds a finished digest for the playlist.
func Digest(playlistID string) model.Digest {
	return model.Digest{
		PlaylistID: playlistID,
		Strategy:   model.StrategyDirect,
		Summary:    "## Overview\n\nThe playlist walks through Go concurrency primitives.",
		VideoCount: 3,
		TotalChars: 1800,
		LLMCalls:   1,
		Elapsed:    2.5,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WriteCorpusFile writes the playlist as a JSON corpus file under a temp dir
// and returns its path.
func WriteCorpusFile(t *testing.T, playlist model.Playlist) string {
	t.Helper()
	data, err := json.Marshal(playlist)
	if err != nil {
		t.Fatalf("marshal corpus: %v", err)
	}
	path := filepath.Join(t.TempDir(), playlist.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}
	return path
}
