package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TranscriptSegment is one timed caption line of a video transcript.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the segment end offset in seconds.
func (s TranscriptSegment) End() float64 {
	return s.Start + s.Duration
}

// Video is a single video with its transcript.
type Video struct {
	ID         string              `json:"video_id" db:"video_id"`
	Title      string              `json:"title" db:"title"`
	URL        string              `json:"url" db:"url"`
	Language   string              `json:"language" db:"language"`
	Duration   int                 `json:"duration" db:"duration"`
	Transcript []TranscriptSegment `json:"transcript,omitempty"`
	FetchedAt  time.Time           `json:"fetched_at,omitempty" db:"fetched_at"`
}

// FullText joins all transcript segments with single spaces.
func (v Video) FullText() string {
	if len(v.Transcript) == 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Transcript))
	for _, seg := range v.Transcript {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

// HasTranscript reports whether the video carries any transcript text.
func (v Video) HasTranscript() bool {
	for _, seg := range v.Transcript {
		if strings.TrimSpace(seg.Text) != "" {
			return true
		}
	}
	return false
}

// Playlist groups the videos that share one retrieval namespace.
type Playlist struct {
	ID     string  `json:"playlist_id" db:"playlist_id"`
	Title  string  `json:"title" db:"title"`
	URL    string  `json:"url" db:"url"`
	Videos []Video `json:"videos,omitempty"`
}

// VideoCount returns the number of videos in the playlist.
func (p Playlist) VideoCount() int {
	return len(p.Videos)
}

// TotalChars sums transcript text lengths across all videos. Lengths are
// counted in runes so multi-byte scripts are not over-counted.
func (p Playlist) TotalChars() int {
	total := 0
	for _, v := range p.Videos {
		total += utf8.RuneCountInString(v.FullText())
	}
	return total
}
