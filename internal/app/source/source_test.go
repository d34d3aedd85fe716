package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

const sampleCorpus = `{
	"playlist_id": "PL1",
	"title": "Go Lectures",
	"url": "https://www.youtube.com/playlist?list=PL1",
	"videos": [
		{
			"video_id": "vid1",
			"title": "Intro",
			"language": "en",
			"duration": 120,
			"transcript": [
				{"text": "Welcome everyone.", "start": 0, "duration": 3.5},
				{"text": "Today we cover goroutines.", "start": 3.5, "duration": 4.0}
			]
		},
		{"video_id": "vid2", "title": "No transcript yet"}
	]
}`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlaylist(t *testing.T) {
	playlist, err := LoadPlaylist(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	assert.Equal(t, "PL1", playlist.ID)
	assert.Equal(t, "Go Lectures", playlist.Title)
	require.Len(t, playlist.Videos, 2)
	assert.Equal(t, "Welcome everyone. Today we cover goroutines.", playlist.Videos[0].FullText())
	assert.False(t, playlist.Videos[0].FetchedAt.IsZero(), "missing fetched_at gets stamped")
}

func TestLoadPlaylistMissingFile(t *testing.T) {
	_, err := LoadPlaylist(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPlaylistRejectsMalformedJSON(t *testing.T) {
	_, err := LoadPlaylist(writeCorpus(t, "{not json"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestValidate(t *testing.T) {
	valid := model.Playlist{
		ID: "PL1",
		Videos: []model.Video{
			{ID: "vid1", Transcript: []model.TranscriptSegment{{Text: "hello", Start: 0, Duration: 2}}},
		},
	}

	tests := []struct {
		name   string
		mutate func(p *model.Playlist)
		ok     bool
	}{
		{"valid", func(p *model.Playlist) {}, true},
		{"missing playlist id", func(p *model.Playlist) { p.ID = " " }, false},
		{"no videos", func(p *model.Playlist) { p.Videos = nil }, false},
		{"missing video id", func(p *model.Playlist) { p.Videos[0].ID = "" }, false},
		{"duplicate video id", func(p *model.Playlist) {
			p.Videos = append(p.Videos, model.Video{ID: "vid1"})
		}, false},
		{"negative start", func(p *model.Playlist) { p.Videos[0].Transcript[0].Start = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist := valid
			playlist.Videos = append([]model.Video(nil), valid.Videos...)
			playlist.Videos[0].Transcript = append([]model.TranscriptSegment(nil), valid.Videos[0].Transcript...)
			tt.mutate(&playlist)

			err := Validate(playlist)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			}
		})
	}
}
