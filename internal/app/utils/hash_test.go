package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yt-digest/internal/app/model"
)

func fingerprintPlaylist(texts ...string) model.Playlist {
	playlist := model.Playlist{ID: "PL1"}
	for i, text := range texts {
		playlist.Videos = append(playlist.Videos, model.Video{
			ID:         string(rune('a' + i)),
			Transcript: []model.TranscriptSegment{{Text: text}},
		})
	}
	return playlist
}

func TestCorpusFingerprintStable(t *testing.T) {
	playlist := fingerprintPlaylist("hello world", "second video")
	first := CorpusFingerprint(playlist)
	second := CorpusFingerprint(playlist)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestCorpusFingerprintChangesWithContent(t *testing.T) {
	base := CorpusFingerprint(fingerprintPlaylist("hello world"))

	longer := CorpusFingerprint(fingerprintPlaylist("hello world again"))
	assert.NotEqual(t, base, longer, "transcript growth must change the fingerprint")

	more := CorpusFingerprint(fingerprintPlaylist("hello world", "extra"))
	assert.NotEqual(t, base, more, "extra videos must change the fingerprint")

	otherList := fingerprintPlaylist("hello world")
	otherList.ID = "PL2"
	assert.NotEqual(t, base, CorpusFingerprint(otherList), "playlist id is part of the key")
}

func TestCalculateFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"playlist_id":"PL1"}`), 0o644))

	hash, err := CalculateFileHash(path)
	require.NoError(t, err)
	assert.Len(t, hash, 64)

	again, err := CalculateFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	_, err = CalculateFileHash(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
