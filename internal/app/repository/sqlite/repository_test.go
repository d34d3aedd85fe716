package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/repository"
)

func TestDB_Interfaces(t *testing.T) {
	var _ repository.VideoRepository = (*DB)(nil)
	var _ repository.ConversationRepository = (*DB)(nil)
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "ytd.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func samplePlaylist(videoCount int) model.Playlist {
	playlist := model.Playlist{
		ID:    "PL_test",
		Title: "Go Lectures",
		URL:   "https://www.youtube.com/playlist?list=PL_test",
	}
	for i := 0; i < videoCount; i++ {
		playlist.Videos = append(playlist.Videos, model.Video{
			ID:       fmt.Sprintf("vid%02d", i),
			Title:    fmt.Sprintf("Lecture %d", i),
			URL:      fmt.Sprintf("https://youtu.be/vid%02d", i),
			Language: "en",
			Duration: 600 + i,
			Transcript: []model.TranscriptSegment{
				{Text: fmt.Sprintf("Opening of lecture %d.", i), Start: 0, Duration: 5},
				{Text: "Deeper material follows.", Start: 5, Duration: 7},
			},
			FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		})
	}
	return playlist
}

func TestSavePlaylistRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	saved := samplePlaylist(3)
	require.NoError(t, db.SavePlaylist(ctx, saved))

	loaded, err := db.GetPlaylist(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, saved.Title, loaded.Title)
	assert.Equal(t, saved.URL, loaded.URL)
	require.Len(t, loaded.Videos, 3)
	for i, video := range loaded.Videos {
		assert.Equal(t, saved.Videos[i].ID, video.ID, "videos must come back in insertion order")
		assert.Equal(t, saved.Videos[i].Transcript, video.Transcript)
	}
}

func TestSavePlaylistReplacesVideos(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	playlist := samplePlaylist(3)
	require.NoError(t, db.SavePlaylist(ctx, playlist))

	// Re-import with one video dropped and the title changed.
	playlist.Title = "Go Lectures (trimmed)"
	playlist.Videos = playlist.Videos[:2]
	require.NoError(t, db.SavePlaylist(ctx, playlist))

	loaded, err := db.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Lectures (trimmed)", loaded.Title)
	assert.Len(t, loaded.Videos, 2)
}

func TestSavePlaylistRequiresID(t *testing.T) {
	db := openTestDB(t)
	err := db.SavePlaylist(context.Background(), model.Playlist{Title: "no id"})
	assert.Error(t, err)
}

func TestGetPlaylistUnknown(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetPlaylist(context.Background(), "PL_missing")
	assert.ErrorIs(t, err, apperrors.ErrUnknownPlaylist)
}

func TestListPlaylists(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	empty, err := db.ListPlaylists(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := samplePlaylist(1)
	second := samplePlaylist(2)
	second.ID = "PL_other"
	require.NoError(t, db.SavePlaylist(ctx, first))
	require.NoError(t, db.SavePlaylist(ctx, second))

	playlists, err := db.ListPlaylists(ctx)
	require.NoError(t, err)
	assert.Len(t, playlists, 2)
	for _, playlist := range playlists {
		assert.Empty(t, playlist.Videos, "listing must not load transcripts")
	}
}

func TestDeletePlaylist(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	playlist := samplePlaylist(2)
	require.NoError(t, db.SavePlaylist(ctx, playlist))
	require.NoError(t, db.SaveDigest(ctx, model.Digest{
		PlaylistID: playlist.ID,
		Strategy:   model.StrategyDirect,
		Summary:    "short",
		VideoCount: 2,
	}))

	require.NoError(t, db.DeletePlaylist(ctx, playlist.ID))

	_, err := db.GetPlaylist(ctx, playlist.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnknownPlaylist)
	_, err = db.LatestDigest(ctx, playlist.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoDigest)
}

func TestLatestDigest(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.LatestDigest(ctx, "PL_test")
	assert.ErrorIs(t, err, apperrors.ErrNoDigest)

	older := model.Digest{
		PlaylistID: "PL_test",
		Strategy:   model.StrategyDirect,
		Summary:    "first pass",
		VideoCount: 3,
		TotalChars: 1200,
		LLMCalls:   1,
		Elapsed:    2.5,
		CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.Strategy = model.StrategyMapReduce
	newer.Summary = "second pass"
	newer.Compressed = true
	newer.LLMCalls = 4
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	require.NoError(t, db.SaveDigest(ctx, older))
	require.NoError(t, db.SaveDigest(ctx, newer))

	latest, err := db.LatestDigest(ctx, "PL_test")
	require.NoError(t, err)
	assert.Equal(t, "second pass", latest.Summary)
	assert.Equal(t, model.StrategyMapReduce, latest.Strategy)
	assert.True(t, latest.Compressed)
	assert.Equal(t, 4, latest.LLMCalls)
}

func TestConversationLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.GetConversation(ctx, "conv-1")
	assert.ErrorIs(t, err, apperrors.ErrUnknownConversation)

	conversation := model.Conversation{ID: "conv-1", PlaylistID: "PL_test"}
	require.NoError(t, db.CreateConversation(ctx, conversation))

	loaded, err := db.GetConversation(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "PL_test", loaded.PlaylistID)
	assert.False(t, loaded.CreatedAt.IsZero())
}

func TestRecentMessagesWindow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateConversation(ctx, model.Conversation{ID: "conv-1", PlaylistID: "PL_test"}))

	for i := 0; i < 7; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		require.NoError(t, db.AppendMessage(ctx, model.ChatMessage{
			ConversationID: "conv-1",
			Role:           role,
			Content:        fmt.Sprintf("turn %d", i),
		}))
	}

	recent, err := db.RecentMessages(ctx, "conv-1", 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Window keeps the newest turns, returned oldest-first.
	assert.Equal(t, "turn 2", recent[0].Content)
	assert.Equal(t, "turn 6", recent[4].Content)

	all, err := db.RecentMessages(ctx, "conv-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.Equal(t, "turn 0", all[0].Content)

	none, err := db.RecentMessages(ctx, "conv-empty", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}
