package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"yt-digest/internal/app/model"
)

// CorpusFingerprint derives a stable SHA256 hex digest from the identity and
// size of every video in the playlist. Two corpora fingerprint equal exactly
// when they hold the same videos with the same transcript lengths, which is
// what cached digests are keyed on.
func CorpusFingerprint(playlist model.Playlist) string {
	hash := sha256.New()
	fmt.Fprintf(hash, "playlist:%s\n", playlist.ID)
	for _, video := range playlist.Videos {
		fmt.Fprintf(hash, "%s:%d\n", video.ID, utf8.RuneCountInString(video.FullText()))
	}
	return hex.EncodeToString(hash.Sum(nil))
}

// CalculateFileHash returns the SHA256 hex digest of a file's contents. Used
// to deduplicate imported corpus files.
func CalculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
