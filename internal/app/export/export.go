// Package export writes playlist digests to spreadsheet files.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
)

// ToExcel writes one workbook with a Videos sheet (per-video rows) and a
// Digest sheet (strategy metadata plus the summary text).
func ToExcel(playlist model.Playlist, digest model.Digest, outputFilePath string) error {
	if outputFilePath == "" {
		return apperrors.RequiredField("output file path")
	}

	file := xlsx.NewFile()
	if err := addVideoSheet(file, playlist); err != nil {
		return err
	}
	if err := addDigestSheet(file, digest); err != nil {
		return err
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func addVideoSheet(file *xlsx.File, playlist model.Playlist) error {
	sheet, err := file.AddSheet("Videos")
	if err != nil {
		return fmt.Errorf("add videos sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Video ID"
	headerRow.AddCell().Value = "Title"
	headerRow.AddCell().Value = "URL"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "Duration"
	headerRow.AddCell().Value = "Transcript Chars"
	headerRow.AddCell().Value = "Fetched At"

	for _, video := range playlist.Videos {
		row := sheet.AddRow()
		row.AddCell().Value = video.ID
		row.AddCell().Value = video.Title
		row.AddCell().Value = video.URL
		row.AddCell().Value = video.Language
		row.AddCell().Value = model.Timestamp(float64(video.Duration))
		row.AddCell().Value = fmt.Sprint(len(video.FullText()))
		if !video.FetchedAt.IsZero() {
			row.AddCell().Value = video.FetchedAt.Format(time.RFC3339)
		} else {
			row.AddCell().Value = ""
		}
	}
	return nil
}

func addDigestSheet(file *xlsx.File, digest model.Digest) error {
	sheet, err := file.AddSheet("Digest")
	if err != nil {
		return fmt.Errorf("add digest sheet: %w", err)
	}

	addPair := func(key, value string) {
		row := sheet.AddRow()
		row.AddCell().Value = key
		row.AddCell().Value = value
	}
	addPair("Playlist", digest.PlaylistID)
	addPair("Strategy", string(digest.Strategy))
	addPair("Videos", fmt.Sprint(digest.VideoCount))
	addPair("Corpus Chars", fmt.Sprint(digest.TotalChars))
	addPair("Compressed", fmt.Sprint(digest.Compressed))
	addPair("LLM Calls", fmt.Sprint(digest.LLMCalls))
	addPair("Elapsed Seconds", fmt.Sprintf("%.2f", digest.Elapsed))
	if !digest.CreatedAt.IsZero() {
		addPair("Generated", digest.CreatedAt.Format(time.RFC3339))
	}

	sheet.AddRow() // spacer
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().Value = "Summary"
	summaryRow.AddCell().Value = digest.Summary
	return nil
}
