// package formatter provides functions to export clip collections to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/byetz/internal/models"
	"github.com/desertthunder/byetz/internal/shared"
)

// ExportToCSV converts a clip list to CSV format with columns: ID, Title, SeasonEpisode, Duration, Genres, Director, Decade
func ExportToCSV(clips []models.Clip) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "SeasonEpisode", "DurationMs", "Genres", "Director", "Decade"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, clip := range clips {
		record := []string{
			clip.ID.String(),
			clip.Title,
			clip.SeasonEpisode,
			strconv.Itoa(clip.DurationMs),
			strings.Join(clip.GenreTags, ";"),
			clip.Director,
			clip.Decade,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a clip list to Markdown format under the given heading
func ExportToMarkdown(heading string, clips []models.Clip) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", heading))
	buf.WriteString(fmt.Sprintf("**Clips**: %d\n\n", len(clips)))

	buf.WriteString("## Clips\n\n")
	for i, clip := range clips {
		duration := shared.FormatDurationMS(clip.DurationMs)
		episodePart := ""
		if clip.SeasonEpisode != "" {
			episodePart = fmt.Sprintf(" (%s)", clip.SeasonEpisode)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, clip.Title, episodePart, duration))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a clip list to plain text format
func ExportToText(heading string, clips []models.Clip) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", heading))
	buf.WriteString(fmt.Sprintf("Clips: %d\n\n", len(clips)))

	for i, clip := range clips {
		buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, clip.Title, shared.FormatDurationMS(clip.DurationMs)))
	}

	return buf.Bytes(), nil
}

// ToClipJSON generates a pretty-printed JSON representation of a clip list
func ToClipJSON(clips []models.Clip) ([]byte, error) {
	return shared.MarshalJSON(clips, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	ClipsFile string
}

// WriteCSVExport exports a clip list to {base}_clips.csv.
//
// Defaults to "saved" as the base filename.
func WriteCSVExport(clips []models.Clip, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "saved"
	}

	csvData, err := ExportToCSV(clips)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	clipsFile := baseFilepath + "_clips.csv"
	if err := os.WriteFile(clipsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return &CSVExportResult{ClipsFile: clipsFile}, nil
}

// WriteMarkdownExport exports a clip list to a Markdown file.
//
// The filename defaults to "saved.md".
func WriteMarkdownExport(heading string, clips []models.Clip, filename string) (string, error) {
	if filename == "" {
		filename = "saved.md"
	}

	data, err := ExportToMarkdown(heading, clips)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filename, nil
}
