package api

import "github.com/shohagvaii216/FinTrack/internal/backup"

type ExportRequest struct{}

type ExportResponse struct {
	// Document is the backup file, a JSON object.
	Document string `json:"document"`
}

type ImportRequest struct {
	Document string `json:"document"`
}

type ImportResponse struct {
	Imported map[string]int `json:"imported"`
	Issues   []backup.Issue `json:"issues"`
	Ignored  []string       `json:"ignored"`
}
