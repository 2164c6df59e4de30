package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
	"wellnessa_backend/pkg/logger"

	"go.uber.org/zap"
)

var exportHeader = []string{
	"result_id", "user_id", "username", "assessment_id",
	"total_score", "max_score", "percentage", "feedback", "completed_at",
}

// ExportService writes all results as CSV to the configured storage.
type ExportService struct {
	Results ResultStore
	Users   UserStore
	Storage *StorageService
	Now     Clock
}

func NewExportService(results ResultStore, users UserStore, storage *StorageService) *ExportService {
	return &ExportService{Results: results, Users: users, Storage: storage, Now: time.Now}
}

type ExportResult struct {
	URL  string `json:"url"`
	File string `json:"file"`
	Rows int    `json:"rows"`
}

func (s *ExportService) ExportResults(ctx context.Context) (*ExportResult, error) {
	results, err := s.Results.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := WriteResultsCSV(results, users)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("results/results_%s.csv", s.Now().UTC().Format("20060102_150405"))
	url, err := s.Storage.Upload(ctx, name, bytes.NewReader(data), int64(len(data)), util.MimeCSV)
	if err != nil {
		return nil, fmt.Errorf("%w: upload export: %v", util.ErrPersistence, err)
	}
	logger.Log.Info("Results exported", zap.String("file", name), zap.Int("rows", len(results)))
	return &ExportResult{URL: url, File: name, Rows: len(results)}, nil
}

// WriteResultsCSV renders results in the order given. Results of users
// that no longer exist get an empty username.
func WriteResultsCSV(results []model.AssessmentResult, users []model.User) ([]byte, error) {
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		row := []string{
			r.ID,
			strconv.FormatUint(uint64(r.UserID), 10),
			names[r.UserID],
			strconv.FormatUint(uint64(r.AssessmentID), 10),
			strconv.Itoa(r.TotalScore),
			strconv.Itoa(r.MaxScore),
			strconv.Itoa(r.Percentage),
			r.Feedback,
			r.CompletedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
