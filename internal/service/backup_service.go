package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/backup"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/pkg/api"
	"github.com/shohagvaii216/FinTrack/pkg/api/apiconnect"
)

// BackupService implements the Connect BackupService.
type BackupService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.BackupServiceHandler = (*BackupService)(nil)

// NewBackupService creates a BackupService over l.
func NewBackupService(l *ledger.Ledger) *BackupService {
	return &BackupService{ledger: l}
}

func (s *BackupService) Export(ctx context.Context, req *connect.Request[api.ExportRequest]) (*connect.Response[api.ExportResponse], error) {
	data, err := backup.Export(s.ledger.Snapshot(), s.ledger.Now())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ExportResponse{Document: string(data)}), nil
}

// Import merges a backup document. Bad records are skipped and listed in
// the response; only a malformed document fails the call.
func (s *BackupService) Import(ctx context.Context, req *connect.Request[api.ImportRequest]) (*connect.Response[api.ImportResponse], error) {
	var result *backup.Result
	err := s.ledger.Apply(ctx, func(snap ledger.Snapshot) (ledger.Snapshot, []ledger.Collection, error) {
		r, err := backup.Import([]byte(req.Msg.Document), snap, s.ledger.Now())
		if err != nil {
			return snap, nil, err
		}
		result = r
		return r.Snapshot, r.Changed, nil
	})
	if err != nil {
		slog.Warn("Import rejected", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Backup imported", "imported", result.Imported, "issues", len(result.Issues), "ignored", result.Ignored)
	return connect.NewResponse(&api.ImportResponse{
		Imported: result.Imported,
		Issues:   orEmpty(result.Issues),
		Ignored:  orEmpty(result.Ignored),
	}), nil
}
