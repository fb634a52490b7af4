package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// BackupServiceName is the fully-qualified name of the BackupService.
const BackupServiceName = "fintrack.v1.BackupService"

// Procedure paths of the BackupService.
const (
	BackupServiceExportProcedure = "/" + BackupServiceName + "/Export"
	BackupServiceImportProcedure = "/" + BackupServiceName + "/Import"
)

// BackupServiceHandler is implemented by the server side of the BackupService.
// BackupService exports and imports the whole state.
type BackupServiceHandler interface {
	Export(context.Context, *connect.Request[api.ExportRequest]) (*connect.Response[api.ExportResponse], error)
	Import(context.Context, *connect.Request[api.ImportRequest]) (*connect.Response[api.ImportResponse], error)
}

// NewBackupServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewBackupServiceHandler(svc BackupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, BackupServiceExportProcedure, svc.Export, opts)
	handle(mux, BackupServiceImportProcedure, svc.Import, opts)
	return "/" + BackupServiceName + "/", mux
}

// BackupServiceClient calls a remote BackupService.
type BackupServiceClient struct {
	exportDoc *connect.Client[api.ExportRequest, api.ExportResponse]
	importDoc *connect.Client[api.ImportRequest, api.ImportResponse]
}

// NewBackupServiceClient creates a client for the BackupService served at baseURL.
func NewBackupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BackupServiceClient {
	opts = clientOptions(opts)
	return &BackupServiceClient{
		exportDoc: newClient[api.ExportRequest, api.ExportResponse](httpClient, baseURL, BackupServiceExportProcedure, opts),
		importDoc: newClient[api.ImportRequest, api.ImportResponse](httpClient, baseURL, BackupServiceImportProcedure, opts),
	}
}

func (c *BackupServiceClient) Export(ctx context.Context, req *connect.Request[api.ExportRequest]) (*connect.Response[api.ExportResponse], error) {
	return c.exportDoc.CallUnary(ctx, req)
}

func (c *BackupServiceClient) Import(ctx context.Context, req *connect.Request[api.ImportRequest]) (*connect.Response[api.ImportResponse], error) {
	return c.importDoc.CallUnary(ctx, req)
}
