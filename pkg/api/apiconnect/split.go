package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// SplitServiceName is the fully-qualified name of the SplitService.
const SplitServiceName = "fintrack.v1.SplitService"

// Procedure paths of the SplitService.
const (
	SplitServiceCreateSplitProcedure   = "/" + SplitServiceName + "/CreateSplit"
	SplitServiceToggleSettledProcedure = "/" + SplitServiceName + "/ToggleSettled"
	SplitServiceDeleteSplitProcedure   = "/" + SplitServiceName + "/DeleteSplit"
	SplitServiceListSplitsProcedure    = "/" + SplitServiceName + "/ListSplits"
)

// SplitServiceHandler is implemented by the server side of the SplitService.
// SplitService manages equal bill splits.
type SplitServiceHandler interface {
	CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error)
	ToggleSettled(context.Context, *connect.Request[api.ToggleSettledRequest]) (*connect.Response[api.ToggleSettledResponse], error)
	DeleteSplit(context.Context, *connect.Request[api.DeleteSplitRequest]) (*connect.Response[api.DeleteSplitResponse], error)
	ListSplits(context.Context, *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, SplitServiceCreateSplitProcedure, svc.CreateSplit, opts)
	handle(mux, SplitServiceToggleSettledProcedure, svc.ToggleSettled, opts)
	handle(mux, SplitServiceDeleteSplitProcedure, svc.DeleteSplit, opts)
	handle(mux, SplitServiceListSplitsProcedure, svc.ListSplits, opts)
	return "/" + SplitServiceName + "/", mux
}

// SplitServiceClient calls a remote SplitService.
type SplitServiceClient struct {
	createSplit   *connect.Client[api.CreateSplitRequest, api.CreateSplitResponse]
	toggleSettled *connect.Client[api.ToggleSettledRequest, api.ToggleSettledResponse]
	deleteSplit   *connect.Client[api.DeleteSplitRequest, api.DeleteSplitResponse]
	listSplits    *connect.Client[api.ListSplitsRequest, api.ListSplitsResponse]
}

// NewSplitServiceClient creates a client for the SplitService served at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	opts = clientOptions(opts)
	return &SplitServiceClient{
		createSplit:   newClient[api.CreateSplitRequest, api.CreateSplitResponse](httpClient, baseURL, SplitServiceCreateSplitProcedure, opts),
		toggleSettled: newClient[api.ToggleSettledRequest, api.ToggleSettledResponse](httpClient, baseURL, SplitServiceToggleSettledProcedure, opts),
		deleteSplit:   newClient[api.DeleteSplitRequest, api.DeleteSplitResponse](httpClient, baseURL, SplitServiceDeleteSplitProcedure, opts),
		listSplits:    newClient[api.ListSplitsRequest, api.ListSplitsResponse](httpClient, baseURL, SplitServiceListSplitsProcedure, opts),
	}
}

func (c *SplitServiceClient) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	return c.createSplit.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ToggleSettled(ctx context.Context, req *connect.Request[api.ToggleSettledRequest]) (*connect.Response[api.ToggleSettledResponse], error) {
	return c.toggleSettled.CallUnary(ctx, req)
}

func (c *SplitServiceClient) DeleteSplit(ctx context.Context, req *connect.Request[api.DeleteSplitRequest]) (*connect.Response[api.DeleteSplitResponse], error) {
	return c.deleteSplit.CallUnary(ctx, req)
}

func (c *SplitServiceClient) ListSplits(ctx context.Context, req *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error) {
	return c.listSplits.CallUnary(ctx, req)
}
