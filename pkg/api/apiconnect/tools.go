package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// ToolsServiceName is the fully-qualified name of the ToolsService.
const ToolsServiceName = "fintrack.v1.ToolsService"

// Procedure paths of the ToolsService.
const (
	ToolsServiceConvertProcedure   = "/" + ToolsServiceName + "/Convert"
	ToolsServiceIncomeTaxProcedure = "/" + ToolsServiceName + "/IncomeTax"
	ToolsServiceZakatProcedure     = "/" + ToolsServiceName + "/Zakat"
)

// ToolsServiceHandler is implemented by the server side of the ToolsService.
// ToolsService offers the stateless financial calculators.
type ToolsServiceHandler interface {
	Convert(context.Context, *connect.Request[api.ConvertRequest]) (*connect.Response[api.ConvertResponse], error)
	IncomeTax(context.Context, *connect.Request[api.IncomeTaxRequest]) (*connect.Response[api.IncomeTaxResponse], error)
	Zakat(context.Context, *connect.Request[api.ZakatRequest]) (*connect.Response[api.ZakatResponse], error)
}

// NewToolsServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewToolsServiceHandler(svc ToolsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, ToolsServiceConvertProcedure, svc.Convert, opts)
	handle(mux, ToolsServiceIncomeTaxProcedure, svc.IncomeTax, opts)
	handle(mux, ToolsServiceZakatProcedure, svc.Zakat, opts)
	return "/" + ToolsServiceName + "/", mux
}

// ToolsServiceClient calls a remote ToolsService.
type ToolsServiceClient struct {
	convert   *connect.Client[api.ConvertRequest, api.ConvertResponse]
	incomeTax *connect.Client[api.IncomeTaxRequest, api.IncomeTaxResponse]
	zakat     *connect.Client[api.ZakatRequest, api.ZakatResponse]
}

// NewToolsServiceClient creates a client for the ToolsService served at baseURL.
func NewToolsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ToolsServiceClient {
	opts = clientOptions(opts)
	return &ToolsServiceClient{
		convert:   newClient[api.ConvertRequest, api.ConvertResponse](httpClient, baseURL, ToolsServiceConvertProcedure, opts),
		incomeTax: newClient[api.IncomeTaxRequest, api.IncomeTaxResponse](httpClient, baseURL, ToolsServiceIncomeTaxProcedure, opts),
		zakat:     newClient[api.ZakatRequest, api.ZakatResponse](httpClient, baseURL, ToolsServiceZakatProcedure, opts),
	}
}

func (c *ToolsServiceClient) Convert(ctx context.Context, req *connect.Request[api.ConvertRequest]) (*connect.Response[api.ConvertResponse], error) {
	return c.convert.CallUnary(ctx, req)
}

func (c *ToolsServiceClient) IncomeTax(ctx context.Context, req *connect.Request[api.IncomeTaxRequest]) (*connect.Response[api.IncomeTaxResponse], error) {
	return c.incomeTax.CallUnary(ctx, req)
}

func (c *ToolsServiceClient) Zakat(ctx context.Context, req *connect.Request[api.ZakatRequest]) (*connect.Response[api.ZakatResponse], error) {
	return c.zakat.CallUnary(ctx, req)
}
