package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// AdvisorServiceName is the fully-qualified name of the AdvisorService.
const AdvisorServiceName = "fintrack.v1.AdvisorService"

// Procedure paths of the AdvisorService.
const (
	AdvisorServiceScanReceiptProcedure = "/" + AdvisorServiceName + "/ScanReceipt"
	AdvisorServiceParseSMSProcedure    = "/" + AdvisorServiceName + "/ParseSMS"
	AdvisorServiceParseVoiceProcedure  = "/" + AdvisorServiceName + "/ParseVoice"
	AdvisorServiceForecastProcedure    = "/" + AdvisorServiceName + "/Forecast"
	AdvisorServiceAskProcedure         = "/" + AdvisorServiceName + "/Ask"
)

// AdvisorServiceHandler is implemented by the server side of the AdvisorService.
// AdvisorService asks the generative model for suggestions.
type AdvisorServiceHandler interface {
	ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.SuggestionResponse], error)
	ParseSMS(context.Context, *connect.Request[api.ParseSMSRequest]) (*connect.Response[api.SuggestionResponse], error)
	ParseVoice(context.Context, *connect.Request[api.ParseVoiceRequest]) (*connect.Response[api.SuggestionResponse], error)
	Forecast(context.Context, *connect.Request[api.ForecastRequest]) (*connect.Response[api.ForecastResponse], error)
	Ask(context.Context, *connect.Request[api.AskRequest]) (*connect.Response[api.AskResponse], error)
}

// NewAdvisorServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewAdvisorServiceHandler(svc AdvisorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, AdvisorServiceScanReceiptProcedure, svc.ScanReceipt, opts)
	handle(mux, AdvisorServiceParseSMSProcedure, svc.ParseSMS, opts)
	handle(mux, AdvisorServiceParseVoiceProcedure, svc.ParseVoice, opts)
	handle(mux, AdvisorServiceForecastProcedure, svc.Forecast, opts)
	handle(mux, AdvisorServiceAskProcedure, svc.Ask, opts)
	return "/" + AdvisorServiceName + "/", mux
}

// AdvisorServiceClient calls a remote AdvisorService.
type AdvisorServiceClient struct {
	scanReceipt *connect.Client[api.ScanReceiptRequest, api.SuggestionResponse]
	parseSMS    *connect.Client[api.ParseSMSRequest, api.SuggestionResponse]
	parseVoice  *connect.Client[api.ParseVoiceRequest, api.SuggestionResponse]
	forecast    *connect.Client[api.ForecastRequest, api.ForecastResponse]
	ask         *connect.Client[api.AskRequest, api.AskResponse]
}

// NewAdvisorServiceClient creates a client for the AdvisorService served at baseURL.
func NewAdvisorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AdvisorServiceClient {
	opts = clientOptions(opts)
	return &AdvisorServiceClient{
		scanReceipt: newClient[api.ScanReceiptRequest, api.SuggestionResponse](httpClient, baseURL, AdvisorServiceScanReceiptProcedure, opts),
		parseSMS:    newClient[api.ParseSMSRequest, api.SuggestionResponse](httpClient, baseURL, AdvisorServiceParseSMSProcedure, opts),
		parseVoice:  newClient[api.ParseVoiceRequest, api.SuggestionResponse](httpClient, baseURL, AdvisorServiceParseVoiceProcedure, opts),
		forecast:    newClient[api.ForecastRequest, api.ForecastResponse](httpClient, baseURL, AdvisorServiceForecastProcedure, opts),
		ask:         newClient[api.AskRequest, api.AskResponse](httpClient, baseURL, AdvisorServiceAskProcedure, opts),
	}
}

func (c *AdvisorServiceClient) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.SuggestionResponse], error) {
	return c.scanReceipt.CallUnary(ctx, req)
}

func (c *AdvisorServiceClient) ParseSMS(ctx context.Context, req *connect.Request[api.ParseSMSRequest]) (*connect.Response[api.SuggestionResponse], error) {
	return c.parseSMS.CallUnary(ctx, req)
}

func (c *AdvisorServiceClient) ParseVoice(ctx context.Context, req *connect.Request[api.ParseVoiceRequest]) (*connect.Response[api.SuggestionResponse], error) {
	return c.parseVoice.CallUnary(ctx, req)
}

func (c *AdvisorServiceClient) Forecast(ctx context.Context, req *connect.Request[api.ForecastRequest]) (*connect.Response[api.ForecastResponse], error) {
	return c.forecast.CallUnary(ctx, req)
}

func (c *AdvisorServiceClient) Ask(ctx context.Context, req *connect.Request[api.AskRequest]) (*connect.Response[api.AskResponse], error) {
	return c.ask.CallUnary(ctx, req)
}
