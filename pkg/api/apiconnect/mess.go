package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// MessServiceName is the fully-qualified name of the MessService.
const MessServiceName = "fintrack.v1.MessService"

// Procedure paths of the MessService.
const (
	MessServiceAddMemberProcedure    = "/" + MessServiceName + "/AddMember"
	MessServiceRemoveMemberProcedure = "/" + MessServiceName + "/RemoveMember"
	MessServiceRecordBazaarProcedure = "/" + MessServiceName + "/RecordBazaar"
	MessServiceDeleteBazaarProcedure = "/" + MessServiceName + "/DeleteBazaar"
	MessServiceRecordMealProcedure   = "/" + MessServiceName + "/RecordMeal"
	MessServiceDeleteMealProcedure   = "/" + MessServiceName + "/DeleteMeal"
	MessServiceGetSummaryProcedure   = "/" + MessServiceName + "/GetSummary"
)

// MessServiceHandler is implemented by the server side of the MessService.
// MessService records mess members, bazaar spending and meals.
type MessServiceHandler interface {
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error)
	RecordBazaar(context.Context, *connect.Request[api.RecordBazaarRequest]) (*connect.Response[api.RecordBazaarResponse], error)
	DeleteBazaar(context.Context, *connect.Request[api.DeleteBazaarRequest]) (*connect.Response[api.DeleteBazaarResponse], error)
	RecordMeal(context.Context, *connect.Request[api.RecordMealRequest]) (*connect.Response[api.RecordMealResponse], error)
	DeleteMeal(context.Context, *connect.Request[api.DeleteMealRequest]) (*connect.Response[api.DeleteMealResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewMessServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewMessServiceHandler(svc MessServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, MessServiceAddMemberProcedure, svc.AddMember, opts)
	handle(mux, MessServiceRemoveMemberProcedure, svc.RemoveMember, opts)
	handle(mux, MessServiceRecordBazaarProcedure, svc.RecordBazaar, opts)
	handle(mux, MessServiceDeleteBazaarProcedure, svc.DeleteBazaar, opts)
	handle(mux, MessServiceRecordMealProcedure, svc.RecordMeal, opts)
	handle(mux, MessServiceDeleteMealProcedure, svc.DeleteMeal, opts)
	handle(mux, MessServiceGetSummaryProcedure, svc.GetSummary, opts)
	return "/" + MessServiceName + "/", mux
}

// MessServiceClient calls a remote MessService.
type MessServiceClient struct {
	addMember    *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	removeMember *connect.Client[api.RemoveMemberRequest, api.RemoveMemberResponse]
	recordBazaar *connect.Client[api.RecordBazaarRequest, api.RecordBazaarResponse]
	deleteBazaar *connect.Client[api.DeleteBazaarRequest, api.DeleteBazaarResponse]
	recordMeal   *connect.Client[api.RecordMealRequest, api.RecordMealResponse]
	deleteMeal   *connect.Client[api.DeleteMealRequest, api.DeleteMealResponse]
	getSummary   *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
}

// NewMessServiceClient creates a client for the MessService served at baseURL.
func NewMessServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *MessServiceClient {
	opts = clientOptions(opts)
	return &MessServiceClient{
		addMember:    newClient[api.AddMemberRequest, api.AddMemberResponse](httpClient, baseURL, MessServiceAddMemberProcedure, opts),
		removeMember: newClient[api.RemoveMemberRequest, api.RemoveMemberResponse](httpClient, baseURL, MessServiceRemoveMemberProcedure, opts),
		recordBazaar: newClient[api.RecordBazaarRequest, api.RecordBazaarResponse](httpClient, baseURL, MessServiceRecordBazaarProcedure, opts),
		deleteBazaar: newClient[api.DeleteBazaarRequest, api.DeleteBazaarResponse](httpClient, baseURL, MessServiceDeleteBazaarProcedure, opts),
		recordMeal:   newClient[api.RecordMealRequest, api.RecordMealResponse](httpClient, baseURL, MessServiceRecordMealProcedure, opts),
		deleteMeal:   newClient[api.DeleteMealRequest, api.DeleteMealResponse](httpClient, baseURL, MessServiceDeleteMealProcedure, opts),
		getSummary:   newClient[api.GetSummaryRequest, api.GetSummaryResponse](httpClient, baseURL, MessServiceGetSummaryProcedure, opts),
	}
}

func (c *MessServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *MessServiceClient) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

func (c *MessServiceClient) RecordBazaar(ctx context.Context, req *connect.Request[api.RecordBazaarRequest]) (*connect.Response[api.RecordBazaarResponse], error) {
	return c.recordBazaar.CallUnary(ctx, req)
}

func (c *MessServiceClient) DeleteBazaar(ctx context.Context, req *connect.Request[api.DeleteBazaarRequest]) (*connect.Response[api.DeleteBazaarResponse], error) {
	return c.deleteBazaar.CallUnary(ctx, req)
}

func (c *MessServiceClient) RecordMeal(ctx context.Context, req *connect.Request[api.RecordMealRequest]) (*connect.Response[api.RecordMealResponse], error) {
	return c.recordMeal.CallUnary(ctx, req)
}

func (c *MessServiceClient) DeleteMeal(ctx context.Context, req *connect.Request[api.DeleteMealRequest]) (*connect.Response[api.DeleteMealResponse], error) {
	return c.deleteMeal.CallUnary(ctx, req)
}

func (c *MessServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}
