package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "fintrack.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceUnlockProcedure     = "/" + AuthServiceName + "/Unlock"
	AuthServiceSetPINProcedure     = "/" + AuthServiceName + "/SetPIN"
	AuthServiceDisablePINProcedure = "/" + AuthServiceName + "/DisablePIN"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
// AuthService manages the PIN lock. Its procedures work while locked.
type AuthServiceHandler interface {
	Unlock(context.Context, *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error)
	SetPIN(context.Context, *connect.Request[api.SetPINRequest]) (*connect.Response[api.SetPINResponse], error)
	DisablePIN(context.Context, *connect.Request[api.DisablePINRequest]) (*connect.Response[api.DisablePINResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, AuthServiceUnlockProcedure, svc.Unlock, opts)
	handle(mux, AuthServiceSetPINProcedure, svc.SetPIN, opts)
	handle(mux, AuthServiceDisablePINProcedure, svc.DisablePIN, opts)
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient calls a remote AuthService.
type AuthServiceClient struct {
	unlock     *connect.Client[api.UnlockRequest, api.UnlockResponse]
	setPIN     *connect.Client[api.SetPINRequest, api.SetPINResponse]
	disablePIN *connect.Client[api.DisablePINRequest, api.DisablePINResponse]
}

// NewAuthServiceClient creates a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		unlock:     newClient[api.UnlockRequest, api.UnlockResponse](httpClient, baseURL, AuthServiceUnlockProcedure, opts),
		setPIN:     newClient[api.SetPINRequest, api.SetPINResponse](httpClient, baseURL, AuthServiceSetPINProcedure, opts),
		disablePIN: newClient[api.DisablePINRequest, api.DisablePINResponse](httpClient, baseURL, AuthServiceDisablePINProcedure, opts),
	}
}

func (c *AuthServiceClient) Unlock(ctx context.Context, req *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error) {
	return c.unlock.CallUnary(ctx, req)
}

func (c *AuthServiceClient) SetPIN(ctx context.Context, req *connect.Request[api.SetPINRequest]) (*connect.Response[api.SetPINResponse], error) {
	return c.setPIN.CallUnary(ctx, req)
}

func (c *AuthServiceClient) DisablePIN(ctx context.Context, req *connect.Request[api.DisablePINRequest]) (*connect.Response[api.DisablePINResponse], error) {
	return c.disablePIN.CallUnary(ctx, req)
}
