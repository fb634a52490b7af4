package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/pkg/api"
)

// ProfileServiceName is the fully-qualified name of the ProfileService.
const ProfileServiceName = "fintrack.v1.ProfileService"

// Procedure paths of the ProfileService.
const (
	ProfileServiceGetProfileProcedure    = "/" + ProfileServiceName + "/GetProfile"
	ProfileServiceUpdateProfileProcedure = "/" + ProfileServiceName + "/UpdateProfile"
)

// ProfileServiceHandler is implemented by the server side of the ProfileService.
// ProfileService reads and edits the owner settings.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	handle(mux, ProfileServiceGetProfileProcedure, svc.GetProfile, opts)
	handle(mux, ProfileServiceUpdateProfileProcedure, svc.UpdateProfile, opts)
	return "/" + ProfileServiceName + "/", mux
}

// ProfileServiceClient calls a remote ProfileService.
type ProfileServiceClient struct {
	getProfile    *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
}

// NewProfileServiceClient creates a client for the ProfileService served at baseURL.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProfileServiceClient {
	opts = clientOptions(opts)
	return &ProfileServiceClient{
		getProfile:    newClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL, ProfileServiceGetProfileProcedure, opts),
		updateProfile: newClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL, ProfileServiceUpdateProfileProcedure, opts),
	}
}

func (c *ProfileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}
