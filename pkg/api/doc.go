// Package api holds the request and response messages of the FinTrack RPC
// services. Messages travel as JSON over Connect; see package apiconnect for
// the handlers and clients.
package api
