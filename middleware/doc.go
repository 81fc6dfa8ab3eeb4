// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging logs method, path, remote address, and duration:

	mux.HandleFunc("POST /votes", middleware.WithLogging(handler.Cast))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
	middleware.ParseJSONBody(r, &req)

# Gateway Error Mapping

GatewayErrorResponse translates the wallet/gateway error taxonomy into
HTTP statuses:

	WalletUnavailable → 503 Service Unavailable
	UserRejected      → 403 Forbidden
	ContractReverted  → 409 Conflict
	NetworkError      → 502 Bad Gateway

The response body carries the revert reason when the node reported one.

# CORS

The CORS middleware allows cross-origin requests so a separately served
frontend (e.g. a dev server) can reach the API.
*/
package middleware
