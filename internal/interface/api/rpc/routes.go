package rpc

const (
	// api
	RouteApiV1 = "/api/v1"

	// all procedures dispatch through a single route
	RouteRPC = RouteApiV1 + "/rpc/:procedure"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)

// Procedure names of the RPC surface.
const (
	ProcAuthCallback        = "authCallback"
	ProcGetUserFiles        = "getUserFiles"
	ProcDeleteFile          = "deleteFile"
	ProcGetFile             = "getFile"
	ProcGetFileUploadStatus = "getFileUploadStatus"
	ProcGetFileMessages     = "getFileMessages"
	ProcCreateStripeSession = "createStripeSession"
)
