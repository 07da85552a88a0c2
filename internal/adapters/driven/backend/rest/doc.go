// Package rest implements driven.WorkOrderStore against the field operations
// backend's JSON API.
//
// Endpoints (relative to the configured base URL):
//
//	GET /work-orders           -> {"work_orders": [WorkOrder...]}
//	GET /work-orders/{taskID}  -> WorkOrder
//	PUT /work-orders/{taskID}  <- WorkOrder
//
// Requests are throttled with a token bucket and, when client credentials
// are configured, authenticated with an OAuth2 client-credentials token.
package rest
