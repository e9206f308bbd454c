// Package handler contains the HTTP request handlers of the datasets API.
//
// Handlers decode requests, call the services and map errors onto status
// codes. Every failure is rendered as
//
//	{"error": {"code": "NOT_FOUND", "message": "dataset not found"}}
//
// with INVALID_ARGUMENT mapped to 400, NOT_FOUND to 404 and UNKNOWN to 500.
package handler
