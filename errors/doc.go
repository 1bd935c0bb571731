// Package errors defines the failure taxonomy of the request pipeline.
//
// Every failure surfaces as an *Error carrying an ErrorCode. Callers tell
// outcomes apart by code (configuration, request shape, transport, remote
// 4xx, remote 5xx) using the IsXxx predicates.
package errors
