// Package httpresp maps operation outcomes to transport response
// envelopes. Constructors are pure and total: every kind produces a
// response, rendering is left to the delivery layer.
package httpresp

import "net/http"

type Response struct {
	Status int
	// Body is empty when nil, plain text when a string,
	// and JSON otherwise.
	Body any
}

func newResponse(status int, body any) Response {
	return Response{Status: status, Body: body}
}

func OK(body any) Response {
	return newResponse(http.StatusOK, body)
}

func Created() Response {
	return newResponse(http.StatusCreated, nil)
}

func Accepted() Response {
	return newResponse(http.StatusAccepted, nil)
}

func NoContent() Response {
	return newResponse(http.StatusNoContent, nil)
}

// Updated is the whole-record replace outcome.
func Updated() Response {
	return NoContent()
}

func NotFound() Response {
	return newResponse(http.StatusNotFound, nil)
}

func BadRequest(message string) Response {
	return newResponse(http.StatusBadRequest, message)
}

func Unauthorized(message string) Response {
	return newResponse(http.StatusUnauthorized, message)
}

func InternalServerError(message string) Response {
	return newResponse(http.StatusInternalServerError, message)
}
