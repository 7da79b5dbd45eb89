// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// LocationBody marks a validation failure found in the request body.
const LocationBody = "body"

// ErrorMessage is a single entry of the error envelope.
// Param and Location are filled only for validation failures.
type ErrorMessage struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// ErrorResponse is the envelope of every non-2xx response:
//
//	{"errors":[{"msg":"...","param":"...","location":"body"}]}
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

// NewErrorResponse builds an envelope holding one message per argument.
func NewErrorResponse(messages ...string) ErrorResponse {
	resp := ErrorResponse{Errors: make([]ErrorMessage, 0, len(messages))}
	for _, msg := range messages {
		resp.Errors = append(resp.Errors, ErrorMessage{Msg: msg})
	}
	return resp
}

// ValidationErrors is the ordered list of failed field rules. It implements
// error so validators can return it directly.
type ValidationErrors []ErrorMessage

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Param+": "+e.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// MessageResponse is a plain {msg} acknowledgement.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
