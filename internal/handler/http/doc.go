// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the server.
//
// It wires the chi router, decodes and validates request bodies, and maps
// service and store errors onto the JSON error envelope. Request tracing,
// access logging, compression, metrics and token authentication are applied
// as middleware before requests reach the service layer.
package http
