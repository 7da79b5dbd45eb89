// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/utils"
)

const maxBodyBytes = 1 << 20

// decodeAndValidate decodes the JSON body into dst and runs the struct
// validator over it.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

// userID returns the id stored by the auth middleware.
func userID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoToken
	}
	return id, nil
}
