// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func requireValidationErrors(t *testing.T, err error) models.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

// ── RegisterRequest ──────────────────────────────────────────────────────────

func TestStructValidator_RegisterRequest_Valid(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "123456",
	})

	assert.NoError(t, err)
}

func TestStructValidator_RegisterRequest_AllInvalid(t *testing.T) {
	v := NewStructValidator()

	verrs := requireValidationErrors(t, v.Validate(context.Background(), &models.RegisterRequest{
		Email: "not-an-email", Password: "123",
	}))

	assert.Equal(t, models.ValidationErrors{
		{Msg: "Name is required", Param: "name", Location: "body"},
		{Msg: "Please include a valid email", Param: "email", Location: "body"},
		{Msg: "Please enter a password with 6 or more characters", Param: "password", Location: "body"},
	}, verrs)
}

func TestStructValidator_LoginRequest_EmptyEmail(t *testing.T) {
	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), models.LoginRequest{
		Password: "x",
	}))

	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Param)
	assert.Equal(t, "Please include a valid email", verrs[0].Msg)
}

// ── ProfileUpdate ────────────────────────────────────────────────────────────

func TestStructValidator_ProfileUpdate(t *testing.T) {
	tests := []struct {
		name      string
		update    models.ProfileUpdate
		wantParam []string
	}{
		{
			name:   "status and skills present",
			update: models.ProfileUpdate{Status: ptr("Developer"), Skills: ptr(models.Skills{"go"})},
		},
		{
			name:      "both missing",
			update:    models.ProfileUpdate{Company: ptr("Acme")},
			wantParam: []string{"status", "skills"},
		},
		{
			name:      "empty status",
			update:    models.ProfileUpdate{Status: ptr(""), Skills: ptr(models.Skills{"go"})},
			wantParam: []string{"status"},
		},
		{
			name:      "whitespace status",
			update:    models.ProfileUpdate{Status: ptr("   "), Skills: ptr(models.Skills{"go"})},
			wantParam: []string{"status"},
		},
		{
			name:      "empty skills",
			update:    models.ProfileUpdate{Status: ptr("Developer"), Skills: ptr(models.Skills{})},
			wantParam: []string{"skills"},
		},
	}

	v := NewStructValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantParam == nil {
				assert.NoError(t, err)
				return
			}

			verrs := requireValidationErrors(t, err)
			params := make([]string, 0, len(verrs))
			for _, e := range verrs {
				params = append(params, e.Param)
			}
			assert.Equal(t, tt.wantParam, params)
		})
	}
}

// ── Experience / Education ───────────────────────────────────────────────────

func TestStructValidator_Experience_ZeroFromDate(t *testing.T) {
	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), models.Experience{
		Title: "Engineer", Company: "Acme",
	}))

	assert.Equal(t, models.ValidationErrors{
		{Msg: "From date is required", Param: "from", Location: "body"},
	}, verrs)
}

func TestStructValidator_Experience_Valid(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), models.Experience{
		Title: "Engineer", Company: "Acme", From: models.NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	assert.NoError(t, err)
}

func TestStructValidator_Education_Missing(t *testing.T) {
	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), models.Education{}))

	assert.Equal(t, []string{
		"School is required", "Degree is required", "Field of study is required", "From date is required",
	}, []string{verrs[0].Msg, verrs[1].Msg, verrs[2].Msg, verrs[3].Msg})
	assert.Equal(t, "fieldofstudy", verrs[2].Param)
}

// ── misc ─────────────────────────────────────────────────────────────────────

func TestStructValidator_PostRequest(t *testing.T) {
	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), models.PostRequest{}))
	assert.Equal(t, "Text is required", verrs[0].Msg)
}

func TestStructValidator_PartialFields(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), models.RegisterRequest{Name: "Jane"}, "Name")
	assert.NoError(t, err)
}

func TestStructValidator_FallbackMessage(t *testing.T) {
	type request struct {
		Handle string `json:"handle" validate:"required"`
	}

	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), request{}))
	assert.Equal(t, "handle is invalid", verrs[0].Msg)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), "plain string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStructValidator_ProfileUpdate_BlankStatus(t *testing.T) {
	verrs := requireValidationErrors(t, NewStructValidator().Validate(context.Background(), models.ProfileUpdate{
		Status: ptr("   "), Skills: ptr(models.Skills{"go"}),
	}))

	assert.Equal(t, models.ValidationErrors{
		{Msg: "Status is required", Param: "status", Location: "body"},
	}, verrs)
}
