// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/renglo-api/models"
)

func TestIdentityCtxKey(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestWithIdentity_RoundTrip(t *testing.T) {
	want := models.Identity{Subject: "sub-1", Username: "alice", TokenUse: models.TokenUseAccess}

	got, ok := GetIdentityFromContext(WithIdentity(context.Background(), want))

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
