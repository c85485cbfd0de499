// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetItemQuery(t *testing.T) {
	query, args, err := buildGetItemQuery(KeyAssets)
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM vault_items WHERE key = ?", query)
	assert.Equal(t, []any{KeyAssets}, args)
}

func Test_buildUpsertItemQuery(t *testing.T) {
	query, args, err := buildUpsertItemQuery(KeyDeviceKey, "abc")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into vault_items (key,value) values (?,?)"))
	assert.Contains(t, q, "on conflict(key) do update set value = excluded.value")
	assert.Equal(t, []any{KeyDeviceKey, "abc"}, args)
}

func Test_buildDeleteItemQuery(t *testing.T) {
	query, args, err := buildDeleteItemQuery(KeyAssets)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM vault_items WHERE key = ?", query)
	assert.Equal(t, []any{KeyAssets}, args)
}

func Test_buildProbeQuery(t *testing.T) {
	query, args, err := buildProbeQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM vault_items", query)
	assert.Empty(t, args)
}
