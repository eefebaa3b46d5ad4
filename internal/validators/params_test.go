// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_String(t *testing.T) {
	p := MapParams(map[string]string{"id": "abc", "empty": ""})

	require.NotNil(t, p.String("id"))
	assert.Equal(t, "abc", *p.String("id"))
	require.NotNil(t, p.String("empty"))
	assert.Equal(t, "", *p.String("empty"))
	assert.Nil(t, p.String("missing"))
}

func TestParams_Uint(t *testing.T) {
	p := QueryParams(url.Values{"page": {"3", "9"}, "bad": {"-1"}, "text": {"x"}})

	n, err := p.Uint("page")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, uint64(3), *n)

	n, err = p.Uint("missing")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = p.Uint("bad")
	assert.ErrorIs(t, err, ErrMalformedParam)

	_, err = p.Uint("text")
	assert.ErrorIs(t, err, ErrMalformedParam)
	assert.Contains(t, err.Error(), "text")
}

func TestParams_UintOr(t *testing.T) {
	p := QueryParams(url.Values{"page_size": {"25"}, "page": {"abc"}})

	n, err := p.UintOr("page_size", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), n)

	n, err = p.UintOr("missing", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)

	_, err = p.UintOr("page", 1)
	assert.ErrorIs(t, err, ErrMalformedParam)
}

func TestParams_Int(t *testing.T) {
	p := MapParams(map[string]string{"age": "-5", "bad": "1.5"})

	n, err := p.Int("age")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), *n)

	n, err = p.Int("missing")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = p.Int("bad")
	assert.ErrorIs(t, err, ErrMalformedParam)
}

func TestQueryParams_EmptySliceIsAbsent(t *testing.T) {
	p := QueryParams(url.Values{"page": {}})
	assert.Nil(t, p.String("page"))
}
