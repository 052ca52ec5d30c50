package shortlink

import (
	"context"
	"strings"
	"testing"

	"shortlink-manager/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_RoundTrip(t *testing.T) {
	f := newFixture(t)
	f.create(t, alice, "https://example.com", "abc123")

	res, err := f.resolver.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "https://example.com", res.URL)
}

func TestResolve_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.create(t, alice, "https://example.com/twice", "twice")

	first, err := f.resolver.Resolve(context.Background(), "twice")
	require.NoError(t, err)
	second, err := f.resolver.Resolve(context.Background(), "twice")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_NotFound(t *testing.T) {
	f := newFixture(t)

	for _, code := range []string{"never-created", "ab", strings.Repeat("a", 21), "bad!code", "health"} {
		res, err := f.resolver.Resolve(context.Background(), code)
		require.NoError(t, err, code)
		assert.False(t, res.Found, code)
		assert.Empty(t, res.URL, code)
	}
}

func TestResolve_IsCaseSensitive(t *testing.T) {
	f := newFixture(t)
	f.create(t, alice, "https://example.com", "MixedCase")

	res, err := f.resolver.Resolve(context.Background(), "mixedcase")
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestList(t *testing.T) {
	f := newFixture(t)

	links, err := f.lister.List(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links, "没有链接时应返回空列表")

	first := f.create(t, alice, "https://one.example", "one")
	second := f.create(t, alice, "https://two.example", "two")
	f.create(t, bob, "https://bob.example", "bobs")

	_, err = f.service.Edit(testutils.AsUser(alice), EditInput{ID: first.ID, URL: "https://one.example/v2", ShortCode: "one"})
	require.NoError(t, err)

	links, err = f.lister.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, first.ID, links[0].ID, "最近修改的链接在前")
	assert.Equal(t, second.ID, links[1].ID)

	_, err = f.lister.List(context.Background(), "")
	requireKind(t, err, KindUnauthorized)
}
