package shortcode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shortlink-manager/internal/model"
	"shortlink-manager/internal/shortlink"
	"shortlink-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finderFunc func(code string) (*model.Link, error)

func (f finderFunc) FindByShortCode(_ context.Context, code string) (*model.Link, error) {
	return f(code)
}

func TestSuggest_ReturnsValidFreeCode(t *testing.T) {
	g := NewGenerator(finderFunc(func(string) (*model.Link, error) { return nil, store.ErrNotFound }))

	code, err := g.Suggest(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)
	assert.True(t, shortlink.ValidShortCode(code), "建议的短码应能通过创建校验")
	for _, r := range code {
		assert.True(t, strings.ContainsRune(Charset, r))
	}
}

func TestSuggest_SkipsTakenCodes(t *testing.T) {
	calls := 0
	g := NewGenerator(finderFunc(func(string) (*model.Link, error) {
		calls++
		if calls < 3 {
			return &model.Link{}, nil
		}
		return nil, store.ErrNotFound
	}))

	_, err := g.Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestSuggest_Exhausted(t *testing.T) {
	g := NewGenerator(finderFunc(func(string) (*model.Link, error) { return &model.Link{}, nil }))

	_, err := g.Suggest(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestSuggest_StoreError(t *testing.T) {
	boom := errors.New("db down")
	g := NewGenerator(finderFunc(func(string) (*model.Link, error) { return nil, boom }))

	_, err := g.Suggest(context.Background())
	assert.ErrorIs(t, err, boom)
}
