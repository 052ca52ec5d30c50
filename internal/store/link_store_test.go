package store_test

import (
	"context"
	"testing"
	"time"

	"shortlink-manager/internal/model"
	"shortlink-manager/internal/store"
	"shortlink-manager/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLinkStore(t *testing.T) (*store.LinkStore, *gorm.DB) {
	t.Helper()
	db := testutils.NewSQLite(t)
	clock := testutils.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Minute)
	return store.NewLinkStore(db).WithClock(clock.Now), db
}

func insert(t *testing.T, s *store.LinkStore, userID, code, url string) *model.Link {
	t.Helper()
	link := &model.Link{UserID: userID, ShortCode: code, URL: url}
	require.NoError(t, s.Insert(context.Background(), link))
	return link
}

func TestLinkStore_Insert(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()

	link := insert(t, s, "u1", "abc123", "https://example.com")
	assert.NotZero(t, link.ID)
	assert.Equal(t, link.CreatedAt, link.UpdatedAt)

	dup := &model.Link{UserID: "u2", ShortCode: "abc123", URL: "https://other.example"}
	assert.ErrorIs(t, s.Insert(ctx, dup), store.ErrShortCodeTaken)
}

func TestLinkStore_FindByShortCode(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()
	link := insert(t, s, "u1", "abc123", "https://example.com")

	found, err := s.FindByShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)
	assert.Equal(t, "https://example.com", found.URL)

	_, err = s.FindByShortCode(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLinkStore_FindByIDAndUser(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()
	link := insert(t, s, "u1", "abc123", "https://example.com")

	found, err := s.FindByIDAndUser(ctx, link.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", found.ShortCode)

	_, err = s.FindByIDAndUser(ctx, link.ID, "u2")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.FindByIDAndUser(ctx, link.ID+100, "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLinkStore_Update(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()
	link := insert(t, s, "u1", "abc123", "https://example.com")
	insert(t, s, "u2", "taken", "https://taken.example")

	updated, err := s.Update(ctx, link.ID, "u1", store.LinkFields{URL: "https://new.example", ShortCode: "new123"})
	require.NoError(t, err)
	assert.Equal(t, "https://new.example", updated.URL)
	assert.Equal(t, "new123", updated.ShortCode)
	assert.Equal(t, "u1", updated.UserID)
	assert.True(t, updated.UpdatedAt.After(link.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(link.CreatedAt))

	_, err = s.Update(ctx, link.ID, "u2", store.LinkFields{URL: "https://x.example", ShortCode: "x123"})
	assert.ErrorIs(t, err, store.ErrNotFound, "其他用户不能修改")

	_, err = s.Update(ctx, link.ID, "u1", store.LinkFields{URL: "https://x.example", ShortCode: "taken"})
	assert.ErrorIs(t, err, store.ErrShortCodeTaken)

	current, err := s.FindByIDAndUser(ctx, link.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new123", current.ShortCode, "失败的更新不应生效")
}

func TestLinkStore_Delete(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()
	link := insert(t, s, "u1", "abc123", "https://example.com")

	removed, err := s.Delete(ctx, link.ID, "u2")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.Delete(ctx, link.ID, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, link.ID, "u1")
	require.NoError(t, err)
	assert.False(t, removed)

	// 删除后短码可以被重新使用
	insert(t, s, "u2", "abc123", "https://reuse.example")
}

func TestLinkStore_ListByUser(t *testing.T) {
	s, _ := newLinkStore(t)
	ctx := context.Background()

	empty, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a := insert(t, s, "u1", "aaa", "https://a.example")
	b := insert(t, s, "u1", "bbb", "https://b.example")
	c := insert(t, s, "u1", "ccc", "https://c.example")
	insert(t, s, "u2", "ddd", "https://d.example")

	_, err = s.Update(ctx, a.ID, "u1", store.LinkFields{URL: "https://a2.example", ShortCode: "aaa"})
	require.NoError(t, err)

	links, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, []uint{a.ID, c.ID, b.ID}, []uint{links[0].ID, links[1].ID, links[2].ID})
}

func TestLinkStore_ListByUserTieBreaksByID(t *testing.T) {
	db := testutils.NewSQLite(t)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := store.NewLinkStore(db).WithClock(func() time.Time { return fixed })

	first := insert(t, s, "u1", "first", "https://1.example")
	second := insert(t, s, "u1", "second", "https://2.example")

	links, err := s.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, second.ID, links[0].ID)
	assert.Equal(t, first.ID, links[1].ID)
}

func TestMigrate_CreatesUniqueIndex(t *testing.T) {
	_, db := newLinkStore(t)

	assert.True(t, db.Migrator().HasTable(&model.Link{}))
	assert.True(t, db.Migrator().HasIndex(&model.Link{}, "ShortCode"))
	assert.True(t, db.Migrator().HasIndex(&model.Link{}, "idx_links_user_updated"))
}
