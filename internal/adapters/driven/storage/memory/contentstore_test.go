package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/core/domain"
)

func TestContentStore_PutAndGet(t *testing.T) {
	store := NewContentStore()
	session := domain.NewSession()

	in := domain.SearchResponse{Results: []domain.SearchResult{{Title: "Rust", PageID: 1}}}
	require.NoError(t, store.Put(session, "abc", in))

	var out domain.SearchResponse
	require.True(t, store.Get(session, "abc", &out))
	assert.Equal(t, in, out)
	assert.Equal(t, 1, store.Len(session))
}

func TestContentStore_Get_Missing(t *testing.T) {
	store := NewContentStore()

	var out domain.SearchResponse
	assert.False(t, store.Get(domain.NewSession(), "abc", &out))
}

func TestContentStore_Get_SchemaMismatch(t *testing.T) {
	store := NewContentStore()
	session := domain.NewSession()
	require.NoError(t, store.Put(session, "abc", "just a string"))

	var out domain.SearchResponse
	assert.False(t, store.Get(session, "abc", &out))
}

func TestContentStore_Get_WrongObjectShape(t *testing.T) {
	store := NewContentStore()
	session := domain.NewSession()
	require.NoError(t, store.Put(session, "article", domain.ArticlePayload{Title: "Rust", Markdown: "# Rust"}))
	require.NoError(t, store.Put(session, "empty", struct{}{}))

	var out domain.SearchResponse
	assert.False(t, store.Get(session, "article", &out))
	assert.False(t, store.Get(session, "empty", &out))
}

func TestContentStore_FailPuts(t *testing.T) {
	store := NewContentStore()
	session := domain.NewSession()
	store.FailPuts(errors.New("disk full"))

	err := store.Put(session, "abc", 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheIO))
	assert.Zero(t, store.Len(session))

	store.FailPuts(nil)
	assert.NoError(t, store.Put(session, "abc", 1))
}

func TestContentStore_Clear(t *testing.T) {
	store := NewContentStore()
	session := domain.NewSession()
	require.NoError(t, store.Put(session, "abc", 1))

	require.NoError(t, store.Clear())

	var out int
	assert.False(t, store.Get(session, "abc", &out))
	assert.Equal(t, ":memory:", store.Root())
}

func TestContentStore_Sessions(t *testing.T) {
	store := NewContentStore()
	require.NoError(t, store.Put(domain.Session{ID: "z"}, "abc", 1))
	require.NoError(t, store.Put(domain.Session{ID: "a"}, "abc", 1))

	ids, err := store.Sessions()

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, ids)

	require.NoError(t, store.Clear())
	ids, err = store.Sessions()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
