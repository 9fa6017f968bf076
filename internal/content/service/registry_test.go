package service

import (
	"context"
	"testing"

	"github.com/portfolio-cms/portfolio-api/internal/content"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryRegistry(t *testing.T) {
	r := NewMemoryRegistry()
	require.Equal(t, "memory", r.Backend())
	require.NoError(t, r.Ping(context.Background()))

	require.NotNil(t, r.Hero)
	require.NotNil(t, r.Portfolio)
	require.NotNil(t, r.Articles)
	require.NotNil(t, r.Education)
	require.NotNil(t, r.Experience)
	require.NotNil(t, r.Organizations)
	require.NotNil(t, r.Activities)
	require.NotNil(t, r.Skills)
}

func TestMemoryRegistryCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry()
	title := content.Text("shared shape")

	_, err := r.Portfolio.Insert(ctx, &content.Item{Title: &title})
	require.NoError(t, err)

	portfolio, err := r.Portfolio.List(ctx)
	require.NoError(t, err)
	require.Len(t, portfolio, 1)

	articles, err := r.Articles.List(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)
}
