package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderStoreRotates(t *testing.T) {
	store := NewPlaceholderStore()

	var urls []string
	for i := 0; i < len(placeholderURLs)+1; i++ {
		url, err := store.Store(context.Background(), "photo.jpg", strings.NewReader("bytes"))
		require.NoError(t, err)
		urls = append(urls, url)
	}

	for i, url := range urls[:len(placeholderURLs)] {
		assert.Equal(t, placeholderURLs[i], url)
	}
	// Wraps around after exhausting the set
	assert.Equal(t, placeholderURLs[0], urls[len(placeholderURLs)])
}
