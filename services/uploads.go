package services

import (
	"context"
	"io"
	"sync/atomic"
)

// ImageStore is the capability for persisting one uploaded image: given the
// file, hand back a URL the site can serve. Callers never depend on where the
// bytes actually land.
type ImageStore interface {
	Store(ctx context.Context, filename string, contents io.Reader) (string, error)
}

// placeholderURLs is the small rotating set the stub hands out instead of
// persisting uploads. TODO: retire once every environment has the S3 store
// configured.
var placeholderURLs = []string{
	"https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600",
	"https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg?auto=compress&cs=tinysrgb&w=600",
	"https://images.pexels.com/photos/3184293/pexels-photo-3184293.jpeg?auto=compress&cs=tinysrgb&w=600",
}

// PlaceholderStore is the stand-in ImageStore. It discards the uploaded bytes
// and rotates through a fixed set of placeholder URLs, one per call.
type PlaceholderStore struct {
	counter atomic.Uint64
}

func NewPlaceholderStore() *PlaceholderStore {
	return &PlaceholderStore{}
}

func (p *PlaceholderStore) Store(ctx context.Context, filename string, contents io.Reader) (string, error) {
	n := p.counter.Add(1) - 1
	return placeholderURLs[n%uint64(len(placeholderURLs))], nil
}
