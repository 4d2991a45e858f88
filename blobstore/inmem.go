package blobstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// InMemUploads is a map-backed blob store for tests.
type InMemUploads struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewInMemUploads() *InMemUploads {
	return &InMemUploads{objects: make(map[string][]byte)}
}

func (b *InMemUploads) Store(ctx context.Context, key string, content []byte, mediaType string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = content
	return "mem://" + key, nil
}

func (b *InMemUploads) Delete(ctx context.Context, reference string) error {
	key, ok := strings.CutPrefix(reference, "mem://")
	if !ok {
		return fmt.Errorf("unknown reference %q", reference)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *InMemUploads) Download(ctx context.Context, reference string) ([]byte, error) {
	key, ok := strings.CutPrefix(reference, "mem://")
	if !ok {
		return nil, fmt.Errorf("unknown reference %q", reference)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	content, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return content, nil
}

func (b *InMemUploads) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}
