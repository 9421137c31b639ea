package storagemock

import (
	"context"
	"sync"

	"clubdocs-backend/internal/domain/storage"
)

var _ storage.ObjectStore = (*Store)(nil)

// Store is an in-memory ObjectStore for tests. Optional hooks override the
// default behavior.
type Store struct {
	mu      sync.Mutex
	Objects map[string][]byte

	UploadFn func(ctx context.Context, path string, content []byte) error
	DeleteFn func(ctx context.Context, path string) error
	BaseURL  string
}

func New() *Store { return &Store{Objects: map[string][]byte{}, BaseURL: "http://store.test"} }

func (s *Store) Upload(ctx context.Context, path string, content []byte) error {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, path, content)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[path] = append([]byte(nil), content...)
	return nil
}

func (s *Store) PublicURL(path string) string { return s.BaseURL + "/" + path }

func (s *Store) Delete(ctx context.Context, path string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, path)
	return nil
}
