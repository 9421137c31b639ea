package upload

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"clubdocs-backend/internal/domain/storage"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/internal/metrics"
)

// MaxFileSize is the fixed ceiling for a single upload.
const MaxFileSize = 10 << 20 // 10 MiB

var (
	ErrFileTooLarge        = errors.New("file exceeds the 10 MiB limit")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
	ErrEmptyFile           = errors.New("file is empty")
	ErrForbiddenPath       = errors.New("path belongs to another user")
)

var allowedExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {},
	".png": {}, ".jpg": {}, ".jpeg": {},
	".txt": {},
}

type Usecase struct{ store storage.ObjectStore }

func NewUsecase(store storage.ObjectStore) *Usecase { return &Usecase{store: store} }

type UploadInput struct {
	Filename string
	Content  []byte
}

type UploadDTO struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

// Upload validates and stores one file, returning the retrievable reference
// to attach to a document later. Size and extension are checked before the
// store is touched; the stored path is namespaced by uploader and upload
// instant so concurrent uploads never collide.
func (u *Usecase) Upload(ctx context.Context, sess user.Session, in UploadInput) (*UploadDTO, error) {
	if len(in.Content) == 0 {
		metrics.UploadsRejected.WithLabelValues("empty").Inc()
		return nil, ErrEmptyFile
	}
	if len(in.Content) > MaxFileSize {
		metrics.UploadsRejected.WithLabelValues("too_large").Inc()
		return nil, ErrFileTooLarge
	}
	ext := strings.ToLower(path.Ext(in.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		metrics.UploadsRejected.WithLabelValues("extension").Inc()
		return nil, ErrExtensionNotAllowed
	}

	objPath := fmt.Sprintf("%s/%d_%s", sess.UserID, time.Now().UTC().UnixNano(), sanitize(in.Filename))
	if err := u.store.Upload(ctx, objPath, in.Content); err != nil {
		return nil, err
	}

	metrics.UploadsAccepted.Inc()
	return &UploadDTO{
		Path:     objPath,
		URL:      u.store.PublicURL(objPath),
		FileName: in.Filename,
	}, nil
}

// Remove deletes a pending (not-yet-attached) upload. Store failures are
// logged but not surfaced: a stale blob is harmless, a blocked client isn't.
func (u *Usecase) Remove(ctx context.Context, sess user.Session, objPath string) error {
	// uploads are namespaced per user; deleting outside your own prefix is
	// always refused
	if !strings.HasPrefix(objPath, sess.UserID+"/") {
		return ErrForbiddenPath
	}
	if err := u.store.Delete(ctx, objPath); err != nil {
		log.Printf("upload: delete %q failed: %v", objPath, err)
	}
	return nil
}

// sanitize keeps the stored name to a safe charset; anything else becomes '_'.
func sanitize(name string) string {
	name = path.Base(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
