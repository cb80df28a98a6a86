package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/logging"
)

// MediaPrefix marks a content URL as a key in the media bucket rather than an
// absolute or site-relative URL.
const MediaPrefix = "media/"

// IsObjectKey reports whether ref names an object in the media bucket.
func IsObjectKey(ref string) bool {
	return strings.HasPrefix(ref, MediaPrefix) && !strings.Contains(ref, "://")
}

// MediaResolver turns media keys into short-lived download URLs. A resolver
// without a store returns every reference unchanged.
type MediaResolver struct {
	store  Storage
	expiry time.Duration
}

func NewMediaResolver(store Storage, expiry time.Duration) *MediaResolver {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &MediaResolver{store: store, expiry: expiry}
}

// Resolve returns the URL a client should fetch for ref.
func (r *MediaResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if r == nil || r.store == nil || !IsObjectKey(ref) {
		return ref, nil
	}
	u, err := r.store.PresignGet(ctx, ref, r.expiry)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref, err)
	}
	return u, nil
}

// UploadDir walks dir and stores every regular file under MediaPrefix, keeping
// the relative path. It returns the keys written.
func UploadDir(ctx context.Context, store Storage, dir string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := path.Join(strings.TrimSuffix(MediaPrefix, "/"), filepath.ToSlash(rel))

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			return err
		}

		info, err := store.Put(ctx, key, f, PutObjectOptions{
			Size:        st.Size(),
			ContentType: mime.TypeByExtension(filepath.Ext(p)),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		logging.Info("storage", "media_uploaded", map[string]any{"key": key, "size": info.Size})
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return keys, err
	}
	return keys, nil
}
