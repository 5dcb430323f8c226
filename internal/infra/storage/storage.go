package storage

import (
	"context"
	"errors"
	"strings"
)

var ErrObjectExists = errors.New("object already exists")

// Object is one upload: bucket-relative key, raw bytes and MIME type.
type Object struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
	Upsert      bool
}

type Storage interface {
	// Put stores the object and returns its public URL. Without Upsert an
	// existing key fails with ErrObjectExists.
	Put(ctx context.Context, obj Object) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

// PublicURL joins the public base, bucket and key.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL recovers the object key from a URL built by PublicURL.
func KeyFromURL(url, bucket string) (string, bool) {
	marker := "/" + bucket + "/"
	i := strings.LastIndex(url, marker)
	if i < 0 {
		return "", false
	}
	key := url[i+len(marker):]
	return key, key != ""
}
