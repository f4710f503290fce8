// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source acquires readable objects, local files or blobs, with a
// release that is guaranteed on every exit path.
//
// Locations are either plain file paths or URLs understood by
// gocloud.dev/blob. The bucket is the location's directory and the key its
// final element, so "file:///data/shapes.yaml" reads the key "shapes.yaml"
// from the bucket "file:///data".
//
// Failure to acquire is reported to the caller as an error; whether that is
// fatal is the caller's decision.
package source

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// locations
	_ "gocloud.dev/blob/memblob"  // mem:// locations
	"gocloud.dev/gcerrors"
	"lostluck.dev/shape-go"
	"lostluck.dev/shape-go/internal/shapeopts"
)

// ErrNotExist is matched by errors.Is when the requested location doesn't exist.
var ErrNotExist = errors.New("source: does not exist")

// Handle is an acquired, readable object. It is not safe for concurrent use.
type Handle struct {
	r      *blob.Reader
	bucket *blob.Bucket // Only set if the Handle owns the bucket.

	location string
	logger   *slog.Logger
	closed   bool
}

// Read reads from the acquired object.
func (h *Handle) Read(p []byte) (int, error) {
	if h.closed {
		return 0, errors.Errorf("read %s: handle already released", h.location)
	}
	return h.r.Read(p)
}

// Size returns the size of the object in bytes.
func (h *Handle) Size() int64 {
	return h.r.Size()
}

// Location returns the location the handle was acquired from, or its
// configured name.
func (h *Handle) Location() string {
	return h.location
}

// Closed reports whether the handle has been released.
func (h *Handle) Closed() bool {
	return h.closed
}

// Close releases the object, and the bucket if the handle opened it.
// Calling Close more than once is a no-op.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	err := h.r.Close()
	if h.bucket != nil {
		if berr := h.bucket.Close(); err == nil {
			err = berr
		}
	}
	h.logger.Debug("released", slog.String("location", h.location))
	return errors.Wrapf(err, "release %s", h.location)
}

var _ io.ReadCloser = (*Handle)(nil)

// Open acquires the object at rawURL, which is a file path or a blob URL.
// The caller must Close the returned Handle; prefer With, which does so.
//
// Every mem:// URL opens a new, empty bucket, so it can only report
// ErrNotExist. Use OpenBucket to read from an in-memory bucket.
func Open(ctx context.Context, rawURL string, opts ...shape.Options) (*Handle, error) {
	bucketURL, key, err := resolve(rawURL)
	if err != nil {
		return nil, err
	}
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		if isMissingDir(bucketURL) {
			return nil, errors.Wrapf(ErrNotExist, "open %s", rawURL)
		}
		return nil, errors.Wrapf(err, "open %s", rawURL)
	}
	h, err := open(ctx, b, key, rawURL, opts)
	if err != nil {
		b.Close()
		return nil, err
	}
	h.bucket = b
	return h, nil
}

// OpenBucket acquires the object at key in an already open bucket.
// Releasing the Handle leaves the bucket open.
func OpenBucket(ctx context.Context, b *blob.Bucket, key string, opts ...shape.Options) (*Handle, error) {
	return open(ctx, b, key, key, opts)
}

func open(ctx context.Context, b *blob.Bucket, key, location string, opts []shape.Options) (*Handle, error) {
	var opt shapeopts.Struct
	opt.Join(opts...)
	if opt.Name != "" {
		location = opt.Name
	}

	r, err := b.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(ErrNotExist, "open %s", location)
		}
		return nil, errors.Wrapf(err, "open %s", location)
	}
	logger := opt.LoggerOrDefault()
	logger.Debug("acquired", slog.String("location", location), slog.Int64("size", r.Size()))
	return &Handle{r: r, location: location, logger: logger}, nil
}

// With acquires the object at rawURL, passes it to fn, and releases it when
// fn returns or panics. An error from fn takes precedence over an error
// from releasing.
func With(ctx context.Context, rawURL string, fn func(*Handle) error, opts ...shape.Options) (err error) {
	h, err := Open(ctx, rawURL, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(h)
}

// WithBucket is With for an object in an already open bucket.
func WithBucket(ctx context.Context, b *blob.Bucket, key string, fn func(*Handle) error, opts ...shape.Options) (err error) {
	h, err := OpenBucket(ctx, b, key, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(h)
}

// resolve splits a location into a bucket URL and a key.
func resolve(rawURL string) (bucketURL, key string, err error) {
	if rawURL == "" {
		return "", "", errors.New("source: empty location")
	}
	if !strings.Contains(rawURL, "://") {
		abs, err := filepath.Abs(rawURL)
		if err != nil {
			return "", "", errors.Wrapf(err, "resolve %s", rawURL)
		}
		dir, base := filepath.Split(abs)
		return "file://" + filepath.ToSlash(filepath.Clean(dir)), base, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Wrapf(err, "resolve %s", rawURL)
	}
	if u.Scheme == "file" {
		dir, base := path.Split(u.Path)
		if base == "" {
			return "", "", errors.Errorf("source: %s names a directory, not an object", rawURL)
		}
		u.Path = path.Clean(dir)
		return u.String(), base, nil
	}
	// Other buckets are named by the host, and nest keys with a prefix.
	dir, base := path.Split(strings.TrimPrefix(u.Path, "/"))
	if base == "" {
		return "", "", errors.Errorf("source: %s names a directory, not an object", rawURL)
	}
	u.Path = ""
	if dir != "" {
		q := u.Query()
		q.Set("prefix", dir)
		u.RawQuery = q.Encode()
	}
	return u.String(), base, nil
}

// isMissingDir reports whether bucketURL is a file bucket whose directory
// doesn't exist.
func isMissingDir(bucketURL string) bool {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme != "file" {
		return false
	}
	_, err = os.Stat(filepath.FromSlash(u.Path))
	return errors.Is(err, os.ErrNotExist)
}
