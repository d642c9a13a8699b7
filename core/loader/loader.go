package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"data-integrity/core/database"
	"data-integrity/core/frame"
	"data-integrity/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Sources supplies the lazily-opened backends a dataset reference may need.
type Sources struct {
	// DB opens the database connection. Only called for db:// references.
	DB func() (*gorm.DB, error)
	// Storage opens the object-storage client. Only called for s3:// references.
	Storage func() (storage.Client, error)
	// Bucket is the bucket used for s3://object references that name no
	// bucket of their own.
	Bucket string
}

// Load resolves a dataset reference into a Frame.
func Load(ctx context.Context, src Sources, ref string) (*frame.Frame, error) {
	switch {
	case strings.HasPrefix(ref, "db://"):
		if src.DB == nil {
			return nil, fmt.Errorf("loader: %s requires a database configuration", ref)
		}
		db, err := src.DB()
		if err != nil {
			return nil, err
		}
		return database.LoadTable(db, strings.TrimPrefix(ref, "db://"))

	case strings.HasPrefix(ref, "s3://"):
		bucket, object, err := splitObjectRef(ref)
		if err != nil {
			return nil, err
		}
		if bucket == "" {
			if src.Bucket == "" {
				return nil, fmt.Errorf("loader: %s names no bucket and no default bucket is configured", ref)
			}
			bucket = src.Bucket
		}
		if src.Storage == nil {
			return nil, fmt.Errorf("loader: %s requires a storage configuration", ref)
		}
		client, err := src.Storage()
		if err != nil {
			return nil, err
		}
		return FetchObject(ctx, client, bucket, object)

	default:
		return LoadFile(ref)
	}
}

// LoadFile reads a local CSV file into a Frame.
func LoadFile(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// FetchObject downloads a CSV object and decodes it into a Frame.
func FetchObject(ctx context.Context, client storage.Client, bucket, object string) (*frame.Frame, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("loader: check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("loader: bucket %s does not exist", bucket)
	}

	rc, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("loader: fetch %s/%s: %w", bucket, object, err)
	}
	defer rc.Close()
	return ReadCSV(rc)
}

// ReadCSV decodes CSV data into a Frame. The first record is the header;
// cells are loaded as strings, with empty cells as missing (nil) values so
// the profiling engine can infer types itself.
func ReadCSV(r io.Reader) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return frame.New()
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read csv header: %w", err)
	}

	values := make([][]any, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read csv record: %w", err)
		}
		for i := range header {
			var v any
			if i < len(rec) && rec[i] != "" {
				v = rec[i]
			}
			values[i] = append(values[i], v)
		}
	}

	cols := make([]frame.Column, len(header))
	for i, name := range header {
		cols[i] = frame.Column{Name: strings.TrimSpace(name), Values: values[i]}
	}
	return frame.New(cols...)
}

// splitObjectRef splits s3://bucket/object into its parts. A reference
// without a slash, s3://object, returns an empty bucket so the caller can
// fall back to the configured default.
func splitObjectRef(ref string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(ref, "s3://")
	if rest == "" {
		return "", "", fmt.Errorf("loader: malformed object reference %q (want s3://bucket/object)", ref)
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) == 1 {
		return "", parts[0], nil
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("loader: malformed object reference %q (want s3://bucket/object)", ref)
	}
	return parts[0], parts[1], nil
}
