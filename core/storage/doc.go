// Package storage provides the object-storage dataset source (S3/MinIO).
//
// The Client interface wraps the subset of minio operations the toolkit
// needs; the loader package uses it to download CSV objects. Mocks for
// tests live in storage/mocks.
package storage
