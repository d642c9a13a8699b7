// Package loader resolves dataset references into frames.
//
// A reference is one of:
//   - a plain path: read as a local CSV file
//   - db://table: loaded from the configured MySQL database
//   - s3://bucket/object: a CSV object fetched from object storage
//   - s3://object: the same, in the configured default bucket
//
// Connections are opened lazily through Sources, so a run that only touches
// local files never dials the database or storage service.
package loader
