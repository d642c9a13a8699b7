// Package database provides the MySQL dataset source.
//
// Connect opens a gorm connection from config; LoadTable streams a whole
// table into a frame.Frame so the reconciliation and profiling engines can
// treat database extracts exactly like any other in-memory dataset.
package database
