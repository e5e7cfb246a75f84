// Package types defines the public data model shared by the pakkit packages:
// the parsed record table, archive metadata, option structs and typed errors.
//
// Design goals:
//   - Records are plain values; offsets are frozen at parse time.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (format/truncated/encoding/...).
//
// This package has no dependencies beyond the standard library.
package types
