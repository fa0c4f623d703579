// Package jbisc parses the flat bibliographic export format produced by
// J-BISC catalog dumps: one "KEY: value" field per line, records separated
// by a "*" sentinel line.
//
// Parsing happens in three stages: ReadRecords groups lines into raw
// records, ParseBook normalizes a single record (title/author line,
// publication line, physical description, author mentions matched against
// authorheading variants), and the resulting Book values are handed to the
// resolver for identity resolution before storage.
package jbisc
