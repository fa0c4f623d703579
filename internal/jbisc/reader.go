package jbisc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sentinelKey terminates the current record block.
const sentinelKey = "*"

// fieldSeparator splits a content line into key and value.
const fieldSeparator = ": "

// ReadRecords consumes the export line by line and returns one RawRecord
// per sentinel-terminated block. Keys are lower-cased; values of repeatable
// keys accumulate in source order, all other keys are last-write-wins.
//
// A content line without the ": " separator is a fatal error. A trailing
// block that never sees its closing "*" is dropped, not emitted: the
// sentinel is part of the record, and an unterminated block is taken to be
// a truncated export.
func ReadRecords(r io.Reader) ([]*RawRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []*RawRecord
	record := newRawRecord()
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		key, value, found := strings.Cut(line, fieldSeparator)
		if key == sentinelKey {
			records = append(records, record)
			record = newRawRecord()
			continue
		}
		if !found {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}

		record.add(strings.ToLower(key), value)
		record.lines = append(record.lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	// An unterminated trailing record is still in `record` here and is
	// intentionally not appended.
	return records, nil
}
