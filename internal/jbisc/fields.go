package jbisc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Year with optional ".month", e.g. "2004.8", "2004", "c2004", "[2004.8]".
	datePattern = regexp.MustCompile(`[0-9]{2,4}(\.[0-9]{1,2})?`)

	// Leading segment of a PHYS line, e.g. "428p".
	pageCountPattern = regexp.MustCompile(`([0-9]+)p`)
)

// Date is a parsed publication date. Month is 0 when the source gives only
// a year.
type Date struct {
	Year  int
	Month int
}

// Publication is the parsed form of a PUB line.
type Publication struct {
	Location  string
	Publisher string
	Date      Date
}

// Physical is the parsed form of a PHYS line. Width and Height stay 0 for
// now: the dimension segment's notation in the wild is inconsistent and is
// deliberately left unparsed until a reliable format is pinned down.
type Physical struct {
	PageCount int
	Width     int
	Height    int
}

// ParseTitleLine splits a TR line into the trimmed title and the raw
// author-list part. A line without the " / " separator is all title.
func ParseTitleLine(tr string) (title, rawAuthors string) {
	title, rawAuthors, _ = strings.Cut(tr, " / ")
	return strings.TrimSpace(title), rawAuthors
}

// ParseDate extracts the first year/month match from a raw date token.
func ParseDate(raw string) (Date, error) {
	match := datePattern.FindString(raw)
	if match == "" {
		return Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, raw)
	}

	yearPart, monthPart, hasMonth := strings.Cut(match, ".")
	year, _ := strconv.Atoi(yearPart)
	date := Date{Year: year}
	if hasMonth {
		date.Month, _ = strconv.Atoi(monthPart)
	}
	return date, nil
}

// ParsePublication parses a PUB line such as "東京 : 出版社, 2004.8" into
// location, publisher and date. Location and publisher have their outer
// brackets stripped; a date part with no recognizable year fails the record.
func ParsePublication(raw string) (Publication, error) {
	info, rawDate, _ := strings.Cut(raw, ", ")
	date, err := ParseDate(rawDate)
	if err != nil {
		return Publication{}, err
	}

	location, publisher, _ := strings.Cut(info, " : ")
	return Publication{
		Location:  StripBracketsAndTrim(location),
		Publisher: StripBracketsAndTrim(publisher),
		Date:      date,
	}, nil
}

// ParsePhysical extracts the page count from a PHYS line such as
// "428p ; 20cm". The dimension segment after " ; " is ignored.
func ParsePhysical(raw string) Physical {
	first, _, _ := strings.Cut(raw, " ; ")
	match := pageCountPattern.FindStringSubmatch(first)
	if match == nil {
		return Physical{}
	}
	pages, _ := strconv.Atoi(match[1])
	return Physical{PageCount: pages}
}
