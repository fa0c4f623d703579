package jbisc

import (
	"regexp"
	"strings"
)

// Role normalizes the Japanese contribution suffix found at the end of a
// raw author mention (e.g. "川本英明訳" is a translator credit).
type Role string

const (
	RoleAuthor      Role = "author"
	RoleEditor      Role = "editor"
	RoleDirector    Role = "director"
	RoleTranslator  Role = "translator"
	RoleIllustrator Role = "illustrator"
)

// roleSuffixes maps trailing tokens to normalized roles. The slice order
// matters: it is consulted front to back and the first matching suffix
// wins, so 編著 must come before 編 and 著.
var roleSuffixes = []struct {
	Suffix string
	Role   Role
}{
	{"編著", RoleEditor},
	{"監修", RoleDirector},
	{"編", RoleEditor},
	{"著", RoleAuthor},
	{"訳", RoleTranslator},
	{"絵", RoleIllustrator},
}

// authorSeparators splits a raw author-list field into individual mentions.
// The plain comma doubles as the "last, first" separator inside headings,
// so a heading-style mention splits in two; that ambiguity is inherited
// from the source format and is not disambiguated here.
var authorSeparators = regexp.MustCompile(` ; |，|,`)

// Author is a resolved author mention. FullName is always set; the name
// parts and kana readings are present only when an authorheading variant
// matched the mention.
type Author struct {
	FullName      string
	FirstName     string
	LastName      string
	FirstNameKana string
	LastNameKana  string
}

// Attribution ties an author to their contribution role for one book.
type Attribution struct {
	Author Author
	Role   Role
}

// AuthorHeading is the parsed form of one authorheading line. Kana fields
// are set only when the heading carries a parenthesized kana reading.
type AuthorHeading struct {
	LastName      string
	FirstName     string
	LastNameKana  string
	FirstNameKana string
}

// ParseAuthors splits a raw author-list field into attributions, in the
// order the mentions appear. The order is meaningful downstream: the first
// attribution is the primary author. An empty field yields no attributions.
func ParseAuthors(raw string, headings []string) []Attribution {
	if raw == "" {
		return nil
	}

	segments := authorSeparators.Split(raw, -1)
	attributions := make([]Attribution, 0, len(segments))
	for _, segment := range segments {
		attributions = append(attributions, parseAuthor(segment, headings))
	}
	return attributions
}

// parseAuthor normalizes a single mention: drop all square brackets, strip
// the role suffix, then try to enrich the bare name with structured parts
// from the record's authorheading variants.
func parseAuthor(raw string, headings []string) Attribution {
	name := strings.ReplaceAll(raw, "[", "")
	name = strings.ReplaceAll(name, "]", "")
	name = strings.TrimSpace(name)

	role := RoleAuthor
	for _, rs := range roleSuffixes {
		if strings.HasSuffix(name, rs.Suffix) {
			name = strings.TrimSuffix(name, rs.Suffix)
			role = rs.Role
			break
		}
	}
	name = StripBracketsAndTrim(name)

	author := Author{FullName: name}
	for _, rawHeading := range headings {
		heading := ParseAuthorHeading(rawHeading)
		if heading.LastName != "" && strings.Contains(name, heading.LastName) {
			author.LastName = heading.LastName
			author.FirstName = heading.FirstName
			author.LastNameKana = heading.LastNameKana
			author.FirstNameKana = heading.FirstNameKana
			break
		}
	}

	return Attribution{Author: author, Role: role}
}

// ParseAuthorHeading parses one authorheading line. A heading without a
// " (" sequence is a plain "Last, First" form (typically romaji, no kana);
// otherwise the part before " (" is the kana reading and the parenthesized
// part is the kanji name, both in "last, first" order.
func ParseAuthorHeading(heading string) AuthorHeading {
	if !strings.Contains(heading, " (") {
		last, first := splitPair(heading)
		return AuthorHeading{LastName: last, FirstName: first}
	}

	kana, name, _ := strings.Cut(heading, " (")
	name = strings.TrimSuffix(name, ")")
	lastKana, firstKana := splitPair(kana)
	last, first := splitPair(name)
	return AuthorHeading{
		LastNameKana:  lastKana,
		FirstNameKana: firstKana,
		LastName:      last,
		FirstName:     first,
	}
}

func splitPair(s string) (string, string) {
	parts := strings.Split(s, ", ")
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
