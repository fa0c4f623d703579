package jbisc

import (
	"reflect"
	"testing"
)

func TestParseAuthorHeading_Romaji(t *testing.T) {
	heading := ParseAuthorHeading("Yamada, Taro")

	expected := AuthorHeading{LastName: "Yamada", FirstName: "Taro"}
	if heading != expected {
		t.Errorf("expected %+v, got %+v", expected, heading)
	}
}

func TestParseAuthorHeading_WithKana(t *testing.T) {
	heading := ParseAuthorHeading("ヤマダ, タロウ (山田, 太郎)")

	expected := AuthorHeading{
		LastNameKana:  "ヤマダ",
		FirstNameKana: "タロウ",
		LastName:      "山田",
		FirstName:     "太郎",
	}
	if heading != expected {
		t.Errorf("expected %+v, got %+v", expected, heading)
	}
}

func TestParseAuthorHeading_LastNameOnly(t *testing.T) {
	heading := ParseAuthorHeading("Yamada")

	if heading.LastName != "Yamada" || heading.FirstName != "" {
		t.Errorf("expected bare last name, got %+v", heading)
	}
}

func TestParseAuthors_RolesAndOrder(t *testing.T) {
	headings := []string{
		"ヤマダ, タロウ (山田, 太郎)",
		"スズキ, イチロウ (鈴木, 一郎)",
	}

	attributions := ParseAuthors("山田太郎著 ; 鈴木一郎訳", headings)

	if len(attributions) != 2 {
		t.Fatalf("expected 2 attributions, got %d", len(attributions))
	}

	first := attributions[0]
	if first.Role != RoleAuthor {
		t.Errorf("expected role author, got %s", first.Role)
	}
	if first.Author.FullName != "山田太郎" {
		t.Errorf("unexpected full name: %q", first.Author.FullName)
	}
	if first.Author.LastName != "山田" || first.Author.FirstName != "太郎" {
		t.Errorf("heading enrichment failed: %+v", first.Author)
	}
	if first.Author.LastNameKana != "ヤマダ" || first.Author.FirstNameKana != "タロウ" {
		t.Errorf("kana enrichment failed: %+v", first.Author)
	}

	second := attributions[1]
	if second.Role != RoleTranslator {
		t.Errorf("expected role translator, got %s", second.Role)
	}
	if second.Author.LastName != "鈴木" {
		t.Errorf("expected second heading to match, got %+v", second.Author)
	}
}

func TestParseAuthors_Empty(t *testing.T) {
	if got := ParseAuthors("", nil); got != nil {
		t.Errorf("expected no attributions for empty field, got %v", got)
	}
}

func TestParseAuthors_DefaultRole(t *testing.T) {
	attributions := ParseAuthors("山田太郎", nil)

	if len(attributions) != 1 {
		t.Fatalf("expected 1 attribution, got %d", len(attributions))
	}
	if attributions[0].Role != RoleAuthor {
		t.Errorf("expected default role author, got %s", attributions[0].Role)
	}
	if attributions[0].Author.FullName != "山田太郎" {
		t.Errorf("unexpected full name: %q", attributions[0].Author.FullName)
	}
}

func TestParseAuthors_SuffixTableOrder(t *testing.T) {
	// 編著 must win over the shorter 著 suffix.
	attributions := ParseAuthors("山田太郎編著", nil)

	if attributions[0].Role != RoleEditor {
		t.Errorf("expected editor for 編著, got %s", attributions[0].Role)
	}
	if attributions[0].Author.FullName != "山田太郎" {
		t.Errorf("suffix not stripped: %q", attributions[0].Author.FullName)
	}
}

func TestParseAuthors_AllRoleSuffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{"山田編著", RoleEditor},
		{"山田監修", RoleDirector},
		{"山田編", RoleEditor},
		{"山田著", RoleAuthor},
		{"山田訳", RoleTranslator},
		{"山田絵", RoleIllustrator},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			attributions := ParseAuthors(tt.input, nil)
			if attributions[0].Role != tt.expected {
				t.Errorf("expected role %s, got %s", tt.expected, attributions[0].Role)
			}
			if attributions[0].Author.FullName != "山田" {
				t.Errorf("suffix not stripped: %q", attributions[0].Author.FullName)
			}
		})
	}
}

func TestParseAuthors_BracketsRemovedEverywhere(t *testing.T) {
	// Unlike StripBracketsAndTrim, mention cleanup removes every square
	// bracket, not just the outer pair.
	attributions := ParseAuthors("[山田]太郎[著]", nil)

	if attributions[0].Author.FullName != "山田太郎" {
		t.Errorf("unexpected full name: %q", attributions[0].Author.FullName)
	}
	if attributions[0].Role != RoleAuthor {
		t.Errorf("expected role author, got %s", attributions[0].Role)
	}
}

func TestParseAuthors_FullwidthCommaSeparator(t *testing.T) {
	attributions := ParseAuthors("山田太郎著，鈴木一郎訳", nil)

	if len(attributions) != 2 {
		t.Fatalf("expected 2 attributions, got %d", len(attributions))
	}

	roles := []Role{attributions[0].Role, attributions[1].Role}
	if !reflect.DeepEqual(roles, []Role{RoleAuthor, RoleTranslator}) {
		t.Errorf("unexpected roles: %v", roles)
	}
}

func TestParseAuthors_PlainCommaAmbiguity(t *testing.T) {
	// Known fragility: a "last, first" mention splits on the plain comma
	// into two mentions. Documented source-format behavior, not a bug to
	// fix here.
	attributions := ParseAuthors("Yamada, Taro", nil)

	if len(attributions) != 2 {
		t.Fatalf("expected the comma to split the mention, got %d attributions", len(attributions))
	}
	if attributions[0].Author.FullName != "Yamada" {
		t.Errorf("unexpected first mention: %q", attributions[0].Author.FullName)
	}
}

func TestParseAuthors_NoHeadingMatch(t *testing.T) {
	attributions := ParseAuthors("山田太郎著", []string{"スズキ, イチロウ (鈴木, 一郎)"})

	author := attributions[0].Author
	if author.FullName != "山田太郎" {
		t.Errorf("unexpected full name: %q", author.FullName)
	}
	if author.LastName != "" || author.FirstName != "" {
		t.Errorf("expected no enrichment without a matching heading, got %+v", author)
	}
}
