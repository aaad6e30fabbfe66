package render

import (
	"strconv"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

const singleEntryTemplate = `\name{FULL_NAME} \phone{PHONE} \email{EMAIL}
PROFILE
LINKEDIN GITHUB PORTFOLIO
ED_INSTITUTION, ED_LOCATION (ED_DATE) ED_DEGREE
COMPANY_1 | TITLE_1 | DATE_1
\item COMP_1_BULLET_1
\item COMP_1_BULLET_2
\begin{tabular}{ll}
    SKILLS
\end{tabular}`

func singleEntryData() ResumeData {
	return ResumeData{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "1234567890",
		Summary:  "Analytical engine programmer",
		Socials: Socials{
			LinkedInURL:  "https://linkedin.com/in/ada",
			GitHubURL:    "https://github.com/ada",
			PortfolioURL: "https://ada.dev",
		},
		Experience: []ExperienceEntry{
			{
				Company:  "Analytical Engines Ltd",
				Position: "Programmer",
				Duration: Duration{StartDate: "2020-01-15"},
				Description: []string{
					"Wrote the first program",
					"Documented the machine",
				},
			},
		},
		Skills: []SkillEntry{
			{Title: "Languages", Items: "Notes, Diagrams"},
		},
		Education: EducationEntry{
			Institution: "Home Tutoring",
			Location:    "London, UK",
			Duration:    Duration{StartDate: "2016-09-01", EndDate: strPtr("2020-05-01")},
			Degree:      "Mathematics",
		},
	}
}

func TestSubstituteFillsEveryToken(t *testing.T) {
	out := Substitute(singleEntryTemplate, singleEntryData())

	tokens := []string{
		"FULL_NAME", "PHONE", "EMAIL", "PROFILE",
		"LINKEDIN", "GITHUB", "PORTFOLIO",
		"ED_INSTITUTION", "ED_LOCATION", "ED_DATE", "ED_DEGREE",
		"COMPANY_1", "TITLE_1", "DATE_1",
		"COMP_1_BULLET_1", "COMP_1_BULLET_2",
		"SKILLS",
	}
	for _, token := range tokens {
		if strings.Contains(out, token) {
			t.Fatalf("residual token %s in output:\n%s", token, out)
		}
	}

	for _, want := range []string{
		"Ada Lovelace",
		"(123) 456-7890",
		"ada@example.com",
		"Jan 2020 - Present",
		"Sep 2016 - May 2020",
		"Wrote the first program",
		"Documented the machine",
		`Languages & Notes, Diagrams \\`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSubstituteScrubsUnfilledSlots(t *testing.T) {
	template := "COMPANY_2 | TITLE_2 | DATE_2\n\\item COMP_2_BULLET_1"

	out := Substitute(template, singleEntryData())

	if strings.ContainsAny(out, "CDT") {
		t.Fatalf("expected unfilled slots scrubbed, got %q", out)
	}
}

func TestSubstituteIgnoresExcessEntries(t *testing.T) {
	data := singleEntryData()
	data.Experience = append(data.Experience, ExperienceEntry{
		Company:  "Second Corp",
		Position: "Advisor",
		Duration: Duration{StartDate: "2021-03-01"},
	})

	out := Substitute(singleEntryTemplate, data)

	if strings.Contains(out, "Second Corp") {
		t.Fatalf("entry without a template slot leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "Analytical Engines Ltd") {
		t.Fatalf("first entry missing from output:\n%s", out)
	}
}

func TestSubstituteEscapesSpecialCharacters(t *testing.T) {
	data := singleEntryData()
	data.FullName = "Ann & Bob_50%"

	out := Substitute("FULL_NAME", data)

	if out != `Ann \& Bob\_50\%` {
		t.Fatalf("unexpected escaped name: %q", out)
	}
}

func TestSubstituteEscapesURLsMinimally(t *testing.T) {
	data := singleEntryData()
	data.Socials.LinkedInURL = "https://a.com/me%20x#top&q=1"

	out := Substitute("LINKEDIN", data)

	if out != `https://a.com/me\%20x\#top&q=1` {
		t.Fatalf("unexpected escaped url: %q", out)
	}
}

func TestSubstituteDoubleDigitSlots(t *testing.T) {
	data := singleEntryData()
	data.Experience = make([]ExperienceEntry, 10)
	for i := range data.Experience {
		n := strconv.Itoa(i + 1)
		data.Experience[i] = ExperienceEntry{
			Company:     "Company " + n,
			Position:    "Role " + n,
			Duration:    Duration{StartDate: "2020-01-15"},
			Description: []string{"bullet"},
		}
	}

	out := Substitute("COMPANY_1 / COMPANY_10 / TITLE_1 / TITLE_10", data)
	if out != "Company 1 / Company 10 / Role 1 / Role 10" {
		t.Fatalf("double-digit slots corrupted: %q", out)
	}
}

func TestSubstituteDoubleDigitBullets(t *testing.T) {
	data := singleEntryData()
	bullets := make([]string, 10)
	for i := range bullets {
		bullets[i] = "bullet " + strconv.Itoa(i+1)
	}
	data.Experience[0].Description = bullets

	out := Substitute("COMP_1_BULLET_1 / COMP_1_BULLET_10", data)
	if out != "bullet 1 / bullet 10" {
		t.Fatalf("double-digit bullets corrupted: %q", out)
	}
}

func TestSkillsBlockTerminators(t *testing.T) {
	skills := []SkillEntry{
		{Title: "A", Items: "a1, a2"},
		{Title: "B", Items: "b1"},
		{Title: "C", Items: "c1"},
		{Title: "D", Items: "d1"},
		{Title: "E", Items: "e1"},
	}

	out := skillsBlock(skills)
	rows := strings.Split(out, "\n    ")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d: %q", len(rows), out)
	}
	for i, row := range rows[:4] {
		if !strings.HasSuffix(row, `\\[0.2em]`) {
			t.Fatalf("row %d missing spaced terminator: %q", i, row)
		}
	}
	last := rows[4]
	if !strings.HasSuffix(last, `\\`) || strings.HasSuffix(last, `\\[0.2em]`) {
		t.Fatalf("last row has wrong terminator: %q", last)
	}
}

func TestSkillsBlockEmpty(t *testing.T) {
	if out := skillsBlock(nil); out != "" {
		t.Fatalf("expected empty block, got %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		in   Duration
		want string
	}{
		{"both dates", Duration{StartDate: "2020-01-15", EndDate: strPtr("2022-03-05")}, "Jan 2020 - Mar 2022"},
		{"ongoing", Duration{StartDate: "2020-01-15"}, "Jan 2020 - Present"},
		{"unparsable end", Duration{StartDate: "2020-01-15", EndDate: strPtr("soon")}, "Jan 2020 - Present"},
		{"empty start", Duration{}, ""},
		{"raw start passthrough", Duration{StartDate: "soon"}, "soon - Present"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestValidateRejectsBadStartDate(t *testing.T) {
	data := singleEntryData()
	data.Experience[0].Duration.StartDate = "soon"

	if err := data.Validate(); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
