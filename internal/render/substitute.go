package render

import (
	"regexp"
	"strconv"
	"strings"

	"resume-builder/internal/latex"
)

// Templates declare scalar tokens plus numbered slots for the experience
// section: COMPANY_i, DATE_i, TITLE_i and COMP_i_BULLET_j, 1-based. A template
// authored for three entries ignores a fourth; slots the data does not fill
// are scrubbed to empty strings afterwards so no token syntax leaks into the
// compiled document.
var unusedSlotPattern = regexp.MustCompile(`COMPANY_\d+|COMP_\d+_BULLET_\d+|DATE_\d+|TITLE_\d+`)

// Substitute fills every placeholder token in the template from data. It is a
// total function: every well-formed input yields a document, and tokens whose
// data is absent become empty strings.
func Substitute(template string, data ResumeData) string {
	out := template

	replace := func(token, value string) {
		out = strings.ReplaceAll(out, token, value)
	}

	replace("FULL_NAME", latex.EscapeText(data.FullName))
	replace("PHONE", latex.EscapeText(latex.FormatPhone(data.Phone)))
	replace("EMAIL", latex.EscapeText(data.Email))
	replace("PROFILE", latex.EscapeText(data.Summary))

	replace("LINKEDIN", latex.EscapeURL(data.Socials.LinkedInURL))
	replace("GITHUB", latex.EscapeURL(data.Socials.GitHubURL))
	replace("PORTFOLIO", latex.EscapeURL(data.Socials.PortfolioURL))

	replace("ED_INSTITUTION", latex.EscapeText(data.Education.Institution))
	replace("ED_LOCATION", latex.EscapeText(data.Education.Location))
	replace("ED_DATE", latex.EscapeText(formatDuration(data.Education.Duration)))
	replace("ED_DEGREE", latex.EscapeText(data.Education.Degree))

	// Highest index first: COMPANY_1 is a literal prefix of COMPANY_10, so
	// ascending replacement would corrupt double-digit slots.
	for i := len(data.Experience) - 1; i >= 0; i-- {
		exp := data.Experience[i]
		n := strconv.Itoa(i + 1)
		replace("COMPANY_"+n, latex.EscapeText(exp.Company))
		replace("DATE_"+n, latex.EscapeText(formatDuration(exp.Duration)))
		replace("TITLE_"+n, latex.EscapeText(exp.Position))
		for j := len(exp.Description) - 1; j >= 0; j-- {
			replace("COMP_"+n+"_BULLET_"+strconv.Itoa(j+1), latex.EscapeText(exp.Description[j]))
		}
	}

	replace("SKILLS", skillsBlock(data.Skills))

	return unusedSlotPattern.ReplaceAllString(out, "")
}

// skillsBlock renders the whole skills section procedurally, one table row
// per entry, so this section has no fixed slot count. Every row but the last
// carries a reduced vertical-space terminator.
func skillsBlock(skills []SkillEntry) string {
	rows := make([]string, len(skills))
	for i, skill := range skills {
		terminator := `\\[0.2em]`
		if i == len(skills)-1 {
			terminator = `\\`
		}
		rows[i] = latex.EscapeText(skill.Title) + " & " + latex.EscapeText(skill.Items) + " " + terminator
	}
	return strings.Join(rows, "\n    ")
}

// formatDuration renders a structured range as "Jan 2020 - Present". The end
// date falls back to "Present" when absent or unparsable; the start date is
// passed through raw on parse failure since Validate rejects that upstream.
func formatDuration(d Duration) string {
	start := strings.TrimSpace(d.StartDate)
	if start == "" {
		return ""
	}
	if formatted, err := latex.FormatDate(start); err == nil {
		start = formatted
	}

	end := "Present"
	if d.EndDate != nil {
		if formatted, err := latex.FormatDate(*d.EndDate); err == nil {
			end = formatted
		}
	}

	return start + " - " + end
}
