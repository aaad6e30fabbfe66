package resume

import "resume-builder/internal/render"

// Placeholder values rendered when a user has not saved a section yet, so a
// fresh account still previews a complete document.

func defaultExperience() []render.ExperienceEntry {
	end := "2023-01-01"
	entry := render.ExperienceEntry{
		Company:  "Example Corp",
		Position: "Software Developer",
		Duration: render.Duration{StartDate: "2020-01-01", EndDate: &end},
		Description: []string{
			"Developed and maintained...",
			"Did a thing to increase some stuff...",
		},
	}
	return []render.ExperienceEntry{entry, entry, entry}
}

func defaultSkills() []render.SkillEntry {
	entry := render.SkillEntry{
		Title: "Programming Languages",
		Items: "JavaScript, Python, Java",
	}
	return []render.SkillEntry{entry, entry, entry}
}

func defaultEducation() render.EducationEntry {
	end := "2020-05-01"
	return render.EducationEntry{
		Institution: "University of Example",
		Location:    "Example City, State",
		Duration:    render.Duration{StartDate: "2016-09-01", EndDate: &end},
		Degree:      "Bachelor of Science in Computer Science",
	}
}

func defaultScalar(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
