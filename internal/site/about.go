package site

import "strings"

// Skill categories.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDevOps   = "devops"
	CategoryTools    = "tools"
)

// Section is a titled block of prose on the About page.
type Section struct {
	Title      string   `json:"title" yaml:"title"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

// Skill is one chip in the skills row.
type Skill struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// Interest is one tile in the interests grid. Icon names a glyph the
// renderer maps to its own icon set.
type Interest struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
}

// About is the static content of the About page.
type About struct {
	Heading        string     `json:"heading" yaml:"heading"`
	Tagline        string     `json:"tagline" yaml:"tagline"`
	Intro          []string   `json:"intro" yaml:"intro"`
	Story          Section    `json:"story" yaml:"story"`
	SkillsTitle    string     `json:"skillsTitle" yaml:"skillsTitle"`
	Skills         []Skill    `json:"skills" yaml:"skills"`
	InterestsTitle string     `json:"interestsTitle" yaml:"interestsTitle"`
	Interests      []Interest `json:"interests" yaml:"interests"`
}

// DefaultTagline is shown under the heading and doubles as the author
// headline fallback.
const DefaultTagline = "Full Stack Developer • Open Source Enthusiast"

// DefaultAbout returns the placeholder content the site ships with.
func DefaultAbout() About {
	return About{
		Heading: "About Me",
		Tagline: DefaultTagline,
		Intro: []string{
			"Welcome to my corner of the internet! I'm a passionate developer who loves " +
				"building things for the web. I enjoy turning complex problems into simple, " +
				"beautiful, and intuitive solutions.",
			"When I'm not coding, you can find me exploring new technologies, contributing " +
				"to open source projects, or enjoying a good cup of coffee while reading about " +
				"the latest trends in web development.",
		},
		Story: Section{
			Title: "My Journey",
			Paragraphs: []string{
				"I started my journey in software development with a curiosity about how things work " +
					"on the internet. That curiosity led me to learn HTML, CSS, and JavaScript, and " +
					"eventually to building full-stack applications with modern frameworks.",
				"Over the years, I've had the opportunity to work on diverse projects, from " +
					"small business websites to large-scale enterprise applications. Each project has " +
					"taught me something new and reinforced my love for creating software that makes " +
					"a difference.",
				"Today, I focus on building accessible, performant, and user-friendly web applications. " +
					"I believe in writing clean code, continuous learning, and sharing knowledge with " +
					"the developer community.",
			},
		},
		SkillsTitle: "Skills & Technologies",
		Skills: []Skill{
			{Name: "React", Category: CategoryFrontend},
			{Name: "TypeScript", Category: CategoryFrontend},
			{Name: "Next.js", Category: CategoryFrontend},
			{Name: "Node.js", Category: CategoryBackend},
			{Name: "PostgreSQL", Category: CategoryBackend},
			{Name: "GraphQL", Category: CategoryBackend},
			{Name: "Docker", Category: CategoryDevOps},
			{Name: "AWS", Category: CategoryDevOps},
			{Name: "Git", Category: CategoryTools},
		},
		InterestsTitle: "Interests",
		Interests: []Interest{
			{Icon: "code", Label: "Software Development"},
			{Icon: "lightbulb", Label: "Learning"},
			{Icon: "rocket", Label: "Side Projects"},
			{Icon: "groups", Label: "Open Source"},
			{Icon: "coffee", Label: "Coffee"},
			{Icon: "psychology", Label: "Problem Solving"},
		},
	}
}

// SkillNames returns the skill names in display order.
func (a About) SkillNames() []string {
	names := make([]string, 0, len(a.Skills))
	for _, skill := range a.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// SkillsIn returns the skills of one category in display order.
func (a About) SkillsIn(category string) []Skill {
	var out []Skill
	for _, skill := range a.Skills {
		if skill.Category == category {
			out = append(out, skill)
		}
	}
	return out
}

// Summary returns the first sentence of the intro, or the tagline when there
// is no intro.
func (a About) Summary() string {
	if len(a.Intro) == 0 {
		return a.Tagline
	}
	intro := strings.TrimSpace(a.Intro[0])
	if i := strings.IndexAny(intro, ".!?"); i >= 0 {
		return intro[:i+1]
	}
	return intro
}
