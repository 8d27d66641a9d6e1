package web

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/opencode-ai/folio/internal/site"
	"github.com/opencode-ai/folio/internal/theme"
)

type pageData struct {
	SiteTitle string
	Mode      theme.Mode
	Opposite  theme.Mode
	ThemeCSS  template.CSS
	Baseline  template.CSS
	Author    site.Author
	Initials  string
	About     site.About
}

const baseCSS = `
body {
  margin: 0;
  background: var(--folio-palette-background-default);
  color: var(--folio-palette-text-primary);
  font-family: var(--folio-font-family);
  font-size: var(--folio-typography-body1-font-size);
  line-height: var(--folio-typography-body1-line-height);
}
header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: calc(var(--folio-spacing) * 2) calc(var(--folio-spacing) * 3);
  background: var(--folio-palette-background-paper);
  border-bottom: 1px solid var(--folio-palette-divider);
}
main { max-width: 760px; margin: 0 auto; padding: calc(var(--folio-spacing) * 4) calc(var(--folio-spacing) * 3); }
h1 { font-size: var(--folio-typography-h1-font-size); font-weight: var(--folio-typography-h1-font-weight); line-height: var(--folio-typography-h1-line-height); letter-spacing: var(--folio-typography-h1-letter-spacing, normal); }
h2 { font-size: var(--folio-typography-h4-font-size); font-weight: var(--folio-typography-h4-font-weight); }
a { color: var(--folio-palette-primary-main); text-decoration: none; }
a:hover { text-decoration: underline; }
.card {
  background: var(--folio-palette-background-paper);
  border: 1px solid var(--folio-palette-divider);
  border-radius: var(--folio-shape-border-radius);
  padding: calc(var(--folio-spacing) * 3);
  margin-bottom: calc(var(--folio-spacing) * 3);
}
.hero { display: flex; gap: calc(var(--folio-spacing) * 5); align-items: center; margin-bottom: calc(var(--folio-spacing) * 8); }
.avatar {
  display: inline-flex; align-items: center; justify-content: center; flex: none;
  width: 180px; height: 180px; border-radius: 50%; object-fit: cover;
  border: 3px solid var(--folio-palette-primary-main);
  background: var(--folio-palette-text-disabled);
  color: var(--folio-palette-primary-contrast-text);
  font-size: 4rem; font-weight: 600;
}
.tagline { font-size: var(--folio-typography-h5-font-size); }
.story { background: linear-gradient(135deg, var(--folio-palette-action-hover) 0%, transparent 100%); }
.interests { display: grid; grid-template-columns: repeat(auto-fill, minmax(120px, 1fr)); gap: calc(var(--folio-spacing) * 2); }
.interest { display: flex; align-items: center; justify-content: center; min-height: 120px; text-align: center; margin: 0; font-size: var(--folio-typography-body2-font-size); font-weight: 500; transition: transform 0.2s; }
.interest:hover { transform: translateY(-2px); }
@media (max-width: 640px) { .hero { flex-direction: column; text-align: center; } }
.muted { color: var(--folio-palette-text-secondary); }
.chip {
  display: inline-block;
  padding: 2px calc(var(--folio-spacing) * 1.5);
  margin: 0 var(--folio-spacing) var(--folio-spacing) 0;
  border: 1px solid var(--folio-palette-divider);
  border-radius: calc(var(--folio-shape-border-radius) * 3);
  color: var(--folio-palette-text-secondary);
  font-size: var(--folio-typography-body2-font-size);
}
.overline { text-transform: uppercase; font-size: var(--folio-typography-overline-font-size); color: var(--folio-palette-text-secondary); }
`

var pageTemplate = template.Must(template.New("about").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Mode}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="color-scheme" content="{{.Mode}}">
<title>{{.About.Heading}} | {{.SiteTitle}}</title>
<meta property="og:title" content="{{.Author.Name}}">
<meta property="og:description" content="{{.Author.Headline}}">
<meta property="og:image" content="/opengraph-image.png?mode={{.Mode}}">
<link rel="icon" href="/icon.png?mode={{.Mode}}" type="image/png">
<link rel="apple-touch-icon" href="/apple-icon.png?mode={{.Mode}}">
<style>{{.ThemeCSS}}</style>
<style>{{.Baseline}}</style>
</head>
<body>
<header>
  <strong>{{.SiteTitle}}</strong>
  <a href="/?mode={{.Opposite}}" rel="nofollow">Switch to {{.Opposite}}</a>
</header>
<main>
  <section class="hero">
    {{if .Author.HasAvatar}}<img class="avatar" src="{{.Author.AvatarURL}}" alt="{{.Author.Name}}">{{else}}<span class="avatar" role="img" aria-label="{{.Author.Name}}">{{.Initials}}</span>{{end}}
    <div>
      <h1>{{.About.Heading}}</h1>
      <p class="tagline muted">{{.About.Tagline}}</p>
      {{range .About.Intro}}<p class="muted">{{.}}</p>{{end}}
    </div>
  </section>
  <section class="card story">
    <h2>{{.About.Story.Title}}</h2>
    {{range .About.Story.Paragraphs}}<p class="muted">{{.}}</p>{{end}}
  </section>
  {{if .About.Skills}}
  <section>
    <h2>{{.About.SkillsTitle}}</h2>
    <div>{{range .About.Skills}}<span class="chip" data-category="{{.Category}}">{{.Name}}</span>{{end}}</div>
  </section>
  {{end}}
  {{if .About.Interests}}
  <section>
    <h2>{{.About.InterestsTitle}}</h2>
    <div class="interests">{{range .About.Interests}}<div class="card interest" data-icon="{{.Icon}}">{{.Label}}</div>{{end}}</div>
  </section>
  {{end}}
</main>
</body>
</html>
`))

// themeStylesheet renders both modes as data-theme rules plus the page base
// styles. The dark rule also applies to :root.
func themeStylesheet(registry *theme.Registry) (string, error) {
	var b strings.Builder
	for _, mode := range theme.Modes() {
		cfg, err := registry.Resolve(mode)
		if err != nil {
			return "", err
		}
		selector := ""
		if mode == theme.ModeDark {
			selector = `:root, [data-theme="dark"]`
		}
		b.WriteString(cfg.CSS(selector))
	}
	b.WriteString(baseCSS)
	return b.String(), nil
}

func renderPage(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
