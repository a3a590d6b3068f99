package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.profile.Name}}</title>
<style>
body { margin: 0; background: {{.background}}; color: {{.text}}; font-family: monospace; }
main { max-width: 48rem; margin: 0 auto; padding: 2rem; }
.splash { display: block; width: 100%; }
.prompt { color: {{.primary}}; }
.muted { color: {{.muted}}; }
a.button { color: {{.background}}; background: {{.primary}}; padding: .4rem 1rem; text-decoration: none; margin-right: .5rem; }
section { border-top: 1px solid {{.muted}}; margin-top: 2rem; }
</style>
</head>
<body>
<img class="splash" src="/splash.svg?seed={{.seed}}&tick=0" alt="particle sphere">
<main>
{{range .profile.HeroLines}}<h1><span class="prompt">&gt; </span>{{.}}</h1>
{{end}}
<p>{{range .profile.Links}}<a class="button" href="{{.URL}}">{{.Label}}</a>{{end}}</p>
{{with .profile.Skills}}<section><h2>Skills</h2>
{{range .}}<h3>{{.Category}}</h3><p>{{range $i, $it := .Items}}{{if $i}} · {{end}}{{$it}}{{end}}</p>
{{end}}</section>{{end}}
{{with .profile.Experience}}<section><h2>Experience</h2>
{{range .}}<h3>{{.Role}} @ {{.Company}}</h3><p class="muted">{{.Period}}</p>
<ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>
{{end}}</section>{{end}}
{{with .profile.Education}}<section><h2>Education</h2>
{{range .}}<h3>{{.Degree}} in {{.Field}}</h3><p class="muted">{{.Institution}}, {{.Year}}</p>
<ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>
{{end}}</section>{{end}}
</main>
</body>
</html>
`
