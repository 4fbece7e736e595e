// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// Package inspect exposes debug views of the router state.
package inspect

import (
	"html/template"
	"net/http"
	"sort"

	"github.com/TheThingsIndustries/topaz/pkg/router"
	"github.com/TheThingsIndustries/topaz/pkg/subscription"
)

var tmpl = template.Must(template.New("inspect").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Topaz - Inspect Routes</title>
	<style>
	body {
		font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Open Sans', 'Helvetica Neue', sans-serif;
		color: #222;
		font-size: 12pt;
	}
	h1, h2 {
		vertical-align: middle;
		margin-top: 0.2em;
	}
	code {
		font-family: Consolas, Monaco, "Andale Mono", "Ubuntu Mono", monospace;
	}
	</style>
</head>
<body>
<h1>Routes</h1>
<ul>
{{ range .Routes }}
<li>QoS {{ .QoS }} route <code>{{ .Filter }}</code> &rarr; <code>{{ .Origin }}</code></li>
{{ end }}
</ul>
<h1>Watchers</h1>
<ul>
{{ range .Watchers }}
<li><code>{{ .ID }}</code> watching <code>{{ .Filter }}</code></li>
{{ end }}
</ul>
</body>
</html>
`))

type data struct {
	Routes   []subscription.Route[string]
	Watchers []*router.Watcher
}

type routesByFilter []subscription.Route[string]

func (s routesByFilter) Len() int           { return len(s) }
func (s routesByFilter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s routesByFilter) Less(i, j int) bool { return s[i].Filter < s[j].Filter }

type watchersByID []*router.Watcher

func (s watchersByID) Len() int           { return len(s) }
func (s watchersByID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s watchersByID) Less(i, j int) bool { return s[i].ID < s[j].ID }

// Routes inspector
func Routes(r *router.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var routes routesByFilter
		for _, route := range r.Routes().Subscriptions() {
			routes = append(routes, route)
		}
		sort.Sort(routes)
		watchers := watchersByID(r.Watchers())
		sort.Sort(watchers)
		tmpl.Execute(w, data{
			Routes:   routes,
			Watchers: watchers,
		})
	})
}
