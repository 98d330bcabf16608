package web

import (
	"fmt"
	"html/template"

	"github.com/shenikar/police_smart_analytics/internal/view"
)

var badgeClasses = map[view.Color]string{
	view.ColorGray:   "bg-gray-100 text-gray-700",
	view.ColorBlue:   "bg-blue-100 text-blue-700",
	view.ColorGreen:  "bg-green-100 text-green-700",
	view.ColorRed:    "bg-red-100 text-red-700",
	view.ColorAmber:  "bg-amber-100 text-amber-700",
	view.ColorViolet: "bg-violet-100 text-violet-700",
}

var funcMap = template.FuncMap{
	"badge": func(c view.Color) string {
		if cls, ok := badgeClasses[c]; ok {
			return cls
		}
		return badgeClasses[view.ColorGray]
	},
	"width": func(percent float64) template.CSS {
		return template.CSS(fmt.Sprintf("width: %.1f%%", percent))
	},
}

// Templates шаблоны страницы дашборда
func Templates() *template.Template {
	return template.Must(template.New("dashboard").Funcs(funcMap).Parse(tmplDashboard))
}

const tmplDashboard = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Police Smart Analytics</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-gradient-to-br from-slate-50 to-indigo-50">
<header class="p-6 border-b bg-white/80 sticky top-0">
  <div class="max-w-6xl mx-auto flex items-center justify-between">
    <h1 class="text-xl sm:text-2xl font-semibold text-gray-800">Police Smart Analytics</h1>
    <div class="flex items-center gap-2">
      <form method="post" action="/refresh"><button class="px-3 py-2 text-sm rounded-md bg-indigo-600 text-white">Refresh</button></form>
      <form method="post" action="/seed"><button class="px-3 py-2 text-sm rounded-md bg-gray-100 text-gray-800">Seed sample data</button></form>
    </div>
  </div>
</header>
<main class="max-w-6xl mx-auto p-6 space-y-6">
  <div class="grid grid-cols-2 sm:grid-cols-4 gap-4">
    {{range .KPIs}}
    <div class="bg-white rounded-xl p-5 shadow-sm border border-gray-100">
      <div class="text-sm text-gray-500">{{.Label}}</div>
      <div class="mt-1 text-3xl font-semibold text-gray-800">{{.Value}}</div>
    </div>
    {{end}}
  </div>

  <form method="post" action="/apply" class="bg-white rounded-xl p-4 shadow-sm border border-gray-100">
    <div class="grid sm:grid-cols-5 gap-3">
      {{$filters := .Filters}}
      {{range .Facets}}
      {{$current := $filters.Get .Name}}
      <select name="{{.Name}}" class="w-full border rounded-md p-2 text-sm">
        {{range .Options}}<option value="{{.Value}}"{{if eq .Value $current}} selected{{end}}>{{.Label}}</option>{{end}}
      </select>
      {{end}}
      <button class="px-3 py-2 text-sm rounded-md bg-gray-900 text-white">Apply</button>
    </div>
  </form>

  <div class="bg-white rounded-xl p-4 shadow-sm border border-gray-100">
    <h3 class="font-semibold text-gray-800 mb-3">Incidents by Type</h3>
    <div class="grid grid-cols-2 sm:grid-cols-3 md:grid-cols-5 gap-3">
      {{range .Bars}}
      <div class="flex items-center gap-2">
        <div class="h-2 flex-1 bg-indigo-100 rounded"><div class="h-2 bg-indigo-600 rounded" style="{{width .Percent}}"></div></div>
        <div class="text-sm text-gray-700 whitespace-nowrap">{{.Label}}</div>
      </div>
      {{end}}
    </div>
  </div>

  <div class="bg-white rounded-xl p-4 shadow-sm border border-gray-100 overflow-x-auto">
    <table class="w-full text-left">
      <thead>
        <tr class="text-xs uppercase text-gray-500 border-b">
          <th class="py-2">ID</th><th class="py-2">Type</th><th class="py-2">Severity</th>
          <th class="py-2">Status</th><th class="py-2">Precinct</th><th class="py-2">Response (min)</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr class="border-b last:border-b-0">
          <td class="py-2 text-sm text-gray-700">{{.IncidentID}}</td>
          <td class="py-2 text-sm"><span class="text-xs px-2 py-1 rounded-full {{badge .TypeColor}}">{{.Type}}</span></td>
          <td class="py-2 text-sm"><span class="text-xs px-2 py-1 rounded-full {{badge .SeverityColor}}">{{.Severity}}</span></td>
          <td class="py-2 text-sm"><span class="text-xs px-2 py-1 rounded-full {{badge .StatusColor}}">{{.Status}}</span></td>
          <td class="py-2 text-sm text-gray-600">{{.Precinct}}</td>
          <td class="py-2 text-sm text-gray-600">{{.ResponseMinutes}}</td>
        </tr>
        {{end}}
        {{if .Message}}
        <tr><td colspan="6" class="py-8 text-center text-gray-500 text-sm">{{.Message}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
</main>
</body>
</html>`
