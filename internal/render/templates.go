package render

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#f4f6f9;color:#1f2933;font-size:13px;line-height:1.45}
header{background:#0e3a5b;color:#fff;padding:12px 20px;display:flex;gap:16px;align-items:center;flex-wrap:wrap}
header h1{font-size:17px;font-weight:700;margin-right:auto}
header form{display:flex;gap:8px}
header select{padding:4px 8px;border-radius:4px;border:1px solid #9fb3c8;font-size:12px}
header .org{font-size:12px;color:#bcccdc}
main{display:grid;grid-template-columns:minmax(0,3fr) minmax(0,2fr);gap:16px;padding:16px}
@media (max-width:1000px){main{grid-template-columns:1fr}}
.panel{background:#fff;border:1px solid #d9e2ec;border-radius:8px;padding:12px 14px;margin-bottom:16px}
.panel h2{font-size:12px;font-weight:700;color:#486581;text-transform:uppercase;letter-spacing:.06em;margin-bottom:8px;display:flex;justify-content:space-between}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:right;padding:6px 8px;border-bottom:2px solid #d9e2ec;color:#627d98;font-weight:600;font-size:11px;text-transform:uppercase}
th:first-child{text-align:left}
td{padding:5px 8px;border-bottom:1px solid #f0f4f8}
td.num{text-align:right;font-variant-numeric:tabular-nums}
td.col-metric{text-align:left}
tr.section-row td{background:#f0f4f8;color:#334e68;font-weight:700;font-size:11px;letter-spacing:.08em}
.good{color:#1f8a4c;font-weight:600}
.bad{color:#c53030;font-weight:600}
.feed{max-height:calc(100vh - 140px);overflow-y:auto;display:flex;flex-direction:column;gap:10px}
.tile{border:1px solid #d9e2ec;border-radius:8px;padding:10px 12px;background:#fff}
.tile-top{display:flex;justify-content:space-between;align-items:flex-start}
.row{display:flex;align-items:center}
.gap8{gap:8px}
.avatar{width:30px;height:30px;border-radius:50%;background:#e1e8f0;display:flex;align-items:center;justify-content:center}
.name{font-weight:700}
.meta{display:flex;gap:6px;align-items:center;margin-top:2px;flex-wrap:wrap}
.mini{font-size:11px;color:#627d98}
.pill{display:inline-block;padding:1px 8px;border-radius:10px;background:#e1e8f0;color:#334e68;font-size:11px}
.pill.inp{background:#fde2e2;color:#9b1c1c}
.icd{font-family:monospace;font-size:12px;color:#486581}
.tile-body{display:grid;grid-template-columns:90px 1fr;gap:2px 8px;margin-top:8px}
.label{font-size:10px;color:#829ab1;letter-spacing:.06em}
.value{font-size:12px}
.ital{font-style:italic}
.tag{display:inline-block;padding:0 6px;margin-left:4px;border-radius:4px;font-size:10px;font-weight:700;vertical-align:middle}
.tag.tcm{background:#dbeafe;color:#1e40af}
.tag.ccm{background:#dcfce7;color:#166534}
.tag.rpm{background:#fef3c7;color:#92400e}
.tag.awv{background:#ede9fe;color:#5b21b6}
.tag.acp{background:#fce7f3;color:#9d174d}
.tag.sdoh{background:#ccfbf1;color:#115e59}
.tag.neutral{background:#e5e7eb;color:#374151}
.notice{margin:40px auto;max-width:560px;background:#fff;border:1px solid #f5c2c2;color:#9b1c1c;border-radius:8px;padding:16px 20px}
footer{padding:8px 20px 16px;color:#829ab1;font-size:11px}
</style>
</head>
<body>
{{template "content" .}}
</body>
</html>
{{end}}
`

const tmplDashboard = `
{{define "content"}}
<header>
  <h1>{{.Title}}</h1>
  {{if .Static}}
  <span class="org">{{.OrgLabel}}</span>
  {{else}}
  <form method="get" action="/">
    <select id="orgFilter" name="org" onchange="this.form.submit()">
      {{range .Orgs}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <select id="eventFilter" name="event" onchange="this.form.submit()">
      {{range .Events}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
    </select>
    <noscript><button type="submit">Apply</button></noscript>
  </form>
  {{end}}
</header>
<main>
  <div>
    <section class="panel">
      <h2>Performance Metrics</h2>
      <table>
        <thead><tr><th>Metric</th><th>3-Mo Avg</th><th>Current</th><th>Benchmark</th><th>Variance</th><th>YTD</th></tr></thead>
        <tbody id="performanceTbody">
        {{range .Sections}}
          <tr class="section-row"><td colspan="6">{{.Title}}</td></tr>
          {{range .Rows}}
          <tr>
            <td class="col-metric">{{.KPI}}</td>
            <td class="num">{{.Last3MoAvg}}</td>
            <td class="num"><b>{{.Current}}</b></td>
            <td class="num">{{.Benchmark}}</td>
            <td class="num">{{if not .Variance.IsZero}}<span class="{{.Variance.Tone}}">{{variance .Variance}}</span>{{end}}</td>
            <td class="num">{{.YTDAvg}}</td>
          </tr>
          {{end}}
        {{end}}
        </tbody>
      </table>
    </section>
    <section class="panel">
      <h2>Program Outcomes</h2>
      <table>
        <thead><tr><th>Program</th><th>Eligible</th><th>Engaged</th><th>Completed</th><th>Completion</th><th>Benchmark</th><th>Variance</th></tr></thead>
        <tbody id="programTbody">
        {{range .Programs}}
          <tr>
            <td><b>{{.Program}}</b></td>
            <td class="num">{{.Eligible}}</td>
            <td class="num">{{.Engaged}}</td>
            <td class="num">{{.Completed}}</td>
            <td class="num"><b{{if .CompletionTone}} class="{{.CompletionTone}}"{{end}}>{{.Completion}}</b></td>
            <td class="num">{{.Benchmark}}</td>
            <td class="num">{{if not .Variance.IsZero}}<span class="{{.Variance.Tone}}">{{variance .Variance}}</span>{{end}}</td>
          </tr>
        {{end}}
        </tbody>
      </table>
    </section>
  </div>
  <section class="panel">
    <h2>Utilization Log <span id="totalCount">{{.Feed.Total}}</span></h2>
    <div class="feed" id="feed">
    {{range .Feed.Tiles}}
      <div class="tile">
        <div class="tile-top">
          <div class="row gap8">
            <div class="avatar">👤</div>
            <div>
              <div class="name">{{.Patient}} {{range .Tags}}<span class="tag {{.Class}}">{{.Code}}</span>{{end}}</div>
              <div class="meta">
                <span class="mini">📅 {{.Date}}</span>
                <span class="pill">{{.Org}}</span>
                <span class="pill{{if .EventClass}} {{.EventClass}}{{end}}">{{.Event}}</span>
              </div>
            </div>
          </div>
          <div class="icd">{{.ICD10}}</div>
        </div>
        <div class="tile-body">
          <div class="label">FACILITY</div>
          <div class="value">{{.Facility}}</div>
          <div class="label">DIAGNOSIS</div>
          <div class="value ital">{{.Diagnosis}}</div>
        </div>
      </div>
    {{end}}
    </div>
  </section>
</main>
<footer>Snapshot {{.SnapshotID}}{{with fmtTime .GeneratedAt}} · generated {{.}}{{end}}</footer>
{{end}}
`

const tmplFailure = `
{{define "content"}}
<div class="notice" role="alert">{{.Notice}}</div>
<script>window.alert({{.Notice}});</script>
{{end}}
`
