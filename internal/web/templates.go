package web

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:sans-serif;background:#fafafa;color:#222;font-size:13px;line-height:1.5}
a{color:#1f6feb;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#fff;border-bottom:1px solid #ddd;padding:8px 16px;display:flex;gap:16px;align-items:center}
nav .brand{font-weight:700;font-size:15px;margin-right:8px}
main{padding:16px}
h1{font-size:16px;font-weight:700;margin-bottom:12px}
.chart{background:#fff;border:1px solid #ddd;border-radius:6px;display:inline-block;padding:8px}
.err{color:#b91c1c;background:#fef2f2;border:1px solid #fecaca;border-radius:6px;padding:12px 16px}
.dim{color:#777}
.line{cursor:pointer}
.brush{cursor:crosshair}
.country-label{font-size:12px}
</style>
</head>
<body>
<nav>
<span class="brand">datavis</span>
<a href="/">Home</a>
<a href="/bars">Attractions</a>
<a href="/lines">Fertility</a>
</nav>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}
`

const tmplIndex = `
{{define "content"}}
<h1>Charts</h1>
<ul>
<li><a href="/bars">Top tourist attractions in Austria</a> <span class="dim">({{.Bars}})</span></li>
<li><a href="/lines">World fertility rates</a> <span class="dim">({{.Lines}})</span></li>
</ul>
{{end}}
`

const tmplBars = `
{{define "content"}}
<h1>Top tourist attractions in Austria</h1>
<div class="chart">{{.Chart}}</div>
{{end}}
`

const tmplError = `
{{define "content"}}
<h1>{{.Title}}</h1>
<div class="err">{{.Error}}</div>
{{end}}
`

const tmplLines = `
{{define "content"}}
<h1>World fertility rates</h1>
<p class="dim">Point at a line to highlight it, click to pin it. Drag on the overview to zoom, click on it to reset.</p>
<div class="chart" id="chart">{{.Chart}}</div>
<script>
(function() {
  const chart = document.getElementById("chart");
  let start = null;
  let queue = Promise.resolve();

  function send(ev) {
    queue = queue.then(() => fetch("/lines/events", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(ev),
    })).then(r => r.ok ? r.text() : Promise.reject(r.statusText))
      .then(svg => { chart.innerHTML = svg; })
      .catch(err => console.error(err));
  }

  function serie(target) {
    const el = target.closest(".focus .line");
    if (!el || !el.id) {
      return "";
    }
    return el.id.replace(/^serie-/, "");
  }

  function pixel(ev) {
    const area = chart.querySelector(".context .brush");
    const pt = new DOMPoint(ev.clientX, ev.clientY).matrixTransform(area.getScreenCTM().inverse());
    return pt.x;
  }

  chart.addEventListener("mouseover", ev => {
    const s = serie(ev.target);
    if (s) send({type: "enter", series: s});
  });
  chart.addEventListener("mouseout", ev => {
    const s = serie(ev.target);
    if (s) send({type: "leave", series: s});
  });
  chart.addEventListener("click", ev => {
    const s = serie(ev.target);
    if (s) send({type: "click", series: s});
  });
  chart.addEventListener("mousedown", ev => {
    if (ev.target.closest(".context .brush")) {
      start = pixel(ev);
      ev.preventDefault();
    }
  });
  document.addEventListener("mouseup", ev => {
    if (start === null) {
      return;
    }
    const end = pixel(ev);
    if (Math.abs(end - start) < 1) {
      send({type: "clear"});
    } else {
      send({type: "brush", x0: start, x1: end});
    }
    start = null;
  });
})();
</script>
{{end}}
`
