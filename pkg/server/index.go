package server

import "net/http"

// indexPage is the HTML shell served at /. The inline client connects to
// /ws, builds the initial tree by replaying the mount journal, applies
// mutation frames as they arrive, and reports click/input events back.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Loom</title>
</head>
<body>
<div id="app"></div>
<script>
(function () {
  var app = document.getElementById("app");
  var nodes = {};
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");

  function materialize(m) {
    var el;
    if (m.kind === "text") {
      el = document.createTextNode(m.value || "");
    } else {
      el = document.createElement(m.tag || "div");
      el.dataset.loomId = m.node;
    }
    nodes[m.node] = el;
    return el;
  }

  function apply(m) {
    switch (m.op) {
      case 1: // Insert
        nodes[m.parent].insertBefore(nodes[m.node] || materialize(m), nodes[m.ref]);
        break;
      case 2: // Append
        nodes[m.parent].appendChild(nodes[m.node] || materialize(m));
        break;
      case 3: // Remove
        var el = nodes[m.node];
        if (el && el.parentNode) el.parentNode.removeChild(el);
        delete nodes[m.node];
        break;
      case 4: // SetText
        if (nodes[m.node]) nodes[m.node].textContent = m.value || "";
        break;
    }
  }

  ws.onmessage = function (e) {
    var f = JSON.parse(e.data);
    if (f.t === 1) {
      app.innerHTML = "";
      nodes = {};
      nodes[f.root] = app;
      (f.muts || []).forEach(apply);
    } else if (f.t === 2 && f.muts) {
      f.muts.forEach(apply);
    }
  };

  function report(name, e) {
    var target = e.target.closest ? e.target.closest("[data-loom-id]") : null;
    ws.send(JSON.stringify({
      t: 3,
      event: {
        name: name,
        target: target ? target.dataset.loomId : "",
        value: e.target.value || ""
      }
    }));
  }

  document.addEventListener("click", function (e) { report("click", e); });
  document.addEventListener("input", function (e) { report("input", e); });
})();
</script>
</body>
</html>
`

// handleIndex serves the client shell.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
