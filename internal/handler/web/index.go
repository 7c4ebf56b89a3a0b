package web

// IndexHTML is the embedded single-page viewer. It drives the JSON
// API: upload a replay, browse/filter the extracted chat, download
// the current view.
const IndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>WOWS Chat Viewer</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, monospace;
    background: #0d1117; color: #c9d1d9; padding: 20px; max-width: 1100px; margin: 0 auto;
  }
  h1 { color: #58a6ff; margin-bottom: 4px; font-size: 1.5em; }
  .subtitle { color: #8b949e; margin-bottom: 20px; font-size: 0.9em; }
  .panel {
    background: #161b22; border: 1px solid #30363d; border-radius: 6px;
    padding: 16px; margin-bottom: 20px;
  }
  .controls { display: flex; gap: 10px; flex-wrap: wrap; align-items: center; }
  input[type="file"] { color: #8b949e; }
  input[type="text"], select {
    background: #0d1117; color: #c9d1d9; border: 1px solid #30363d;
    border-radius: 4px; padding: 6px 10px;
  }
  button {
    background: #238636; color: #fff; border: none; border-radius: 4px;
    padding: 6px 14px; cursor: pointer;
  }
  button.secondary { background: #21262d; border: 1px solid #30363d; color: #c9d1d9; }
  button:hover { filter: brightness(1.1); }
  .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(130px, 1fr)); gap: 12px; }
  .stat-card { text-align: center; padding: 12px; background: #0d1117; border: 1px solid #30363d; border-radius: 6px; }
  .stat-number { font-size: 1.8em; font-weight: 700; color: #58a6ff; }
  .stat-label { font-size: 0.8em; color: #8b949e; margin-top: 4px; }
  .messages { max-height: 480px; overflow-y: auto; }
  .msg { display: grid; grid-template-columns: 70px 60px 220px 1fr; gap: 10px;
    padding: 6px 10px; border-bottom: 1px solid #21262d; font-size: 0.9em; }
  .msg:hover { background: #1c2128; }
  .clock { color: #8b949e; }
  .badge { display: inline-block; padding: 1px 8px; border-radius: 12px; font-size: 0.75em; font-weight: 600; text-align: center; }
  .badge.team { background: #23312e; color: #3fb950; }
  .badge.all { background: #1c2f45; color: #58a6ff; }
  .badge.other { background: #3a2d16; color: #d29922; }
  .sender { color: #d2a8ff; overflow: hidden; text-overflow: ellipsis; }
  .empty-state, .error-state { text-align: center; padding: 40px 20px; color: #8b949e; }
  .error-state { color: #f85149; }
</style>
</head>
<body>
<h1>&#9875; WOWS Chat Viewer</h1>
<p class="subtitle">Upload a .wowsreplay file to view the in-match chat.</p>

<div class="panel controls">
  <input type="file" id="file" accept=".wowsreplay">
  <button id="upload-btn">Upload</button>
  <span id="status" class="subtitle"></span>
</div>

<div class="panel stats" id="stats" hidden>
  <div class="stat-card"><div class="stat-number" id="stat-total">0</div><div class="stat-label">Messages</div></div>
  <div class="stat-card"><div class="stat-number" id="stat-team">0</div><div class="stat-label">Team</div></div>
  <div class="stat-card"><div class="stat-number" id="stat-all">0</div><div class="stat-label">All</div></div>
  <div class="stat-card"><div class="stat-number" id="stat-other">0</div><div class="stat-label">Other</div></div>
  <div class="stat-card"><div class="stat-number" id="stat-players">0</div><div class="stat-label">Active Players</div></div>
</div>

<div class="panel controls" id="filter-bar" hidden>
  <select id="channel">
    <option value="">all channels</option>
    <option value="team">team</option>
    <option value="all">all</option>
    <option value="other">other</option>
  </select>
  <input type="text" id="sender" placeholder="sender">
  <input type="text" id="q" placeholder="search text">
  <button class="secondary" id="apply-btn">Apply</button>
  <button class="secondary" id="export-txt">Download .txt</button>
  <button class="secondary" id="export-jsonl">Download .jsonl</button>
</div>

<div class="panel messages" id="messages" hidden></div>

<script>
let sessionID = null;

const el = id => document.getElementById(id);

function filterQuery() {
  const params = new URLSearchParams();
  if (el('channel').value) params.set('channel', el('channel').value);
  if (el('sender').value) params.set('sender', el('sender').value);
  if (el('q').value) params.set('q', el('q').value);
  return params.toString();
}

function clock(seconds) {
  const t = Math.max(0, Math.floor(seconds));
  const m = String(Math.floor(t / 60)).padStart(2, '0');
  const s = String(t % 60).padStart(2, '0');
  return m + ':' + s;
}

function renderStats(stats) {
  el('stat-total').textContent = stats.total;
  el('stat-team').textContent = stats.channels.team || 0;
  el('stat-all').textContent = stats.channels.all || 0;
  el('stat-other').textContent = stats.channels.other || 0;
  el('stat-players').textContent = stats.uniqueSenders;
  el('stats').hidden = false;
  el('filter-bar').hidden = false;
}

function renderMessages(messages) {
  const box = el('messages');
  box.hidden = false;
  if (!messages.length) {
    box.innerHTML = '<div class="empty-state">No chat messages found in this replay.</div>';
    return;
  }
  box.innerHTML = messages.map(m => {
    const name = m.clanTag ? '[' + m.clanTag + '] ' + m.sender : m.sender;
    return '<div class="msg">' +
      '<span class="clock">[' + clock(m.timestamp) + ']</span>' +
      '<span class="badge ' + m.channel + '">' + m.channel + '</span>' +
      '<span class="sender">' + escapeHTML(name) + '</span>' +
      '<span>' + escapeHTML(m.text) + '</span></div>';
  }).join('');
}

function escapeHTML(s) {
  const div = document.createElement('div');
  div.textContent = s;
  return div.innerHTML;
}

async function refresh() {
  if (!sessionID) return;
  const res = await fetch('/api/replays/' + sessionID + '/messages?' + filterQuery());
  if (!res.ok) return;
  const body = await res.json();
  renderMessages(body.messages || []);
}

el('upload-btn').addEventListener('click', async () => {
  const file = el('file').files[0];
  if (!file) { el('status').textContent = 'choose a replay file first'; return; }
  el('status').textContent = 'parsing...';
  const form = new FormData();
  form.append('replay', file);
  const res = await fetch('/api/replays', { method: 'POST', body: form });
  const body = await res.json();
  if (!res.ok) {
    el('status').textContent = body.error || 'upload failed';
    el('messages').hidden = false;
    el('messages').innerHTML = '<div class="error-state">' + escapeHTML(body.error || 'upload failed') + '</div>';
    return;
  }
  sessionID = body.session.id;
  el('status').textContent = body.stats.total + ' messages from ' + body.session.replayName;
  renderStats(body.stats);
  refresh();
});

el('apply-btn').addEventListener('click', refresh);
['export-txt', 'export-jsonl'].forEach(id => {
  el(id).addEventListener('click', () => {
    if (!sessionID) return;
    const format = id === 'export-txt' ? 'text' : 'jsonl';
    const qs = filterQuery();
    window.location = '/api/replays/' + sessionID + '/export?format=' + format + (qs ? '&' + qs : '');
  });
});
</script>
</body>
</html>
`
