package routes

// editorScript runs the snippet switcher in the browser. Switching tabs
// resets the text to the sample, typing updates the counters, and export
// downloads code.<ext> through a Blob URL that is revoked right after.
const editorScript = `(function () {
  var samples = JSON.parse(document.getElementById('code-samples').textContent);
  var area = document.getElementById('code-input');
  var lines = document.getElementById('line-count');
  var chars = document.getElementById('char-count');
  var tabs = document.querySelectorAll('#language-tabs [role="tab"]');
  var state = { language: document.body.dataset.language || 'javascript', buffer: area.value };

  function extension(language) {
    if (language === 'python') return 'py';
    if (language === 'typescript') return 'ts';
    return 'js';
  }

  function refresh() {
    lines.textContent = String(state.buffer.split('\n').length);
    chars.textContent = String(state.buffer.length);
  }

  function selectLanguage(language) {
    if (!Object.prototype.hasOwnProperty.call(samples, language)) return;
    state.language = language;
    state.buffer = samples[language];
    area.value = state.buffer;
    document.body.dataset.language = language;
    tabs.forEach(function (tab) {
      var active = tab.dataset.value === language;
      tab.dataset.state = active ? 'active' : 'inactive';
      tab.setAttribute('aria-selected', active ? 'true' : 'false');
    });
    refresh();
  }

  function edit(text) {
    state.buffer = text;
    refresh();
  }

  function exportCode() {
    var blob = new Blob([state.buffer], { type: 'text/plain' });
    var url = URL.createObjectURL(blob);
    var a = document.createElement('a');
    a.href = url;
    a.download = 'code.' + extension(state.language);
    a.click();
    URL.revokeObjectURL(url);
  }

  tabs.forEach(function (tab) {
    tab.addEventListener('click', function () { selectLanguage(tab.dataset.value); });
  });
  area.addEventListener('input', function () { edit(area.value); });
  document.querySelectorAll('[data-action="export"]').forEach(function (btn) {
    btn.addEventListener('click', exportCode);
  });
  refresh();

  window.codeBuilder = { selectLanguage: selectLanguage, edit: edit, exportCode: exportCode, state: state };
})();`

// reloadScript reconnects to the preview server and reloads on "reload".
// The %s verb is the websocket path.
const reloadScript = `(function () {
  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '%s');
    ws.onmessage = function (ev) { if (ev.data === 'reload') location.reload(); };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();`
