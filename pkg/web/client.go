package web

// clientScript is the browser runtime: it mirrors the session document by
// applying patch frames to the real DOM and reports user interactions as
// event frames. Node IDs are the server's; the hello frame binds the
// server's container to the #app element.
const clientScript = `(() => {
  "use strict";

  const app = document.getElementById("app");
  const nodes = new Map();
  const bound = new Map();
  let rootId = null;

  const scheme = location.protocol === "https:" ? "wss://" : "ws://";
  const ws = new WebSocket(scheme + location.host + "/ws");

  const send = (nodeId, type, value) => {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ kind: "event", event: { nodeId, type, value } }));
    }
  };

  const get = (id) => (id === rootId ? app : nodes.get(id));

  const listenerFor = (nodeId, name) => (ev) => {
    if (name === "submit") ev.preventDefault();
    const value = ev.target && ev.target.value !== undefined ? String(ev.target.value) : "";
    send(nodeId, name, value);
  };

  const apply = (p) => {
    switch (p.op) {
      case "create-element":
        nodes.set(p.nodeId, document.createElement(p.tag));
        break;
      case "create-text":
        nodes.set(p.nodeId, document.createTextNode(p.text || ""));
        break;
      case "insert": {
        const parent = get(p.parentId);
        const ref = p.refId ? get(p.refId) : null;
        if (parent) parent.insertBefore(get(p.nodeId), ref || null);
        break;
      }
      case "replace": {
        const parent = get(p.parentId);
        const oldNode = get(p.refId);
        if (parent && oldNode) parent.replaceChild(get(p.nodeId), oldNode);
        nodes.delete(p.refId);
        break;
      }
      case "remove": {
        const n = get(p.nodeId);
        if (n && n.parentNode) n.parentNode.removeChild(n);
        nodes.delete(p.nodeId);
        break;
      }
      case "set-attr": {
        const n = get(p.nodeId);
        if (!n) break;
        n.setAttribute(p.name, p.value || "");
        if (p.name === "value" && "value" in n) n.value = p.value || "";
        if (p.name === "checked" && "checked" in n) n.checked = true;
        break;
      }
      case "remove-attr": {
        const n = get(p.nodeId);
        if (!n) break;
        n.removeAttribute(p.name);
        if (p.name === "value" && "value" in n) n.value = "";
        if (p.name === "checked" && "checked" in n) n.checked = false;
        break;
      }
      case "set-style": {
        const n = get(p.nodeId);
        if (n) n.style.setProperty(p.name, p.value || "");
        break;
      }
      case "remove-style": {
        const n = get(p.nodeId);
        if (n) n.style.removeProperty(p.name);
        break;
      }
      case "set-text": {
        const n = get(p.nodeId);
        if (n) n.textContent = p.text || "";
        break;
      }
      case "listen": {
        const n = get(p.nodeId);
        if (!n) break;
        const key = p.nodeId + "/" + p.name;
        if (bound.has(key)) break;
        const fn = listenerFor(p.nodeId, p.name);
        bound.set(key, fn);
        n.addEventListener(p.name, fn);
        break;
      }
      case "unlisten": {
        const n = get(p.nodeId);
        const key = p.nodeId + "/" + p.name;
        const fn = bound.get(key);
        if (n && fn) n.removeEventListener(p.name, fn);
        bound.delete(key);
        break;
      }
    }
  };

  ws.onmessage = (msg) => {
    const frame = JSON.parse(msg.data);
    switch (frame.kind) {
      case "hello":
        rootId = frame.hello.rootId;
        break;
      case "patch":
        for (const p of frame.patches) apply(p);
        break;
      case "error":
        console.error("fern:", frame.error.code, frame.error.message);
        break;
    }
  };

  ws.onclose = () => {
    console.warn("fern: session closed");
  };
})();
`
