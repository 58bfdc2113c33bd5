// Package view renders the HTML pages and fragments of the card service as
// templ components.
package view

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

const styles = `
*{box-sizing:border-box}
body{margin:0;min-height:100vh;font-family:system-ui,sans-serif;color:#fff;
background:linear-gradient(135deg,#111827,#1e293b 50%,#312e81);display:flex;align-items:center;justify-content:center;padding:1rem}
.card{max-width:24rem;width:100%;border-radius:1.5rem;overflow:hidden;background:rgba(255,255,255,.15);
backdrop-filter:blur(20px);-webkit-backdrop-filter:blur(20px);box-shadow:0 25px 50px rgba(0,0,0,.4)}
.card-header{position:relative;text-align:center;padding:1.5rem;background:linear-gradient(135deg,rgba(30,41,59,.9),rgba(49,46,129,.9))}
.lang{position:absolute;top:1rem;right:1rem;width:2.5rem;height:2.5rem;border-radius:.75rem;border:1px solid rgba(129,140,248,.4);
background:rgba(79,70,229,.4);color:#fff;cursor:pointer;font-weight:600}
.avatar{width:6rem;height:6rem;margin:0 auto .75rem;border-radius:50%;overflow:hidden;border:4px solid rgba(129,140,248,.3)}
.avatar img{width:100%;height:100%;object-fit:cover}
.initials{width:100%;height:100%;display:none;align-items:center;justify-content:center;font-size:1.25rem;font-weight:700;
background:linear-gradient(135deg,#6366f1,#9333ea)}
h1{font-size:1.5rem;margin:0 0 1rem}
.title{margin:0 0 .25rem;opacity:.9}
.company{margin:0;font-size:.875rem;opacity:.8}
.card-body{padding:1.5rem}
.actions{display:flex;justify-content:center;gap:1rem;margin:0 0 1.5rem;padding:0;list-style:none}
.actions a{display:flex;align-items:center;justify-content:center;width:3.5rem;height:3.5rem;border-radius:50%;
background:rgba(30,41,59,.6);border:1px solid rgba(129,140,248,.3);color:#fff;text-decoration:none;font-size:.7rem}
.buttons{display:flex;flex-direction:column;gap:.75rem}
.button{display:block;text-align:center;padding:.9rem 1.5rem;border-radius:9999px;color:#fff;font-weight:700;text-decoration:none;
background:linear-gradient(90deg,#4f46e5,#9333ea)}
.button.secondary{background:rgba(30,41,59,.3);border:2px solid rgba(71,85,105,.4)}
.message{text-align:center}
`
