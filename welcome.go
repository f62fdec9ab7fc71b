package wiz

// welcomePage is the compiled-in page served when no routes are registered.
const welcomePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Wiz</title>
<style>
  body {
    margin: 0;
    min-height: 100vh;
    display: flex;
    flex-direction: column;
    align-items: center;
    justify-content: center;
    font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
    background: #1a1025;
    color: #e9e2f5;
  }
  h1 { font-size: 2.5rem; margin: 1rem 0 0.25rem; }
  p { color: #9b8ec4; }
  code {
    background: #2a1d3d;
    border-radius: 4px;
    padding: 0.15rem 0.4rem;
  }
</style>
</head>
<body>
<svg width="96" height="96" viewBox="0 0 24 24" fill="none" stroke="#b48cff"
  stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round">
  <path d="M15 4V2"/>
  <path d="M15 8V6"/>
  <path d="M12.5 6.5h5"/>
  <path d="M17.5 3.5 4 17a2.1 2.1 0 0 0 3 3L20.5 6.5a2.1 2.1 0 0 0-3-3Z"/>
  <path d="M20 10v2"/>
  <path d="M19 11h2"/>
  <path d="M5 5V3"/>
  <path d="M4 4h2"/>
</svg>
<h1>Wiz</h1>
<p>It works! Register routes with <code>WithRoutes</code> to replace this page.</p>
</body>
</html>
`

// Welcome serves the built-in welcome page. It backs the default GET "/"
// route and the empty-route-table fallback.
func Welcome(c *Context) {
	c.SendHTML(welcomePage)
}
