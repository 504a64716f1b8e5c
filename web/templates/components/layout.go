package components

import (
	"context"
	"encoding/json"

	"ticketvue/internal/middleware"

	"github.com/a-h/templ"
)

const styles = `
body{margin:0;font-family:system-ui,sans-serif;background:#0f172a;color:#e2e8f0}
a{color:inherit}
.container{max-width:72rem;margin:0 auto;padding:1rem}
.nav{display:flex;justify-content:space-between;align-items:center;gap:1rem;border-bottom:1px solid #334155}
.nav form{display:inline}
.btn{background:#7c3aed;color:#fff;border:0;border-radius:.5rem;padding:.5rem 1rem;cursor:pointer}
.btn[disabled]{opacity:.5;cursor:not-allowed}
.btn-link{background:none;border:0;color:#c4b5fd;cursor:pointer}
.btn-danger{background:#dc2626}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr));gap:1rem}
.card{background:#1e293b;border-radius:.75rem;padding:1rem}
.muted{color:#94a3b8}
.warning{color:#fbbf24}
.banner{padding:.75rem 1rem;border-radius:.5rem;margin:1rem 0}
.banner-success{background:#14532d}
.banner-error{background:#7f1d1d}
.field-error{color:#fca5a5;font-size:.875rem}
.modal{position:fixed;inset:0;background:rgba(0,0,0,.6);display:flex;align-items:center;justify-content:center}
.modal .card{min-width:20rem}
input{display:block;width:100%;margin:.25rem 0 .75rem;padding:.5rem;border-radius:.375rem;border:1px solid #475569;background:#0f172a;color:#e2e8f0}
table{width:100%;border-collapse:collapse}
td,th{padding:.5rem;border-bottom:1px solid #334155;text-align:left}
`

// Layout wraps a page body in the document shell. htmx requests carry the
// CSRF token through hx-headers.
func Layout(title string, body templ.Component) templ.Component {
	return Func(func(ctx context.Context, b *Builder) {
		headers, _ := json.Marshal(map[string]string{middleware.CSRFHeader: middleware.GetCSRFToken(ctx)})

		b.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8">`)
		b.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0"><title>`)
		b.Text(title)
		b.Raw(`</title><script src="https://unpkg.com/htmx.org@1.9.12"></script><style>`, styles, `</style></head>`)
		b.Raw(`<body`)
		b.Attr("hx-headers", string(headers))
		b.Raw(`>`)
		b.Component(ctx, body)
		b.Raw(`</body></html>`)
	})
}
