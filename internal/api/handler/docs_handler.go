package handler

import (
	_ "embed"
	"fmt"
	"html"
	"net/http"

	"github.com/sunny-bhakta/payments-service/internal/domain"
)

//go:embed spec/openapi.json
var openapiSpec []byte

// DocsHandler serves the OpenAPI document plus Swagger UI and ReDoc pages
// for it.
type DocsHandler struct {
	swaggerPage []byte
	redocPage   []byte
}

// NewDocsHandler builds both pages once; specURL is where they fetch the
// OpenAPI document from.
func NewDocsHandler(specURL string) *DocsHandler {
	return &DocsHandler{
		swaggerPage: renderSwaggerUI(specURL),
		redocPage:   renderReDoc(specURL),
	}
}

// OpenAPI handles GET /openapi.json
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiSpec)
}

// SwaggerUI handles GET /docs
func (h *DocsHandler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.swaggerPage)
}

// ReDoc handles GET /redoc
func (h *DocsHandler) ReDoc(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, h.redocPage)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func renderSwaggerUI(specURL string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>%s - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
    <script>
      window.onload = () => {
        window.ui = SwaggerUIBundle({
          url: '%s',
          dom_id: '#swagger-ui',
          presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
          layout: "BaseLayout",
          deepLinking: true
        })
      }
    </script>
  </body>
</html>`, html.EscapeString(domain.ServiceTitle), html.EscapeString(specURL)))
}

func renderReDoc(specURL string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%s - ReDoc</title>
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="%s"></redoc>
    <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
  </body>
</html>`, html.EscapeString(domain.ServiceTitle), html.EscapeString(specURL)))
}
