package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "ratesservice/internal/api/docs" // registers the generated rates API document
)

const swaggerDocPath = "/swagger/doc.json"

// SwaggerUIHandler serves the Swagger UI for the rates API, with the rate and unit operations expanded.
func SwaggerUIHandler() http.HandlerFunc {
	return httpSwagger.Handler(
		httpSwagger.URL(swaggerDocPath),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DeepLinking(true),
	)
}

// OpenAPISpecHandler redirects /openapi.json to the generated rates API document.
func OpenAPISpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, swaggerDocPath, http.StatusTemporaryRedirect)
	}
}
