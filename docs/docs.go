// Package docs holds the Swagger 2.0 description of the HTTP API. It is
// maintained by hand next to the handler annotations and served to the
// Swagger UI.
package docs

import _ "embed"

//go:embed swagger.yaml
var Swagger []byte
