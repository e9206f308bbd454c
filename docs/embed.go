// Package docs embeds the HTTP API description.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPISpec []byte
