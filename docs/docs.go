// Package docs registers the Travel Diary OpenAPI document with swag.
package docs

import (
	_ "embed"

	"github.com/ghodss/yaml"
	"github.com/swaggo/swag"
)

//go:embed swagger.yaml
var swaggerYAML []byte

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "Travel Diary API",
	Description:      "Destination catalogue and image lookup proxy.",
	InfoInstanceName: "swagger",
}

func init() {
	doc, err := yaml.YAMLToJSON(swaggerYAML)
	if err != nil {
		panic("docs: invalid swagger.yaml: " + err.Error())
	}
	SwaggerInfo.SwaggerTemplate = string(doc)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
