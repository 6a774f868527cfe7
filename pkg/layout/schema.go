package layout

import (
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	documentSchemaOnce sync.Once
	documentSchemaDef  *openapi3.Schema
)

// DocumentSchema returns the OpenAPI 3 schema describing a layout document.
// Coordinates are optional at this stage; the compiler reports elements
// without geometry as MissingGeometryError.
func DocumentSchema() *openapi3.Schema {
	documentSchemaOnce.Do(func() {
		documentSchemaDef = buildDocumentSchema()
	})
	return documentSchemaDef
}

func buildDocumentSchema() *openapi3.Schema {
	pixels := func() *openapi3.Schema {
		return openapi3.NewIntegerSchema().WithMin(0)
	}

	coordinates := openapi3.NewObjectSchema().
		WithProperty("x", pixels()).
		WithProperty("y", pixels()).
		WithProperty("width", pixels()).
		WithProperty("height", pixels()).
		WithNullable()
	coordinates.Required = []string{"x", "y", "width", "height"}

	names := make([]string, 0, len(Types()))
	for _, t := range Types() {
		names = append(names, string(t))
	}

	element := openapi3.NewObjectSchema().
		WithProperty("type", openapi3.NewStringSchema().WithPattern(`^(?i:`+strings.Join(names, "|")+`)$`)).
		WithProperty("content", openapi3.NewStringSchema().WithNullable()).
		WithProperty("name", openapi3.NewStringSchema().WithNullable()).
		WithProperty("value", openapi3.NewStringSchema().WithNullable()).
		WithProperty("coordinates", coordinates)
	element.Required = []string{"type"}

	document := openapi3.NewObjectSchema().
		WithProperty("data", openapi3.NewArraySchema().WithItems(element))
	document.Required = []string{"data"}

	return document
}
