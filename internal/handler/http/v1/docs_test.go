package v1

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	_ "github.com/shenikar/police_smart_analytics/docs"
	"github.com/shenikar/police_smart_analytics/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func readSwaggerDoc(t *testing.T) swaggerDoc {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestSwaggerDoc_CoversRegisteredRoutes(t *testing.T) {
	_, _, router := newTestHandler(t)
	doc := readSwaggerDoc(t)

	require.Equal(t, "/api/v1", doc.BasePath)
	routes := router.Routes()
	require.NotEmpty(t, routes)

	documented := 0
	for _, methods := range doc.Paths {
		documented += len(methods)
	}
	assert.Equal(t, len(routes), documented)

	for _, r := range routes {
		path := strings.TrimPrefix(r.Path, doc.BasePath)
		methods, ok := doc.Paths[path]
		require.True(t, ok, "path %s is not documented", path)
		assert.Contains(t, methods, strings.ToLower(r.Method), path)
	}
}

func TestSwaggerDoc_DashboardFieldsMatchJSON(t *testing.T) {
	doc := readSwaggerDoc(t)
	def, ok := doc.Definitions["view.Dashboard"]
	require.True(t, ok)

	typ := reflect.TypeOf(view.Dashboard{})
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tag := strings.Split(typ.Field(i).Tag.Get("json"), ",")[0]
		names = append(names, tag)
	}

	documented := make([]string, 0, len(def.Properties))
	for name := range def.Properties {
		documented = append(documented, name)
	}
	assert.ElementsMatch(t, names, documented)
}
