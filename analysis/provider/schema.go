package provider

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects T into an OpenAI-strict schema object:
// additionalProperties disallowed and every property required, at every
// nesting level.
func GenerateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	schemaObj, err := schemaToMap(schema)
	if err != nil {
		panic(err)
	}
	ensureOpenAICompliance(schemaObj)
	return schemaObj
}

func schemaToMap(schema *jsonschema.Schema) (map[string]interface{}, error) {
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

const (
	propertiesKey           = "properties"
	additionalPropertiesKey = "additionalProperties"
	typeKey                 = "type"
	requiredKey             = "required"
	itemsKey                = "items"
	enumKey                 = "enum"
)

func ensureOpenAICompliance(schema map[string]interface{}) {
	if schemaType, ok := schema[typeKey].(string); ok && schemaType == "object" {
		schema[additionalPropertiesKey] = false

		if properties, ok := schema[propertiesKey].(map[string]interface{}); ok {
			var requiredFields []string
			for propName := range properties {
				requiredFields = append(requiredFields, propName)
			}
			if len(requiredFields) > 0 {
				schema[requiredKey] = requiredFields
			}
		}
	}

	if properties, ok := schema[propertiesKey].(map[string]interface{}); ok {
		for _, prop := range properties {
			if propMap, ok := prop.(map[string]interface{}); ok {
				ensureOpenAICompliance(propMap)
			}
		}
	}

	if items, ok := schema[itemsKey].(map[string]interface{}); ok {
		ensureOpenAICompliance(items)
	}

	if additionalProps, ok := schema[additionalPropertiesKey].(map[string]interface{}); ok {
		ensureOpenAICompliance(additionalProps)
	}
}

// SetItemsEnum constrains an array property's item values. Reflection tags
// cannot carry enum literals containing commas, so taxonomies with
// free-text labels are injected here after generation.
func SetItemsEnum(schema map[string]interface{}, property string, values []string) {
	prop, ok := propertyMap(schema, property)
	if !ok {
		return
	}
	items, ok := prop[itemsKey].(map[string]interface{})
	if !ok {
		items = map[string]interface{}{typeKey: "string"}
		prop[itemsKey] = items
	}
	enum := make([]interface{}, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	items[enumKey] = enum
}

// AllowNull widens a string property to the nullable form ["string","null"].
func AllowNull(schema map[string]interface{}, property string) {
	prop, ok := propertyMap(schema, property)
	if !ok {
		return
	}
	prop[typeKey] = []interface{}{"string", "null"}
}

func propertyMap(schema map[string]interface{}, property string) (map[string]interface{}, bool) {
	props, ok := schema[propertiesKey].(map[string]interface{})
	if !ok {
		return nil, false
	}
	prop, ok := props[property].(map[string]interface{})
	return prop, ok
}
