package query

// AttrType is a declared attribute type in a schema hint.
type AttrType string

// Attribute types a schema hint may declare. Only TypeDate changes engine
// behavior today: date-typed attributes are coerced to ISO-8601 strings
// before comparison so stored strings and native times compare equal.
const (
	TypeString  AttrType = "string"
	TypeNumber  AttrType = "number"
	TypeBoolean AttrType = "boolean"
	TypeDate    AttrType = "date"
)

// Schema is an optional attribute-to-type hint map. The engine never
// mutates it; a nil Schema is valid and means "no hints".
type Schema map[string]AttrType

func (s Schema) isDate(attr string) bool {
	return s != nil && s[attr] == TypeDate
}
