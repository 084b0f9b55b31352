package log

// ComponentKey is the field name used to tag entries with their component.
const ComponentKey = "component"

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value interface{}
}

// Str constructs a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int constructs an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 constructs a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Bool constructs a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err constructs an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component constructs the component tag field.
func Component(name string) Field { return Field{Key: ComponentKey, Value: name} }
