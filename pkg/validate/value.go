package validate

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKind enumerates the shapes a rule parameter can take.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueInt
	ValueFloat
	ValueBool
	ValueList
	ValueMap
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueMap:
		return "map"
	default:
		return "null"
	}
}

// Value is a closed tagged union over the primitive YAML shapes. It stands in
// for open `any` maps so consumers can switch exhaustively over Kind.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
	list []Value
	m    map[string]Value
}

func NullValue() Value              { return Value{kind: ValueNull} }
func StringValue(s string) Value    { return Value{kind: ValueString, s: s} }
func IntValue(i int64) Value        { return Value{kind: ValueInt, i: i} }
func FloatValue(f float64) Value    { return Value{kind: ValueFloat, f: f} }
func BoolValue(b bool) Value        { return Value{kind: ValueBool, b: b} }
func ListValue(vs ...Value) Value   { return Value{kind: ValueList, list: vs} }
func MapValue(m map[string]Value) Value {
	return Value{kind: ValueMap, m: m}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool    { return v.kind == ValueNull }

func (v Value) StringVal() (string, bool)  { return v.s, v.kind == ValueString }
func (v Value) IntVal() (int64, bool)      { return v.i, v.kind == ValueInt }
func (v Value) FloatVal() (float64, bool)  { return v.f, v.kind == ValueFloat }
func (v Value) BoolVal() (bool, bool)      { return v.b, v.kind == ValueBool }
func (v Value) ListVal() ([]Value, bool)   { return v.list, v.kind == ValueList }
func (v Value) MapVal() (map[string]Value, bool) {
	return v.m, v.kind == ValueMap
}

// Text renders a scalar value as its string form. Lists, maps and null have
// no text form.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case ValueString:
		return v.s, true
	case ValueInt:
		return strconv.FormatInt(v.i, 10), true
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), true
	case ValueBool:
		return strconv.FormatBool(v.b), true
	default:
		return "", false
	}
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return v.unmarshalScalar(node)
	case yaml.SequenceNode:
		var list []Value
		if err := node.Decode(&list); err != nil {
			return err
		}
		*v = Value{kind: ValueList, list: list}
		return nil
	case yaml.MappingNode:
		var m map[string]Value
		if err := node.Decode(&m); err != nil {
			return err
		}
		*v = Value{kind: ValueMap, m: m}
		return nil
	case yaml.AliasNode:
		return node.Alias.Decode(v)
	default:
		return fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}

func (v *Value) unmarshalScalar(node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		*v = Value{kind: ValueNull}
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Value{kind: ValueBool, b: b}
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		*v = Value{kind: ValueInt, i: i}
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Value{kind: ValueFloat, f: f}
	default:
		*v = Value{kind: ValueString, s: node.Value}
	}
	return nil
}
