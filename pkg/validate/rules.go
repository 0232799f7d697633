package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vrail/vrail/pkg/outcome"
)

// FieldRule describes the checks configured for one named field. Rules are
// declared as a list so validation order is deterministic.
type FieldRule struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`   // "string" (default) or "int"
	Required     bool   `yaml:"required"`
	Format       string `yaml:"format"` // "email"
	Pattern      string `yaml:"pattern"`
	MinLength    int    `yaml:"min_length"`
	RequireUpper bool   `yaml:"require_upper"`
	RequireDigit bool   `yaml:"require_digit"`
	Min          *int   `yaml:"min"`
	Max          *int   `yaml:"max"`
	Enum         Value  `yaml:"enum"`
	Default      Value  `yaml:"default"`
}

// RuleSet is an ordered, declarative validation program loaded from YAML.
type RuleSet struct {
	Mode   string      `yaml:"mode"`
	Fields []FieldRule `yaml:"fields"`

	programs []fieldProgram
}

type fieldProgram struct {
	name     string
	intTyped bool
	required bool
	def      string
	hasDef   bool
	min      int
	max      int
	checks   []Check[string]
}

// ParseRules decodes and compiles a YAML rule set. Configuration mistakes
// (unknown types, bad patterns, non-scalar defaults) are plain errors, not
// validation failures.
func ParseRules(data []byte) (*RuleSet, error) {
	rs := &RuleSet{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if len(rs.Fields) == 0 {
		return nil, errors.New("parse rules: no fields declared")
	}
	if rs.Mode != "" {
		if _, err := ParseMode(rs.Mode); err != nil {
			return nil, fmt.Errorf("parse rules: %w", err)
		}
	}

	for _, rule := range rs.Fields {
		p, err := compileRule(rule)
		if err != nil {
			return nil, fmt.Errorf("parse rules: field %q: %w", rule.Name, err)
		}
		rs.programs = append(rs.programs, p)
	}
	return rs, nil
}

// LoadRules reads and compiles a YAML rule set from disk.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return ParseRules(data)
}

// DefaultMode returns the mode declared in the rule set, or CollectAll when
// none is declared.
func (rs *RuleSet) DefaultMode() Mode {
	if rs.Mode == "" {
		return CollectAll
	}
	mode, err := ParseMode(rs.Mode)
	if err != nil {
		return CollectAll
	}
	return mode
}

func compileRule(rule FieldRule) (fieldProgram, error) {
	p := fieldProgram{
		name:     rule.Name,
		required: rule.Required,
		min:      math.MinInt,
		max:      math.MaxInt,
	}

	if rule.Name == "" {
		return p, errors.New("missing name")
	}

	switch rule.Type {
	case "", "string":
	case "int":
		p.intTyped = true
	default:
		return p, fmt.Errorf("unknown type %q", rule.Type)
	}

	if !rule.Default.IsNull() {
		def, ok := rule.Default.Text()
		if !ok {
			return p, fmt.Errorf("default must be a scalar, got %s", rule.Default.Kind())
		}
		p.def = def
		p.hasDef = true
	}

	if rule.Min != nil {
		p.min = *rule.Min
	}
	if rule.Max != nil {
		p.max = *rule.Max
	}

	if p.intTyped {
		if rule.Format != "" || rule.Pattern != "" || rule.MinLength > 0 ||
			rule.RequireUpper || rule.RequireDigit || !rule.Enum.IsNull() {
			return p, errors.New("string checks are not applicable to int fields")
		}
		return p, nil
	}
	if rule.Min != nil || rule.Max != nil {
		return p, errors.New("min/max bounds require type: int")
	}

	switch rule.Format {
	case "":
	case "email":
		p.checks = append(p.checks, EmailFormat(rule.Name))
	default:
		return p, fmt.Errorf("unknown format %q", rule.Format)
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return p, fmt.Errorf("bad pattern: %w", err)
		}
		p.checks = append(p.checks, Matches(rule.Name, "text matching "+rule.Pattern, re))
	}

	if rule.MinLength > 0 {
		p.checks = append(p.checks, MinLength(rule.Name, rule.MinLength))
	}
	if rule.RequireUpper {
		p.checks = append(p.checks, HasUppercase(rule.Name))
	}
	if rule.RequireDigit {
		p.checks = append(p.checks, HasDigit(rule.Name))
	}

	if !rule.Enum.IsNull() {
		list, ok := rule.Enum.ListVal()
		if !ok {
			return p, fmt.Errorf("enum must be a list, got %s", rule.Enum.Kind())
		}
		allowed := make([]string, 0, len(list))
		for _, item := range list {
			text, ok := item.Text()
			if !ok {
				return p, fmt.Errorf("enum entries must be scalars, got %s", item.Kind())
			}
			allowed = append(allowed, text)
		}
		p.checks = append(p.checks, OneOf(rule.Name, allowed))
	}

	return p, nil
}

// Validate runs every field rule against fields in declaration order and
// returns the normalized values of the declared fields. FailFast returns the
// first failure; CollectAll aggregates one entry per failed condition.
func (rs *RuleSet) Validate(ctx context.Context, fields Fields, mode Mode) outcome.Result[Fields] {
	normalized := make(Fields, len(rs.programs))
	var errs []error

	for _, p := range rs.programs {
		res := p.run(ctx, fields[p.name], mode)
		if res.IsFailure() {
			if mode == FailFast {
				return outcome.FailureFrom[string, Fields](res)
			}
			errs = append(errs, outcome.Errors(res.Err())...)
			continue
		}
		if v := res.Value(); v != "" || p.hasDef {
			normalized[p.name] = v
		}
	}

	if len(errs) > 0 {
		return outcome.Failure[Fields](errors.Join(errs...))
	}
	return outcome.Success(normalized)
}

func (p fieldProgram) run(ctx context.Context, raw string, mode Mode) outcome.Result[string] {
	value := strings.TrimSpace(raw)

	if value == "" {
		if p.hasDef {
			value = p.def
		} else if p.required {
			return outcome.Failure[string](EmptyField(p.name))
		} else {
			return outcome.Success("")
		}
	}

	if p.intTyped {
		n, err := strconv.Atoi(value)
		if err != nil {
			return outcome.Failure[string](InvalidFormat(p.name, "whole number"))
		}
		bounded := InRange(p.name, p.min, p.max)(ctx, n)
		if bounded.IsFailure() {
			return outcome.FailureFrom[int, string](bounded)
		}
		return outcome.Success(strconv.Itoa(bounded.Value()))
	}

	return Apply(ctx, value, mode, p.checks...)
}
