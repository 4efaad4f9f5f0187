package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the fragment and its parameters. paramIndex is the first
	// free index for generated names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]any)
}

// compareCondition implements "field <op> @pN".
type compareCondition struct {
	field string
	op    string
	value any
}

func (c compareCondition) SQL(paramIndex int) (string, map[string]any) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]any{name: c.value}
}

// Eq creates an equality condition.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value any) Condition {
	return compareCondition{field: field, op: "=", value: value}
}

// Gte creates a lower-bound condition: "field >= @p0".
func Gte(field string, value any) Condition {
	return compareCondition{field: field, op: ">=", value: value}
}

// Lte creates an upper-bound condition: "field <= @p0".
func Lte(field string, value any) Condition {
	return compareCondition{field: field, op: "<=", value: value}
}

// nullCondition implements IS [NOT] NULL checks; it carries no parameters.
type nullCondition struct {
	field string
	not   bool
}

func (c nullCondition) SQL(int) (string, map[string]any) {
	if c.not {
		return c.field + " IS NOT NULL", map[string]any{}
	}
	return c.field + " IS NULL", map[string]any{}
}

// IsNull creates a WHERE condition for NULL checks.
func IsNull(field string) Condition {
	return nullCondition{field: field}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
func IsNotNull(field string) Condition {
	return nullCondition{field: field, not: true}
}
