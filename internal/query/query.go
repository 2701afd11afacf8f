// Package query builds parameterized PostgreSQL SELECT statements.
//
// Optional filters are appended to an ordered predicate list and are only
// rendered at Build time. Placeholders are numbered by enumerating the final
// argument list, so every $n always points at the value bound at position n
// whatever combination of predicates was added.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is a comparison operator allowed in a predicate.
type Operator string

const (
	Eq   Operator = "="
	Gte  Operator = ">="
	Lte  Operator = "<="
	Like Operator = "LIKE"
)

// Predicate compares a column (or aggregate expression) with a bound value.
// A predicate with an empty Operator is a raw expression and binds nothing.
type Predicate struct {
	Column   string
	Operator Operator
	Value    any
}

func (p Predicate) isRaw() bool {
	return p.Operator == ""
}

// Statement is rendered SQL plus its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Builder assembles a single SELECT.
//
// Predicates are joined with AND; there is no support for OR or NOT.
type Builder struct {
	columns []string
	from    string
	joins   []string
	where   []Predicate
	groupBy []string
	having  []Predicate
	orderBy []string
	limit   *int
}

// Select starts a new builder selecting the given column expressions.
func Select(columns ...string) *Builder {
	return &Builder{columns: columns}
}

func (b *Builder) From(table string) *Builder {
	b.from = table
	return b
}

// LeftJoin appends "LEFT JOIN <table> ON <on>".
func (b *Builder) LeftJoin(table, on string) *Builder {
	b.joins = append(b.joins, fmt.Sprintf("LEFT JOIN %s ON %s", table, on))
	return b
}

// Join appends "JOIN <table> ON <on>".
func (b *Builder) Join(table, on string) *Builder {
	b.joins = append(b.joins, fmt.Sprintf("JOIN %s ON %s", table, on))
	return b
}

// Where appends a pre-aggregation predicate.
func (b *Builder) Where(column string, op Operator, value any) *Builder {
	b.where = append(b.where, Predicate{Column: column, Operator: op, Value: value})
	return b
}

// WhereExpr appends a literal pre-aggregation condition that binds no
// value, e.g. "end_date < now()::date".
func (b *Builder) WhereExpr(expr string) *Builder {
	b.where = append(b.where, Predicate{Column: expr})
	return b
}

func (b *Builder) GroupBy(columns ...string) *Builder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

// Having appends a post-aggregation predicate. It requires GroupBy.
func (b *Builder) Having(expr string, op Operator, value any) *Builder {
	b.having = append(b.having, Predicate{Column: expr, Operator: op, Value: value})
	return b
}

func (b *Builder) OrderBy(exprs ...string) *Builder {
	b.orderBy = append(b.orderBy, exprs...)
	return b
}

// Limit binds the row cap as the final parameter.
func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

// Build renders the statement. Arguments are bound in clause order:
// WHERE predicates, then HAVING predicates, then the limit.
func (b *Builder) Build() Statement {
	var (
		lines []string
		args  []any
	)

	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	render := func(preds []Predicate) string {
		parts := make([]string, 0, len(preds))
		for _, p := range preds {
			if p.isRaw() {
				parts = append(parts, p.Column)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s %s %s", p.Column, p.Operator, bind(p.Value)))
		}
		return strings.Join(parts, " AND ")
	}

	lines = append(lines, "SELECT "+strings.Join(b.columns, ", "))
	lines = append(lines, "FROM "+b.from)
	lines = append(lines, b.joins...)

	if len(b.where) > 0 {
		lines = append(lines, "WHERE "+render(b.where))
	}
	if len(b.groupBy) > 0 {
		lines = append(lines, "GROUP BY "+strings.Join(b.groupBy, ", "))
	}
	if len(b.having) > 0 {
		lines = append(lines, "HAVING "+render(b.having))
	}
	if len(b.orderBy) > 0 {
		lines = append(lines, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.limit != nil {
		lines = append(lines, "LIMIT "+bind(*b.limit))
	}

	return Statement{
		SQL:  strings.Join(lines, "\n") + ";",
		Args: args,
	}
}

// Contains wraps v for a substring LIKE match.
func Contains(v string) string {
	return "%" + v + "%"
}
