package students

import (
	"fmt"
	"strings"
)

// Filter narrows down List. Every non-empty field adds one predicate,
// and all predicates are combined with AND.
type Filter struct {
	Active *bool
	Name   string // case-insensitive substring of the name
	TaxID  string // exact match
}

type column string

const (
	columnActive column = "active"
	columnName   column = "name"
	columnTaxID  column = "tax_id"
)

type operator int

const (
	opEquals operator = iota
	opContainsFold
)

type predicate struct {
	column column
	op     operator
	value  any
}

func (p predicate) validate() error {
	switch p.column {
	case columnActive:
		if _, ok := p.value.(bool); !ok || p.op != opEquals {
			return fmt.Errorf("invalid predicate on %s", p.column)
		}
	case columnName, columnTaxID:
		if _, ok := p.value.(string); !ok {
			return fmt.Errorf("invalid predicate on %s", p.column)
		}
	default:
		return fmt.Errorf("unknown column: %s", p.column)
	}
	return nil
}

// sql renders the predicate bound to the positional parameter $pos.
func (p predicate) sql(pos int) string {
	if p.op == opContainsFold {
		return fmt.Sprintf("%s ILIKE $%d", p.column, pos)
	}
	return fmt.Sprintf("%s = $%d", p.column, pos)
}

func (f Filter) predicates() []predicate {
	var preds []predicate
	if f.Active != nil {
		preds = append(preds, predicate{column: columnActive, op: opEquals, value: *f.Active})
	}
	if f.Name != "" {
		preds = append(preds, predicate{
			column: columnName,
			op:     opContainsFold,
			value:  "%" + escapeLike(f.Name) + "%",
		})
	}
	if f.TaxID != "" {
		preds = append(preds, predicate{column: columnTaxID, op: opEquals, value: f.TaxID})
	}
	return preds
}

// whereClause returns the WHERE clause (empty when there are no predicates)
// and the positional args in the same order.
func (f Filter) whereClause() (string, []any, error) {
	preds := f.predicates()
	if len(preds) == 0 {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for i, p := range preds {
		if err := p.validate(); err != nil {
			return "", nil, err
		}
		conditions = append(conditions, p.sql(i+1))
		args = append(args, p.value)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

func buildListQuery(f Filter) (string, []any, error) {
	where, args, err := f.whereClause()
	if err != nil {
		return "", nil, err
	}
	return `SELECT id, tax_id, name, active FROM students` + where + ` ORDER BY name;`, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
