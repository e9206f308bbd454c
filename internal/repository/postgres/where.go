package postgres

import (
	"fmt"
	"strings"

	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/query"
)

// liveDatasetIDs selects the ids of datasets that are not soft-deleted
const liveDatasetIDs = `SELECT id FROM datasets WHERE deleted = false`

// where renders a predicate as a SQL condition with positional arguments.
// columns is the set of columns the table accepts in a predicate.
func where(p query.Predicate, columns map[string]bool) (string, []any, error) {
	if len(p) == 0 {
		return "TRUE", nil, nil
	}

	conds := make([]string, 0, len(p))
	args := make([]any, 0, len(p))
	for _, c := range p {
		if !columns[c.Field] {
			return "", nil, fmt.Errorf("column %q cannot be filtered", c.Field)
		}
		switch c.Op {
		case query.OpEq:
			args = append(args, c.Value)
			conds = append(conds, fmt.Sprintf("%s = $%d", c.Field, len(args)))
		case query.OpLiveDataset:
			conds = append(conds, fmt.Sprintf("%s IN (%s)", c.Field, liveDatasetIDs))
		default:
			return "", nil, fmt.Errorf("unsupported operator %d on %q", c.Op, c.Field)
		}
	}
	return strings.Join(conds, " AND "), args, nil
}

// orderBy renders a sort. Names compare byte-wise so that the latest
// version label does not depend on the database collation.
func orderBy(s query.Sort, columns map[string]bool) (string, error) {
	if !columns[s.Field] {
		return "", fmt.Errorf("column %q cannot be sorted", s.Field)
	}

	expr := s.Field
	if s.Field == query.FieldName {
		expr += ` COLLATE "C"`
	}
	if s.Desc {
		expr += " DESC"
	}
	return expr, nil
}

// selectStatement assembles a filtered, ordered select
func selectStatement(cols, table string, p query.Predicate, s query.Sort, columns map[string]bool) (string, []any, error) {
	cond, args, err := where(p, columns)
	if err != nil {
		return "", nil, err
	}
	order, err := orderBy(s, columns)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s", cols, table, cond, order), args, nil
}
