// Package query builds store-neutral predicates from caller filters.
//
// A Resource carries the static configuration for one collection: which
// filter names are accepted, which storage field each maps to, which fields
// hold identifiers, and the visibility rule hiding soft-deleted data.
// Document stores render a Predicate into their native form.
//
//	p, err := query.Datasets.Build(map[string]string{"scope": "Global"})
//	if err != nil {
//	    return err
//	}
//	datasets, err := repo.Find(ctx, query.Datasets.Visible(p), query.NewestFirst)
package query
