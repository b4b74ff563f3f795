package sqlite

import (
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pantry"
)

// contentHash computes the xxHash of a recipe's extracted content as hex.
// Taxonomy labels and the URL do not contribute.
func contentHash(r pantry.Recipe) string {
	d := xxhash.New()
	for _, s := range []string{r.Language, r.RecipeName, r.CookTime, r.Ingredients, r.Instructions} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return hex.EncodeToString(d.Sum(nil))
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
