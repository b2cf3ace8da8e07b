package readstore

import (
	"context"
	"strings"

	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds an ILIKE pattern matching term anywhere, with wildcards in
// term taken literally.
func contains(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func count(ctx context.Context, dbtx db.DBTX, qb sq.SelectBuilder, msg string) (int64, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build count query", err)
	}
	var total int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr(msg, err)
	}
	return total, nil
}
