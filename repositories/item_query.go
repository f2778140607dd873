package repositories

import (
	"fmt"

	"bike-shop/models"
	"bike-shop/utils"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const (
	dialectPostgres = "postgres"
	tableItems      = "items"

	colID        = "id"
	colName      = "name"
	colType      = "type"
	colPrice     = "price"
	colImage     = "image"
	colUpdatedAt = "updated_at"
)

var itemColumns = []interface{}{colID, colName, colType, colPrice, colImage}

type sqlQuery struct {
	sql  string
	args []interface{}
}

func builder() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

// buildListQuery selects every item, or those whose name or type contains the
// normalized term, ordered by id.
func buildListQuery(normalized string) (sqlQuery, error) {
	stmt := builder().
		From(tableItems).
		Select(itemColumns...).
		Order(goqu.C(colID).Asc()).
		Prepared(true)

	if normalized != "" {
		pattern := utils.ContainsPattern(normalized)
		stmt = stmt.Where(goqu.Or(
			goqu.C(colName).ILike(pattern),
			goqu.C(colType).ILike(pattern),
		))
	}

	return toQuery(stmt.ToSQL())
}

func buildGetQuery(id int) (sqlQuery, error) {
	stmt := builder().
		From(tableItems).
		Select(itemColumns...).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

func buildCountQuery() (sqlQuery, error) {
	stmt := builder().
		From(tableItems).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

func itemRecord(item models.Item) goqu.Record {
	return goqu.Record{
		colID:    item.ID,
		colName:  item.Name,
		colType:  item.Type,
		colPrice: item.Price,
		colImage: item.Image,
	}
}

func buildInsertQuery(item models.Item) (sqlQuery, error) {
	stmt := builder().
		Insert(tableItems).
		Rows(itemRecord(item)).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

// buildInsertIgnoreQuery inserts rows and silently skips ids that already exist.
func buildInsertIgnoreQuery(items []models.Item) (sqlQuery, error) {
	rows := make([]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, itemRecord(item))
	}

	stmt := builder().
		Insert(tableItems).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

func buildUpdateQuery(item models.Item) (sqlQuery, error) {
	stmt := builder().
		Update(tableItems).
		Set(goqu.Record{
			colName:      item.Name,
			colType:      item.Type,
			colPrice:     item.Price,
			colImage:     item.Image,
			colUpdatedAt: goqu.L("NOW()"),
		}).
		Where(goqu.C(colID).Eq(item.ID)).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

func buildDeleteQuery(id int) (sqlQuery, error) {
	stmt := builder().
		Delete(tableItems).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true)

	return toQuery(stmt.ToSQL())
}

func toQuery(sql string, args []interface{}, err error) (sqlQuery, error) {
	if err != nil {
		return sqlQuery{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}
	return sqlQuery{sql: sql, args: args}, nil
}
