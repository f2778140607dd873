package repositories

import (
	"testing"

	"bike-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildListQuery_WithoutTerm_SelectsEverything(t *testing.T) {
	q, err := buildListQuery("")

	require.NoError(t, err)
	assert.Contains(t, q.sql, `FROM "items"`)
	assert.Contains(t, q.sql, `ORDER BY "id" ASC`)
	assert.NotContains(t, q.sql, "WHERE")
	assert.Empty(t, q.args)
}

func Test_BuildListQuery_WithTerm_MatchesNameOrType(t *testing.T) {
	q, err := buildListQuery("cruiser")

	require.NoError(t, err)
	assert.Contains(t, q.sql, `"name" ILIKE $1`)
	assert.Contains(t, q.sql, `"type" ILIKE $2`)
	assert.Contains(t, q.sql, " OR ")
	assert.Equal(t, []interface{}{"%cruiser%", "%cruiser%"}, q.args)
}

func Test_BuildListQuery_EscapesWildcards(t *testing.T) {
	q, err := buildListQuery(`50%_off\`)

	require.NoError(t, err)
	require.Len(t, q.args, 2)
	assert.Equal(t, `%50\%\_off\\%`, q.args[0])
}

func Test_BuildGetQuery(t *testing.T) {
	q, err := buildGetQuery(7)

	require.NoError(t, err)
	assert.Contains(t, q.sql, `WHERE ("id" = $1)`)
	assert.Equal(t, []interface{}{int64(7)}, q.args)
}

func Test_BuildCountQuery(t *testing.T) {
	q, err := buildCountQuery()

	require.NoError(t, err)
	assert.Contains(t, q.sql, `SELECT COUNT(*) FROM "items"`)
}

func Test_BuildInsertIgnoreQuery_SkipsExistingIDs(t *testing.T) {
	q, err := buildInsertIgnoreQuery(models.StarterItems()[:2])

	require.NoError(t, err)
	assert.Contains(t, q.sql, `INSERT INTO "items"`)
	assert.Contains(t, q.sql, "ON CONFLICT DO NOTHING")
	assert.Len(t, q.args, 10)
}

func Test_BuildUpdateQuery_TouchesUpdatedAt(t *testing.T) {
	q, err := buildUpdateQuery(models.Item{ID: 3, Name: "Apache", Type: "Sport", Price: 1, Image: "a.jpg"})

	require.NoError(t, err)
	assert.Contains(t, q.sql, `UPDATE "items" SET`)
	assert.Contains(t, q.sql, `"updated_at"=NOW()`)
	assert.Contains(t, q.sql, `WHERE ("id" = $`)
}

func Test_BuildDeleteQuery(t *testing.T) {
	q, err := buildDeleteQuery(4)

	require.NoError(t, err)
	assert.Contains(t, q.sql, `DELETE FROM "items" WHERE ("id" = $1)`)
}
