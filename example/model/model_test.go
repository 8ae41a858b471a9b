package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickamy/entitymap/example/model"
	"github.com/mickamy/entitymap/orm"
)

func TestGeneratedMatchesReflection(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	person := model.Person{ID: 7, Name: "Alice", Age: 30, Email: "alice@example.com", CreatedAt: now}

	reflected, err := orm.Reflect[model.Person]()
	require.NoError(t, err)

	for _, includesPK := range []bool{true, false} {
		wantCols, wantVals := reflected(&person, includesPK)
		gotCols, gotVals := model.PersonColumnValuePairs(&person, includesPK)
		assert.Equal(t, wantCols, gotCols)
		assert.Equal(t, wantVals, gotVals)
	}

	// Title and Body share one field declaration.
	post := model.Post{ID: 1, PersonID: 7, Title: "t", Body: "b"}
	reflectedPost, err := orm.Reflect[model.Post]()
	require.NoError(t, err)
	for _, includesPK := range []bool{true, false} {
		wantCols, wantVals := reflectedPost(&post, includesPK)
		gotCols, gotVals := model.PostColumnValuePairs(&post, includesPK)
		assert.Equal(t, wantCols, gotCols)
		assert.Equal(t, wantVals, gotVals)
	}

	postCols, err := orm.ColumnsOf[model.Post]()
	require.NoError(t, err)
	all, _ := postCols.Pairs(true)
	assert.Equal(t, []string{"id", "person_id", "title", "body"}, all)
	assert.Equal(t, all, model.PostColumns)
}

func TestGeneratedMetadata(t *testing.T) {
	t.Parallel()

	cols, err := orm.ColumnsOf[model.Person]()
	require.NoError(t, err)
	all, _ := cols.Pairs(true)

	assert.Equal(t, all, model.PersonColumns)
	assert.Equal(t, cols.PKColumn().Name(), model.PersonPK)
	assert.Equal(t, "users", model.PersonTable())
	assert.Equal(t, "users.id", cols.PKColumnName())

	assert.Equal(t, "posts", model.PostTable())
	assert.Equal(t, "id", model.PostPK)
}
