package testdata

import (
	"time"

	"github.com/mickamy/entitymap/orm"
)

type Person struct {
	orm.Entity `db:"users"`
	ID         int64      `db:"id,primaryKey,autoIncrement"`
	Name       string     `db:"nick_name"`
	Age        int        `db:"old"`
	Email      string     `db:"email"`
	CreatedAt  time.Time  // no db tag, column inferred as "created_at"
	DeletedAt  *time.Time // nullable
	Index      *int       `db:"-"`
	internal   string     // unexported, skipped
}

type Post struct {
	orm.Entity
	ID       int64 `db:",primaryKey"`
	PersonID int64
	Tags     []string
}

// Plain does not embed orm.Entity and is ignored.
type Plain struct {
	ID int64 `db:"id,primaryKey"`
}
