package model

import (
	"time"

	"github.com/mickamy/entitymap/orm"
)

//go:generate go run github.com/mickamy/entitymap

// Person is stored in the users table.
type Person struct {
	orm.Entity `db:"users"`
	ID         int64      `db:"id,primaryKey,autoIncrement"`
	Name       string     `db:"nick_name"`
	Age        int        `db:"old"`
	Email      string     `db:"email"`
	CreatedAt  time.Time  // convention: created_at
	DeletedAt  *time.Time // nullable
	Index      *int       `db:"-"`
}
