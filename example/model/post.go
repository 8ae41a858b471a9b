package model

import "github.com/mickamy/entitymap/orm"

//go:generate go run github.com/mickamy/entitymap

// Post has no table tag; its table name is derived as "posts".
type Post struct {
	orm.Entity
	ID          int64 `db:",primaryKey,autoIncrement"`
	PersonID    int64
	Title, Body string
	Person      *Person `db:"-"`
}
