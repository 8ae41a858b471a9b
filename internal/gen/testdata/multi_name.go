package testdata

import "github.com/mickamy/entitymap/orm"

type FullName struct {
	orm.Entity
	ID          int64 `db:"id,primaryKey"`
	First, Last string
	Nick, alias string
}
