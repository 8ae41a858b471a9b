package testdata

import "github.com/mickamy/entitymap/orm"

type Quoted struct {
	orm.Entity
	ID    int64  `db:"a\"b,primaryKey"`
	Notes string `db:"back\\slash"`
}
