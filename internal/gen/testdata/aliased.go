package testdata

import entity "github.com/mickamy/entitymap/orm"

type Aliased struct {
	entity.Entity
	Key string `db:"key,primaryKey"`
}
