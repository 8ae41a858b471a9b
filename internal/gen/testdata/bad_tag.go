package testdata

import "github.com/mickamy/entitymap/orm"

type BadTag struct {
	orm.Entity
	ID int64 `db:"id,unique"`
}
