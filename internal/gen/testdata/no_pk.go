package testdata

import "github.com/mickamy/entitymap/orm"

type NoPK struct {
	orm.Entity
	Name string
}
