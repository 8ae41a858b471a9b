package testdata

type Unrelated struct {
	ID int64 `db:"id,primaryKey"`
}
