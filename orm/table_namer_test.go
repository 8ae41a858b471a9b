package orm_test

import (
	"testing"

	"github.com/mickamy/entitymap/orm"
)

type plain struct{}

type valueNamer struct{}

func (valueNamer) TableName() string { return "custom_values" }

type ptrNamer struct{}

func (*ptrNamer) TableName() string { return "custom_ptrs" }

type taggedEntity struct {
	orm.Entity `db:"tagged_rows"`
}

type taggedWithOptions struct {
	orm.Entity `db:"option_rows,primaryKey"`
}

type namerBeatsTag struct {
	orm.Entity `db:"ignored"`
}

func (namerBeatsTag) TableName() string { return "from_namer" }

type UserProfile struct {
	orm.Entity
}

func TestResolveTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolve  func() string
		expected string
	}{
		{
			name:     "derived from type name",
			resolve:  orm.ResolveTableName[plain],
			expected: "plains",
		},
		{
			name:     "derived from camel case type name",
			resolve:  orm.ResolveTableName[UserProfile],
			expected: "user_profiles",
		},
		{
			name:     "value receiver",
			resolve:  orm.ResolveTableName[valueNamer],
			expected: "custom_values",
		},
		{
			name:     "pointer receiver",
			resolve:  orm.ResolveTableName[ptrNamer],
			expected: "custom_ptrs",
		},
		{
			name:     "entity tag",
			resolve:  orm.ResolveTableName[taggedEntity],
			expected: "tagged_rows",
		},
		{
			name:     "entity tag options are ignored",
			resolve:  orm.ResolveTableName[taggedWithOptions],
			expected: "option_rows",
		},
		{
			name:     "TableNamer wins over entity tag",
			resolve:  orm.ResolveTableName[namerBeatsTag],
			expected: "from_namer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.resolve(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
