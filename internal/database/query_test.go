package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateDefaults(t *testing.T) {
	pg := Paginate(0, 0)

	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 50, pg.Limit)
	assert.Equal(t, 0, pg.Offset)
}

func TestPaginateNegativeValues(t *testing.T) {
	pg := Paginate(-3, -10)

	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 50, pg.Limit)
	assert.Equal(t, 0, pg.Offset)
}

func TestPaginateOffset(t *testing.T) {
	pg := Paginate(3, 20)

	assert.Equal(t, 3, pg.Page)
	assert.Equal(t, 20, pg.Limit)
	assert.Equal(t, 40, pg.Offset)
}

func TestPaginateNoUpperBound(t *testing.T) {
	pg := Paginate(1, 10000)

	assert.Equal(t, 10000, pg.Limit)
}

func TestPredicateEmpty(t *testing.T) {
	p := NewPredicate()

	assert.Equal(t, "", p.Where())
	assert.Empty(t, p.Args())
	assert.Equal(t, 0, p.ArgCount())
}

func TestPredicateCombinesWithAnd(t *testing.T) {
	p := NewPredicate()
	p.AddContains("name", "acme")
	p.AddEquals("invoice_status", "active")

	assert.Equal(t, "WHERE name ILIKE $1 AND invoice_status = $2", p.Where())
	assert.Equal(t, []interface{}{"%acme%", "active"}, p.Args())
	assert.Equal(t, 2, p.ArgCount())
}

func TestPredicateRangeConditions(t *testing.T) {
	p := NewPredicate()
	p.AddGTE("created_at", "2025-01-01")
	p.AddLTE("created_at", "2025-01-31")

	assert.Equal(t, "WHERE created_at >= $1 AND created_at <= $2", p.Where())
}

func TestBuildVendorPredicateEmptyValueAddsNoCondition(t *testing.T) {
	p := BuildVendorPredicate("name", "", "")

	assert.Equal(t, "", p.Where())
}

func TestBuildVendorPredicateUnknownFieldIgnored(t *testing.T) {
	p := BuildVendorPredicate("address", "somewhere", "")

	assert.Equal(t, "", p.Where())
}

func TestBuildVendorPredicateStatusAll(t *testing.T) {
	p := BuildVendorPredicate("", "", "all")

	assert.Equal(t, "", p.Where())
}

func TestBuildVendorPredicateFieldAndStatus(t *testing.T) {
	p := BuildVendorPredicate("code", "V-100", "inactive")

	assert.Equal(t, "WHERE code ILIKE $1 AND invoice_status = $2", p.Where())
	assert.Equal(t, []interface{}{"%V-100%", "inactive"}, p.Args())
}

func TestBuildVendorSearchPredicateAlwaysRestrictsToActive(t *testing.T) {
	p := BuildVendorSearchPredicate("name", "acme")

	assert.Equal(t, "WHERE name ILIKE $1 AND invoice_status = $2", p.Where())
	assert.Equal(t, "active", p.Args()[1])

	// Incluso sin condición de búsqueda la restricción se mantiene
	p = BuildVendorSearchPredicate("", "")
	assert.Equal(t, "WHERE invoice_status = $1", p.Where())
}

func TestBuildContactPredicateJoinedColumns(t *testing.T) {
	p := BuildContactPredicate("active", "name", "acme")

	assert.Equal(t, "WHERE c.status = $1 AND v.name ILIKE $2", p.Where())
}

func TestBuildContactPredicateOwnColumns(t *testing.T) {
	p := BuildContactPredicate("", "email", "billing@")

	assert.Equal(t, "WHERE c.email ILIKE $1", p.Where())
	assert.Equal(t, []interface{}{"%billing@%"}, p.Args())
}

func TestBuildBillingPredicateFullFilters(t *testing.T) {
	p := BuildBillingPredicate("2025-01-01", "2025-02-01", "email", "acme", "success")

	assert.Equal(t,
		"WHERE b.created_at >= $1 AND b.created_at <= $2 AND b.email ILIKE $3 AND b.status = $4",
		p.Where())
	assert.Equal(t, 4, p.ArgCount())
}

func TestBuildBillingPredicateStatusAll(t *testing.T) {
	p := BuildBillingPredicate("", "", "", "", "all")

	assert.Equal(t, "", p.Where())
}
