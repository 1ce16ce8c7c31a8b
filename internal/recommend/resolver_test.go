package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keshomarket/internal/catalog"
)

func testSnapshot() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Bike", Price: 12000, Location: "Town"},
		{ID: "p2", Name: "Desk", Price: 8500, Location: "Njoro"},
		{ID: "p3", Name: "TV", Price: 15500, Location: "Nakuru CBD"},
	}
}

func TestResolve_PreservesFirstSeenOrder(t *testing.T) {
	got := Resolve([]string{"p3", "p1"}, testSnapshot())

	assert.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestResolve_DropsUnknownIdentifiers(t *testing.T) {
	got := Resolve([]string{"missing", "p2", "removed"}, testSnapshot())

	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestResolve_EmptyResultIsNil(t *testing.T) {
	// Nil (not an empty slice) so the message field can be omitted.
	assert.Nil(t, Resolve([]string{"missing"}, testSnapshot()))
	assert.Nil(t, Resolve(nil, testSnapshot()))
	assert.Nil(t, Resolve([]string{"p1"}, nil))
}
