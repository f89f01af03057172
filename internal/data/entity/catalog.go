package entity

import "encoding/json"

type CatalogKind string

const (
	CatalogProducts CatalogKind = "products"
	CatalogStores   CatalogKind = "stores"
	CatalogDrivers  CatalogKind = "drivers"
	CatalogReviews  CatalogKind = "reviews"
	CatalogMapView  CatalogKind = "mapview"
)

// CatalogKinds lists every collection served by the catalog routes.
var CatalogKinds = []CatalogKind{
	CatalogProducts,
	CatalogStores,
	CatalogDrivers,
	CatalogReviews,
	CatalogMapView,
}

func (k CatalogKind) Valid() bool {
	for _, kind := range CatalogKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Singular is the key used when echoing a created item back to the client.
func (k CatalogKind) Singular() string {
	switch k {
	case CatalogProducts:
		return "product"
	case CatalogStores:
		return "store"
	case CatalogDrivers:
		return "driver"
	case CatalogReviews:
		return "review"
	case CatalogMapView:
		return "marker"
	default:
		return string(k)
	}
}

// CatalogItem stores a client-supplied JSON object verbatim.
type CatalogItem struct {
	BaseSimple
	Kind    CatalogKind     `db:"kind"`
	Payload json.RawMessage `db:"payload"`
}
