package usecase

import (
	"errors"

	"fleetval/internal/domain/entities"
)

var ErrNoCanonicalPrice = errors.New("no canonical price for report kind")

// Canonical prices in USD minor units. The server-side table is the source of
// truth: client-asserted amounts are only ever compared against it, never
// trusted.
var (
	priceSpotCheck    = entities.NewMoney(49500, entities.DefaultCurrency)
	priceProfessional = entities.NewMoney(99500, entities.DefaultCurrency)

	fleetTierPrices = map[entities.FleetTier]entities.Money{
		entities.FleetTier1To5:   entities.NewMoney(149500, entities.DefaultCurrency),
		entities.FleetTier6To10:  entities.NewMoney(249500, entities.DefaultCurrency),
		entities.FleetTier11To25: entities.NewMoney(399500, entities.DefaultCurrency),
		entities.FleetTier26To50: entities.NewMoney(599500, entities.DefaultCurrency),
	}
)

// CanonicalPrice returns the server-computed price for a report.
func CanonicalPrice(r entities.Report) (entities.Money, error) {
	switch r.Kind {
	case entities.ReportKindSpotCheck:
		return priceSpotCheck, nil
	case entities.ReportKindProfessional:
		return priceProfessional, nil
	case entities.ReportKindFleetValuation:
		if p, ok := fleetTierPrices[r.FleetTier]; ok {
			return p, nil
		}
	}
	return entities.Money{}, ErrNoCanonicalPrice
}
