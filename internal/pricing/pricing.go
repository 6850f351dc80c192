package pricing

import (
	"math"

	"github.com/angelmondragon/invitation-backend/pkg/enums"
	"github.com/angelmondragon/invitation-backend/pkg/types"
)

// Tier is a volume band. A tier applies to every quantity at or above MinQty
// that no higher tier claims.
type Tier struct {
	MinQty    int64 `json:"min_qty"`
	UnitPrice int64 `json:"unit_price"`
}

// Tiers are ordered from the highest threshold down so boundaries resolve to
// the higher tier.
var Tiers = []Tier{
	{MinQty: 200, UnitPrice: 500},
	{MinQty: 150, UnitPrice: 550},
	{MinQty: 100, UnitPrice: 600},
	{MinQty: 50, UnitPrice: 700},
	{MinQty: 0, UnitPrice: BaseUnitPrice},
}

// BaseUnitPrice is the most expensive tier's unit price.
const BaseUnitPrice int64 = 800

const (
	PremiumEnvelopePerUnit int64 = 100
	StickerFlat            int64 = 10000
	MealTicketPerUnit      int64 = 50
	MapFlat                int64 = 30000
	MobileFlat             int64 = 50000
)

// MaxPricedQuantity is the largest quantity whose total cannot overflow with
// every add-on enabled. Larger quantities price as zero.
const MaxPricedQuantity int64 = (math.MaxInt64 - (StickerFlat + MapFlat + MobileFlat)) /
	(BaseUnitPrice + PremiumEnvelopePerUnit + MealTicketPerUnit)

// Rate describes how one add-on is charged.
type Rate struct {
	Code   enums.SurchargeCode `json:"code"`
	Kind   enums.SurchargeKind `json:"kind"`
	Amount int64               `json:"amount"`
}

// Rates lists every add-on in breakdown order.
var Rates = []Rate{
	{Code: enums.SurchargePremiumEnvelope, Kind: enums.SurchargeKindPerUnit, Amount: PremiumEnvelopePerUnit},
	{Code: enums.SurchargeSticker, Kind: enums.SurchargeKindFlat, Amount: StickerFlat},
	{Code: enums.SurchargeMealTicket, Kind: enums.SurchargeKindPerUnit, Amount: MealTicketPerUnit},
	{Code: enums.SurchargeMap, Kind: enums.SurchargeKindFlat, Amount: MapFlat},
	{Code: enums.SurchargeMobile, Kind: enums.SurchargeKindFlat, Amount: MobileFlat},
}

// OptionSet is the priced part of an order configuration.
type OptionSet struct {
	Envelope   enums.Envelope `json:"envelope"`
	Sticker    bool           `json:"sticker"`
	MealTicket bool           `json:"meal_ticket"`
	Map        bool           `json:"map"`
	Mobile     bool           `json:"mobile"`
}

// DefaultOptions returns the initial option set: no envelope, no add-ons.
func DefaultOptions() OptionSet {
	return OptionSet{Envelope: enums.EnvelopeNone}
}

func (o OptionSet) enabled(code enums.SurchargeCode) bool {
	switch code {
	case enums.SurchargePremiumEnvelope:
		return o.Envelope == enums.EnvelopePremium
	case enums.SurchargeSticker:
		return o.Sticker
	case enums.SurchargeMealTicket:
		return o.MealTicket
	case enums.SurchargeMap:
		return o.Map
	case enums.SurchargeMobile:
		return o.Mobile
	}
	return false
}

// Surcharge is one charged add-on in a breakdown.
type Surcharge struct {
	Rate
	Charged int64 `json:"charged"`
}

// Breakdown itemizes a total.
type Breakdown struct {
	Quantity   int64       `json:"quantity"`
	Tier       Tier        `json:"tier"`
	BaseCost   int64       `json:"base_cost"`
	Surcharges []Surcharge `json:"surcharges"`
	Total      int64       `json:"total"`
}

// Label renders the total for display.
func (b Breakdown) Label() string {
	return types.FormatKRW(b.Total)
}

// TierFor returns the volume tier for q. Negative quantities and quantities
// above MaxPricedQuantity price as zero.
func TierFor(q int64) Tier {
	q = normalizeQuantity(q)
	for _, tier := range Tiers {
		if q >= tier.MinQty {
			return tier
		}
	}
	return Tiers[len(Tiers)-1]
}

// ComputeTotalCost prices q units with the given options. Flat add-ons are
// charged even when q is zero.
func ComputeTotalCost(q int64, opts OptionSet) int64 {
	q = normalizeQuantity(q)
	total := q * TierFor(q).UnitPrice
	for _, rate := range Rates {
		if opts.enabled(rate.Code) {
			total += charge(rate, q)
		}
	}
	return total
}

// Quote returns the same total as ComputeTotalCost with every component listed.
func Quote(q int64, opts OptionSet) Breakdown {
	q = normalizeQuantity(q)
	tier := TierFor(q)
	b := Breakdown{
		Quantity:   q,
		Tier:       tier,
		BaseCost:   q * tier.UnitPrice,
		Surcharges: []Surcharge{},
	}
	b.Total = b.BaseCost
	for _, rate := range Rates {
		if !opts.enabled(rate.Code) {
			continue
		}
		s := Surcharge{Rate: rate, Charged: charge(rate, q)}
		b.Surcharges = append(b.Surcharges, s)
		b.Total += s.Charged
	}
	return b
}

func charge(rate Rate, q int64) int64 {
	if rate.Kind == enums.SurchargeKindPerUnit {
		return q * rate.Amount
	}
	return rate.Amount
}

func normalizeQuantity(q int64) int64 {
	if q < 0 || q > MaxPricedQuantity {
		return 0
	}
	return q
}
