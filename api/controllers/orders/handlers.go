package orders

import (
	"net/http"

	"github.com/angelmondragon/invitation-backend/api/responses"
	"github.com/angelmondragon/invitation-backend/api/validators"
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/internal/pricing"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/types"
)

// Quote prices a configuration and reports whether it could be submitted.
func Quote(svc order.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeInput(w, r, logg)
		if !ok {
			return
		}
		result, err := svc.Quote(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newQuoteResponse(result))
	}
}

// Submit hands a ready configuration to the order sink.
func Submit(svc order.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeInput(w, r, logg)
		if !ok {
			return
		}
		result, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusAccepted, submitResponse{
			Receipt:    result.Receipt,
			Order:      result.Snapshot,
			TotalLabel: types.FormatKRW(result.Snapshot.TotalCost),
		})
	}
}

// Pricing publishes the tier and surcharge tables.
func Pricing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		envelopes := make([]envelopeView, 0, len(enums.Envelopes()))
		for _, e := range enums.Envelopes() {
			envelopes = append(envelopes, envelopeView{Code: e, Label: e.Label()})
		}
		responses.WriteSuccess(w, pricingResponse{
			Presets:    order.Presets,
			Default:    order.DefaultPreset,
			Tiers:      pricing.Tiers,
			Surcharges: pricing.Rates,
			Envelopes:  envelopes,
		})
	}
}

func decodeInput(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (order.Input, bool) {
	var body orderRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return order.Input{}, false
	}
	input, err := body.toInput()
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return order.Input{}, false
	}
	return input, true
}
