package controllers

import (
	"net/http"

	"github.com/angelmondragon/invitation-backend/api/responses"
	"github.com/angelmondragon/invitation-backend/api/validators"
	"github.com/angelmondragon/invitation-backend/internal/navigation"
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

type flowStatePayload struct {
	Page   string                 `json:"page" validate:"required"`
	Design *order.DesignSelection `json:"design,omitempty"`
}

type flowEventPayload struct {
	Kind   string                 `json:"kind" validate:"required"`
	Page   string                 `json:"page,omitempty"`
	Design *order.DesignSelection `json:"design,omitempty"`
}

type flowTransitionRequest struct {
	State flowStatePayload `json:"state"`
	Event flowEventPayload `json:"event"`
}

type flowResponse struct {
	State     navigation.State      `json:"state"`
	OrderFlow *enums.OrderFlowState `json:"order_flow,omitempty"`
	Pages     []enums.Page          `json:"pages,omitempty"`
}

func newFlowResponse(state navigation.State) flowResponse {
	resp := flowResponse{State: state}
	if flow, ok := state.OrderFlow(); ok {
		resp.OrderFlow = &flow
	}
	return resp
}

// FlowInitial returns the landing state and the pages the storefront knows.
func FlowInitial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := newFlowResponse(navigation.Initial())
		resp.Pages = enums.Pages()
		responses.WriteSuccess(w, resp)
	}
}

// FlowTransition applies one navigation event to a client-held state.
func FlowTransition(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body flowTransitionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := enums.ParsePage(body.State.Page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid state.page"))
			return
		}
		kind, err := enums.ParseFlowEvent(body.Event.Kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event.kind"))
			return
		}
		event := navigation.Event{Kind: kind, Design: body.Event.Design}
		if body.Event.Page != "" {
			target, err := enums.ParsePage(body.Event.Page)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event.page"))
				return
			}
			event.Page = target
		}

		next, err := navigation.Transition(navigation.State{Page: page, Design: body.State.Design}, event)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newFlowResponse(next))
	}
}
