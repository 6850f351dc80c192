package navigation

import (
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/invitation-backend/pkg/errors"
)

// State is where the buyer is in the storefront and which design they carry.
type State struct {
	Page   enums.Page             `json:"page"`
	Design *order.DesignSelection `json:"design,omitempty"`
}

// Event moves the storefront between pages.
type Event struct {
	Kind   enums.FlowEvent
	Page   enums.Page
	Design *order.DesignSelection
}

// Initial is the landing state.
func Initial() State {
	return State{Page: enums.PageHome}
}

// OrderFlow derives the order screen state. ok is false off the order page.
func (s State) OrderFlow() (state enums.OrderFlowState, ok bool) {
	if s.Page != enums.PageOrder {
		return "", false
	}
	if s.Design == nil {
		return enums.OrderFlowNoDesignSelected, true
	}
	return enums.OrderFlowConfiguring, true
}

// Transition applies event to state. On error the input state is returned
// unchanged.
func Transition(state State, event Event) (State, error) {
	if !state.Page.IsValid() {
		return state, invalid("page", string(state.Page), "unknown current page")
	}

	switch event.Kind {
	case enums.FlowEventNavigate:
		if !event.Page.IsValid() {
			return state, invalid("page", string(event.Page), "unknown target page")
		}
		return State{Page: event.Page, Design: state.Design}, nil

	case enums.FlowEventStartOrder:
		return State{Page: enums.PageOrder}, nil

	case enums.FlowEventSelectDesign:
		if event.Design == nil {
			return state, invalid("design", "", "design is required")
		}
		d, err := order.NewDesignSelection(event.Design.SourceID, event.Design.Name, event.Design.PrimaryImageRef, event.Design.FormatImageRefs...)
		if err != nil {
			return state, err
		}
		return State{Page: enums.PageOrder, Design: &d}, nil

	case enums.FlowEventClearDesign:
		return State{Page: state.Page}, nil
	}
	return state, invalid("event", string(event.Kind), "unknown flow event")
}

func invalid(field, value, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(map[string]any{"field": field, "value": value})
}
