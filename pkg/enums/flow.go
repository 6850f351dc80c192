package enums

import (
	"fmt"
	"strings"
)

// OrderFlowState is the order screen state derived from the design selection.
type OrderFlowState string

const (
	OrderFlowNoDesignSelected OrderFlowState = "no_design_selected"
	OrderFlowConfiguring      OrderFlowState = "configuring"
)

// String implements fmt.Stringer.
func (s OrderFlowState) String() string {
	return string(s)
}

// FlowEvent is a navigation event applied to the storefront flow.
type FlowEvent string

const (
	FlowEventNavigate     FlowEvent = "navigate"
	FlowEventStartOrder   FlowEvent = "start_order"
	FlowEventSelectDesign FlowEvent = "select_design"
	FlowEventClearDesign  FlowEvent = "clear_design"
)

var validFlowEvents = []FlowEvent{
	FlowEventNavigate,
	FlowEventStartOrder,
	FlowEventSelectDesign,
	FlowEventClearDesign,
}

// String implements fmt.Stringer.
func (e FlowEvent) String() string {
	return string(e)
}

// IsValid reports whether the value is a known FlowEvent.
func (e FlowEvent) IsValid() bool {
	for _, candidate := range validFlowEvents {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseFlowEvent converts raw input into a FlowEvent.
func ParseFlowEvent(value string) (FlowEvent, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validFlowEvents {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid flow event %q", value)
}
