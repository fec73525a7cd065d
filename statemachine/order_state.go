package statemachine

import (
	"errors"
	"fmt"

	"online-canteen-api/models"
)

// terminalStatuses are states with no further business transitions.
// Transitions out of them are rejected, including re-entering the same
// state: re-cancelling would otherwise re-release reserved inventory.
var terminalStatuses = map[models.OrderStatus]bool{
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// allStatuses in lifecycle order, for the informational endpoint.
var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusCompleted,
	models.StatusCancelled,
}

// IsTerminal reports whether no further transitions are allowed out of the
// given status.
func IsTerminal(status models.OrderStatus) bool {
	return terminalStatuses[status]
}

// CanTransition checks whether an order may move from one status to
// another. Any non-terminal status may move to any other status; which
// actors may request which move is decided separately by CanRequest.
func CanTransition(from, to models.OrderStatus) error {
	if IsTerminal(from) {
		return fmt.Errorf("order is already %s and cannot change status", from)
	}
	if from == to {
		return fmt.Errorf("order is already %s", from)
	}
	return nil
}

// CanRequest checks whether a role is allowed to request a transition into
// the given status. Customers may only cancel; sellers may request any
// status. Ownership of the order is checked by the caller.
func CanRequest(role models.Role, to models.OrderStatus) error {
	switch role {
	case models.RoleCustomer:
		if to != models.StatusCancelled {
			return errors.New("customers can only cancel orders")
		}
		return nil
	case models.RoleSeller:
		return nil
	}
	return fmt.Errorf("unknown role: %s", role)
}

// ValidTransitionsFrom returns all statuses reachable from the given one.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	if IsTerminal(status) {
		return nil
	}
	var nexts []models.OrderStatus
	for _, s := range allStatuses {
		if s != status {
			nexts = append(nexts, s)
		}
	}
	return nexts
}

// AllStatuses returns every order status in lifecycle order.
func AllStatuses() []models.OrderStatus {
	return allStatuses
}
