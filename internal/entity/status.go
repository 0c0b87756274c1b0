package entity

import "fmt"

// forwardSteps is the linear lifecycle: each state advances to exactly one
// successor. SETTLED is terminal.
var forwardSteps = map[string]string{
	OrderStatusPlanned:    OrderStatusStaging,
	OrderStatusStaging:    OrderStatusReleased,
	OrderStatusReleased:   OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusFulfilled,
	OrderStatusFulfilled:  OrderStatusSettled,
}

// CanTransition reports whether the status change from -> to is legal.
func CanTransition(from, to string) bool {
	if from == OrderStatusSettled {
		return false
	}
	if to == OrderStatusSuspended {
		// Any live state may be suspended, but never SUSPENDED itself.
		return from != OrderStatusSuspended
	}
	if from == OrderStatusSuspended {
		// The caller chooses the destination explicitly when resuming.
		return ValidStatus(to)
	}
	return forwardSteps[from] == to
}

// TransitionTo applies a status change to the order, enforcing the
// transition table. Entering SUSPENDED requires a non-empty reason, which is
// persisted on the order; leaving SUSPENDED clears it. Entering IN_PROGRESS
// resets the self-check flag.
func (o *Order) TransitionTo(to, reason string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(o.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	if to == OrderStatusSuspended {
		if reason == "" {
			return fmt.Errorf("%w: suspension requires a reason", ErrInvalidTransition)
		}
		o.SuspensionReason = reason
	} else if o.Status == OrderStatusSuspended {
		o.SuspensionReason = ""
	}

	if to == OrderStatusInProgress {
		o.SelfCheck = false
	}

	o.Status = to
	return nil
}
