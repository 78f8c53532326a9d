package domain

// Status is the order lifecycle state. Wire values are the Spanish labels the
// frontend displays.
type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusCompleted Status = "Completada"
	StatusCancelled Status = "Cancelada"
	StatusRefunded  Status = "Reembolsada"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
