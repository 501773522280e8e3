package health

// Reporter reports service health from configuration state only.
type Reporter interface {
	Report() Status
}

type implReporter struct {
	avail Availability
}

// New creates a Reporter over a fixed availability snapshot.
func New(avail Availability) Reporter {
	return &implReporter{avail: avail}
}

// Report never calls a live provider.
func (r *implReporter) Report() Status {
	switch {
	case !r.avail.AICompletion:
		return Status{State: StateUnhealthy, Message: MsgAIKeyMissing, Providers: r.avail}
	case !r.avail.Store:
		return Status{State: StateDegraded, Message: MsgStoreMissing, Providers: r.avail}
	default:
		return Status{State: StateHealthy, Message: MsgHealthy, Providers: r.avail}
	}
}
