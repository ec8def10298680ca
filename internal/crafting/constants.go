package crafting

// Job statuses reported through the queue API.
const (
	StatusActive  = "active"
	StatusWaiting = "waiting"
)
