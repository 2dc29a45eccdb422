// Package telemetry provides session tracking, event logs and performance metrics.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventDamage EventType = iota
	EventCatch
	EventNewSpecies
	EventBoostDepleted
	EventSurfaced
	EventSubmerged
	EventGameOver
	EventVictory
	EventReset
	EventRestart
)

var eventNames = [...]string{
	EventDamage:        "damage",
	EventCatch:         "catch",
	EventNewSpecies:    "new_species",
	EventBoostDepleted: "boost_depleted",
	EventSurfaced:      "surfaced",
	EventSubmerged:     "submerged",
	EventGameOver:      "game_over",
	EventVictory:       "victory",
	EventReset:         "reset",
	EventRestart:       "restart",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single gameplay event.
type Event struct {
	Type EventType
	Tick int32
	Time float64 // Simulated seconds; stamped by the game when the event is queued

	// Optional fields depending on event type
	Species string  // catch / new species / damage source
	Amount  float64 // damage dealt
}

// NewDamageEvent creates a shark bite event.
func NewDamageEvent(tick int32, species string, amount float64) Event {
	return Event{Type: EventDamage, Tick: tick, Species: species, Amount: amount}
}

// NewCatchEvent creates a catch event.
func NewCatchEvent(tick int32, species string) Event {
	return Event{Type: EventCatch, Tick: tick, Species: species}
}

// NewSpeciesEvent creates a first-catch-of-species event.
func NewSpeciesEvent(tick int32, species string) Event {
	return Event{Type: EventNewSpecies, Tick: tick, Species: species}
}

// NewStateEvent creates an event that carries no payload.
func NewStateEvent(tick int32, t EventType) Event {
	return Event{Type: t, Tick: tick}
}

// EventRecord is the flat CSV form of an Event.
type EventRecord struct {
	Tick    int32   `csv:"tick"`
	SimTime float64 `csv:"sim_time"`
	Type    string  `csv:"type"`
	Species string  `csv:"species"`
	Amount  float64 `csv:"amount"`
}

// Record converts the event for CSV output.
func (e Event) Record() EventRecord {
	return EventRecord{
		Tick:    e.Tick,
		SimTime: e.Time,
		Type:    e.Type.String(),
		Species: e.Species,
		Amount:  e.Amount,
	}
}
