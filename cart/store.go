package cart

// EventKind distinguishes the mutation that happened to the store. Added and
// Updated are deliberately separate events so the caller can present distinct
// feedback for "new line" versus "merged into an existing line".
type EventKind int

const (
	// EventAdded fires when a line with a new key is appended.
	EventAdded EventKind = iota
	// EventUpdated fires when an existing line's quantity or observation changes.
	EventUpdated
	// EventRemoved fires when a line leaves the store, including a quantity
	// update that lands on zero.
	EventRemoved
	// EventCleared fires once when the whole store is emptied.
	EventCleared
)

// Event describes a single store mutation.
type Event struct {
	Kind EventKind
	Key  LineKey
	// Quantity is the line's quantity after the mutation; zero for
	// EventRemoved and EventCleared.
	Quantity int
}

// Store is the in-memory collection of cart lines for one operator session.
// Lines keep insertion order. No operation fails: unknown keys are silently
// ignored for remove and update.
//
// Store is not safe for concurrent use; the session model is single-operator,
// single-goroutine.
type Store struct {
	lines     map[LineKey]*Line
	order     []LineKey
	observers []func(Event)
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{lines: make(map[LineKey]*Line)}
}

// Subscribe registers an observer invoked synchronously after every mutation.
func (s *Store) Subscribe(fn func(Event)) {
	s.observers = append(s.observers, fn)
}

// Add inserts the line under its derived key. If a line with the same key
// already exists, the quantities are merged instead and an update event is
// emitted; otherwise the line is appended and an added event is emitted.
// A non-positive quantity on the incoming line counts as one unit.
func (s *Store) Add(line Line) {
	qty := line.Quantity
	if qty <= 0 {
		qty = 1
	}

	key := KeyOf(line)
	if existing, ok := s.lines[key]; ok {
		existing.Quantity += qty
		s.notify(Event{Kind: EventUpdated, Key: key, Quantity: existing.Quantity})
		return
	}

	line.Key = key
	line.Quantity = qty
	s.lines[key] = &line
	s.order = append(s.order, key)
	s.notify(Event{Kind: EventAdded, Key: key, Quantity: qty})
}

// Remove deletes the line with the given key. Absent keys are a no-op.
func (s *Store) Remove(key LineKey) {
	if _, ok := s.lines[key]; !ok {
		return
	}
	s.drop(key)
	s.notify(Event{Kind: EventRemoved, Key: key})
}

// UpdateQuantity adjusts a line's quantity by delta, clamping at zero. A
// resulting quantity of zero removes the line and emits a removed event, not
// an update event. Absent keys are a no-op.
func (s *Store) UpdateQuantity(key LineKey, delta int) {
	line, ok := s.lines[key]
	if !ok {
		return
	}

	qty := line.Quantity + delta
	if qty <= 0 {
		s.drop(key)
		s.notify(Event{Kind: EventRemoved, Key: key})
		return
	}
	line.Quantity = qty
	s.notify(Event{Kind: EventUpdated, Key: key, Quantity: qty})
}

// UpdateObservation replaces the free-text observation on a line. The key is
// unaffected, so editing an observation never splits or merges lines. Absent
// keys are a no-op.
func (s *Store) UpdateObservation(key LineKey, text string) {
	line, ok := s.lines[key]
	if !ok {
		return
	}
	line.Observation = text
	s.notify(Event{Kind: EventUpdated, Key: key, Quantity: line.Quantity})
}

// Clear empties the store and emits a single cleared event.
func (s *Store) Clear() {
	s.lines = make(map[LineKey]*Line)
	s.order = s.order[:0]
	s.notify(Event{Kind: EventCleared})
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.lines[key])
	}
	return out
}

// Len reports the number of distinct lines.
func (s *Store) Len() int {
	return len(s.order)
}

// Empty reports whether the store has no lines.
func (s *Store) Empty() bool {
	return len(s.order) == 0
}

func (s *Store) drop(key LineKey) {
	delete(s.lines, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) notify(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}
