package duplicates

// Ledger records names that have already been matched. A key inserted on
// either side of a pair can be looked up or removed by itself.
type Ledger struct {
	forward map[string]string
	reverse map[string]string
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
}

// Insert records left and right as matched with each other. A key that was
// already paired loses its previous counterpart.
func (l *Ledger) Insert(left, right string) {
	if old, ok := l.forward[left]; ok {
		delete(l.reverse, old)
	}
	if old, ok := l.reverse[right]; ok {
		delete(l.forward, old)
	}
	l.forward[left] = right
	l.reverse[right] = left
}

// Contains reports whether key was inserted as either a left or right value
func (l *Ledger) Contains(key string) bool {
	if _, ok := l.forward[key]; ok {
		return true
	}
	_, ok := l.reverse[key]
	return ok
}

// Counterpart returns the value key was paired with, whichever side key was on
func (l *Ledger) Counterpart(key string) (string, bool) {
	if v, ok := l.forward[key]; ok {
		return v, true
	}
	v, ok := l.reverse[key]
	return v, ok
}

// Remove deletes the pair containing key, regardless of which side it matches
func (l *Ledger) Remove(key string) {
	if right, ok := l.forward[key]; ok {
		delete(l.forward, key)
		delete(l.reverse, right)
		return
	}
	if left, ok := l.reverse[key]; ok {
		delete(l.reverse, key)
		delete(l.forward, left)
	}
}

// Len returns the number of recorded pairs
func (l *Ledger) Len() int {
	return len(l.forward)
}
