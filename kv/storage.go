package kv

type Pair struct {
	Key, Value string
}

// Storage is an ordered sequence of (string, string) pairs. It acts as a map but uses
// linear search instead, which is efficient enough for the handful of headers a request
// normally carries.
//
// Keys are neither deduplicated nor normalized: every pair is kept in arrival order and
// lookups match keys literally, byte for byte. When a key is presented multiple times,
// lookups returning a single value pick the first one.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add appends a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value corresponding to the key. Otherwise, empty string is returned.
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Get returns the first value and a bool, indicating whether the value was found.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Len returns a number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
