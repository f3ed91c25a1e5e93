package storage

// MemStore is an in-memory KV used by tests.
type MemStore struct {
	data map[string]string
	// FailNextSet makes the next Set return an error, for exercising
	// persistence-failure paths.
	FailNextSet error
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (s *MemStore) Init() error { return nil }
func (s *MemStore) Load() error { return nil }
func (s *MemStore) Close() error {
	return nil
}

func (s *MemStore) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemStore) Set(key, value string) error {
	if s.FailNextSet != nil {
		err := s.FailNextSet
		s.FailNextSet = nil
		return err
	}
	s.data[key] = value
	return nil
}

func (s *MemStore) Remove(key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemStore) Path() string { return "" }
