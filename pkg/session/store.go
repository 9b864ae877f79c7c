package session

import (
	"hash/fnv"
	"sync"

	"github.com/patrickmn/go-cache"
)

const (
	// DefaultName is used when a user never supplied a display name.
	DefaultName = "Friend"
	// DefaultEmotion is the neutral placeholder before any classification.
	DefaultEmotion = "neutral"

	shardCount = 32
)

// Record is the per-user fact sheet retained for the process lifetime.
type Record struct {
	Name        string `json:"name"`
	LastEmotion string `json:"last_emotion"`
}

// Store keeps per-user records keyed by user id. Records live for the process
// lifetime (no expiration, no eviction sweep). Reads and writes for the same
// user go through a lock shard keyed by user id, so read-modify-write is
// atomic per user and overlapping requests from one user cannot lose updates.
// Users on different shards proceed independently.
type Store struct {
	cache *cache.Cache
	locks [shardCount]sync.Mutex
}

func NewStore() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *Store) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &s.locks[h.Sum32()%shardCount]
}

// Merge reconciles incoming request context with the stored record and
// returns the resolved values. A non-empty incoming name overwrites the
// stored one; an empty incoming name keeps what is stored (or the
// placeholder). Symmetrically for emotion: a non-empty incoming emotion is
// written through, and the resolved emotion read back is the stored one. The
// write is visible before Merge returns, so later pipeline steps of the same
// run always observe it.
func (s *Store) Merge(userID, incomingName, incomingEmotion string) (string, string) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	record := s.getLocked(userID)

	if incomingName != "" {
		record.Name = incomingName
	}
	if incomingEmotion != "" {
		record.LastEmotion = incomingEmotion
	}

	s.cache.Set(userID, record, cache.NoExpiration)
	return record.Name, record.LastEmotion
}

// SetEmotion writes the detected emotion through to the record.
func (s *Store) SetEmotion(userID, detected string) {
	if detected == "" {
		return
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	record := s.getLocked(userID)
	record.LastEmotion = detected
	s.cache.Set(userID, record, cache.NoExpiration)
}

// Get returns the stored record, reporting whether the user has been seen.
func (s *Store) Get(userID string) (Record, bool) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	if x, found := s.cache.Get(userID); found {
		return x.(Record), true
	}
	return Record{Name: DefaultName, LastEmotion: DefaultEmotion}, false
}

// getLocked loads the record or initializes defaults for an unseen user.
// Caller must hold the shard lock.
func (s *Store) getLocked(userID string) Record {
	if x, found := s.cache.Get(userID); found {
		return x.(Record)
	}
	return Record{Name: DefaultName, LastEmotion: DefaultEmotion}
}
