package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDefaults(t *testing.T) {
	s := NewStore()

	name, emotion := s.Merge("u1", "", "")
	assert.Equal(t, DefaultName, name)
	assert.Equal(t, DefaultEmotion, emotion)
}

func TestMergeOverwritesName(t *testing.T) {
	s := NewStore()

	name, _ := s.Merge("u1", "Ali", "")
	assert.Equal(t, "Ali", name)

	// Omitted name keeps the stored one
	name, _ = s.Merge("u1", "", "")
	assert.Equal(t, "Ali", name)

	// A new non-empty name overwrites
	name, _ = s.Merge("u1", "Aliyah", "")
	assert.Equal(t, "Aliyah", name)
}

func TestMergeIsIdempotent(t *testing.T) {
	s := NewStore()

	name1, emotion1 := s.Merge("u1", "Ali", "sad")
	name2, emotion2 := s.Merge("u1", "Ali", "sad")

	assert.Equal(t, name1, name2)
	assert.Equal(t, emotion1, emotion2)

	record, found := s.Get("u1")
	require.True(t, found)
	assert.Equal(t, Record{Name: "Ali", LastEmotion: "sad"}, record)
}

func TestSetEmotion(t *testing.T) {
	s := NewStore()
	s.Merge("u1", "Ali", "")

	s.SetEmotion("u1", "lonely")
	_, emotion := s.Merge("u1", "", "")
	assert.Equal(t, "lonely", emotion)

	// Empty writes are ignored
	s.SetEmotion("u1", "")
	_, emotion = s.Merge("u1", "", "")
	assert.Equal(t, "lonely", emotion)
}

func TestUserIsolation(t *testing.T) {
	s := NewStore()

	s.Merge("u1", "Ali", "sad")
	name, emotion := s.Merge("u2", "", "")

	assert.Equal(t, DefaultName, name)
	assert.Equal(t, DefaultEmotion, emotion)

	_, found := s.Get("u3")
	assert.False(t, found)
}

func TestConcurrentDistinctUsers(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			s.Merge(userID, fmt.Sprintf("Name-%d", i), "")
			s.SetEmotion(userID, "sad")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 64; i++ {
		record, found := s.Get(fmt.Sprintf("user-%d", i))
		require.True(t, found)
		assert.Equal(t, fmt.Sprintf("Name-%d", i), record.Name)
		assert.Equal(t, "sad", record.LastEmotion)
	}
}

func TestConcurrentSameUserNoLostUpdates(t *testing.T) {
	s := NewStore()
	s.Merge("u1", "Ali", "")

	// Overlapping writers touch different fields of the same record; the
	// per-key lock must prevent either write from clobbering the other.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetEmotion("u1", "anxious")
		}()
		go func() {
			defer wg.Done()
			s.Merge("u1", "Ali", "")
		}()
	}
	wg.Wait()

	record, found := s.Get("u1")
	require.True(t, found)
	assert.Equal(t, "Ali", record.Name)
	assert.Equal(t, "anxious", record.LastEmotion)
}
