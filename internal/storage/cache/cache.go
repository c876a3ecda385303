package cache

import (
	"sync"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
)

// Cache keeps the UI session of every user. Sessions are created on first
// access with the default language.
type Cache struct {
	mu              sync.Mutex
	defaultLanguage string
	sessions        map[int64]models.Session
}

func NewCache(defaultLanguage string) *Cache {
	return &Cache{
		defaultLanguage: defaultLanguage,
		sessions:        make(map[int64]models.Session),
	}
}

func (c *Cache) newSession() models.Session {
	return models.Session{Language: c.defaultLanguage}
}

// Session returns a copy of the user's session.
func (c *Cache) Session(userID int64) models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	if !exists {
		return c.newSession()
	}
	return s
}

// Update applies fn to the user's session atomically and returns the result.
func (c *Cache) Update(userID int64, fn func(s *models.Session)) models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	if !exists {
		s = c.newSession()
	}
	fn(&s)
	c.sessions[userID] = s
	return s
}

// Reset replaces the session with a fresh one. The sequence counters keep
// growing so completions that belong to the old session can be told apart.
func (c *Cache) Reset(userID int64) models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.sessions[userID]
	s := c.newSession()
	s.Seq = old.Seq + 1
	s.NotifySeq = old.NotifySeq + 1
	c.sessions[userID] = s
	return s
}
