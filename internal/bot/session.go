package bot

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionStore holds per-user, per-chat sessions with TTL eviction so
// an abandoned conversation does not live forever. Keying by both IDs
// keeps group-chat members from taking over each other's pending input.
type SessionStore struct {
	cache *cache.Cache
}

// NewSessionStore creates a session store whose entries expire after ttl
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: cache.New(ttl, ttl/2),
	}
}

func sessionKey(chatID, userID int64) string {
	return strconv.FormatInt(chatID, 10) + ":" + strconv.FormatInt(userID, 10)
}

// Get returns the session for a user within a chat, creating it lazily.
// Each access refreshes the TTL.
func (s *SessionStore) Get(chatID, userID int64) *Session {
	key := sessionKey(chatID, userID)
	if v, ok := s.cache.Get(key); ok {
		session := v.(*Session)
		s.cache.SetDefault(key, session)
		return session
	}

	session := &Session{ChatID: chatID, UserID: userID}
	s.cache.SetDefault(key, session)
	return session
}

// TakeInput returns the user's pending input in the chat and clears it.
// The second return is false when no input was pending. Clearing here
// is what guarantees a dispatch fires at most once per captured content.
func (s *SessionStore) TakeInput(chatID, userID int64) (string, bool) {
	session := s.Get(chatID, userID)
	if session.PendingInput == "" {
		return "", false
	}
	input := session.PendingInput
	session.PendingInput = ""
	return input, true
}
