// Package messages is the contact-form inbox: user-submitted messages with a
// simple unread/read/replied workflow.
package messages

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Message status workflow. A message starts unread; staff mark it read and
// finally replied.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Message priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Message is one contact-form submission.
type Message struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Subject  string    `json:"subject"`
	Body     string    `json:"message"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Priority string    `json:"priority"`
}

// ListFilter narrows a List call. Zero values and the literal "all" mean
// "no constraint".
type ListFilter struct {
	Status   string
	Priority string
	Limit    int
}

// Store is the in-memory message inbox. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	messages []Message
	nextID   int
	now      func() time.Time
}

// NewStore creates a store over the built-in seed messages.
func NewStore() *Store {
	msgs := make([]Message, len(seedMessages))
	copy(msgs, seedMessages)

	nextID := 1
	for _, m := range msgs {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}
	return &Store{messages: msgs, nextID: nextID, now: time.Now}
}

// List returns messages matching the filter, newest first.
func (s *Store) List(filter ListFilter) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Message
	for _, m := range s.messages {
		if filter.Status != "" && filter.Status != "all" && m.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && filter.Priority != "all" && m.Priority != filter.Priority {
			continue
		}
		result = append(result, m)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result
}

// Get returns the message with the given id.
func (s *Store) Get(id int) (Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return Message{}, errors.NotFound("pesan tidak ditemukan")
}

// Create validates and stores a new message with status unread. An empty
// priority defaults to medium.
func (s *Store) Create(m Message) (Message, error) {
	var details []string
	if strings.TrimSpace(m.Name) == "" {
		details = append(details, "Nama wajib diisi")
	}
	if !strings.Contains(m.Email, "@") {
		details = append(details, "Email tidak valid")
	}
	if strings.TrimSpace(m.Subject) == "" {
		details = append(details, "Subjek wajib diisi")
	}
	if strings.TrimSpace(m.Body) == "" {
		details = append(details, "Pesan wajib diisi")
	}
	if m.Priority == "" {
		m.Priority = PriorityMedium
	}
	if m.Priority != PriorityLow && m.Priority != PriorityMedium && m.Priority != PriorityHigh {
		details = append(details, "Prioritas harus 'low', 'medium', atau 'high'")
	}
	if len(details) > 0 {
		return Message{}, errors.Validation(details...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	m.Date = s.now()
	m.Status = StatusUnread

	s.messages = append([]Message{m}, s.messages...)
	return m, nil
}

// SetStatus moves a message through the workflow. Only forward transitions
// are allowed: unread → read → replied.
func (s *Store) SetStatus(id int, status string) (Message, error) {
	rank := map[string]int{StatusUnread: 0, StatusRead: 1, StatusReplied: 2}
	newRank, ok := rank[status]
	if !ok {
		return Message{}, errors.InvalidParam("status harus 'unread', 'read', atau 'replied'")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		if newRank < rank[s.messages[i].Status] {
			return Message{}, errors.InvalidParam("status pesan tidak dapat dikembalikan")
		}
		s.messages[i].Status = status
		return s.messages[i], nil
	}
	return Message{}, errors.NotFound("pesan tidak ditemukan")
}

// UnreadCount returns the number of unread messages.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, m := range s.messages {
		if m.Status == StatusUnread {
			count++
		}
	}
	return count
}
