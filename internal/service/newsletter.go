package service

import (
	"errors"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrInvalidEmail is returned when a subscription address fails the
	// shape check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrAlreadySubscribed is returned when the normalized address is
	// already in the set.
	ErrAlreadySubscribed = errors.New("already subscribed")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Newsletter keeps the subscriber set in process memory. Subscriptions do
// not survive a restart; the type is small enough that a store-backed
// replacement stays a local change. The set is shared across concurrent
// requests, so add-if-absent happens under one lock.
type Newsletter struct {
	mu          sync.Mutex
	subscribers map[string]struct{}
}

// NewNewsletter creates an empty subscriber set.
func NewNewsletter() *Newsletter {
	return &Newsletter{subscribers: make(map[string]struct{})}
}

// Subscribe validates the address shape, normalizes case, and adds the
// address if absent.
func (n *Newsletter) Subscribe(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	key := strings.ToLower(email)

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subscribers[key]; ok {
		return ErrAlreadySubscribed
	}
	n.subscribers[key] = struct{}{}
	return nil
}

// Count returns the number of distinct subscribers.
func (n *Newsletter) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}
