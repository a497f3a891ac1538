package store

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Memory is a process-local Store used for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	byID    map[string]Account
	byEmail map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]Account), byEmail: make(map[string]string)}
}

func emailKey(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (m *Memory) CreateAccount(_ context.Context, a Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := emailKey(a.Email)
	if _, exists := m.byEmail[key]; exists {
		return ErrAccountExists
	}
	m.byID[a.ID] = cloneAccount(a)
	m.byEmail[key] = a.ID
	return nil
}

func (m *Memory) FindByEmail(_ context.Context, email string) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[emailKey(email)]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return cloneAccount(m.byID[id]), nil
}

func (m *Memory) FindByID(_ context.Context, id string) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.byID[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (m *Memory) AddGoal(_ context.Context, userID string, g Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[userID]
	if !ok {
		return ErrAccountNotFound
	}
	a.Goals = append(a.Goals, cloneGoal(g))
	m.byID[userID] = a
	return nil
}

func (m *Memory) SetGoalStatus(_ context.Context, userID, goalID, status string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[userID]
	if !ok {
		return ErrAccountNotFound
	}
	for i := range a.Goals {
		if a.Goals[i].ID == goalID {
			a.Goals[i].Status = status
			a.Goals[i].UpdatedAt = at
			m.byID[userID] = a
			return nil
		}
	}
	return ErrGoalNotFound
}

func (m *Memory) UpdateProfile(_ context.Context, userID string, upd ProfileUpdate, at time.Time) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[userID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if upd.Username != nil {
		a.Username = *upd.Username
	}
	if upd.Description != nil {
		a.Description = *upd.Description
	}
	a.UpdatedAt = at
	m.byID[userID] = a
	return cloneAccount(a), nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func cloneAccount(a Account) Account {
	goals := make([]Goal, len(a.Goals))
	for i, g := range a.Goals {
		goals[i] = cloneGoal(g)
	}
	a.Goals = goals
	return a
}

func cloneGoal(g Goal) Goal {
	g.Steps = append([]Step(nil), g.Steps...)
	return g
}
