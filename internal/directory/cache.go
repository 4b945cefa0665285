// Package directory caches the full user list for synchronous
// display-name lookups while rendering. The cache is rebuilt wholesale on
// every login and is read-only decoration: staleness between refreshes is
// acceptable because it never feeds authoritative state.
package directory

import (
	"context"
	"strconv"
	"sync"

	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
)

// Cache is the directory snapshot. Safe for concurrent reads.
type Cache struct {
	api gateway.API
	log logging.Logger

	mu      sync.RWMutex
	entries map[int]models.User
}

func NewCache(api gateway.API, log logging.Logger) *Cache {
	return &Cache{api: api, log: log}
}

// Refresh fetches the full user list and replaces the snapshot. On failure
// it logs, keeps whatever snapshot it had and returns nil: callers treat
// "no names available" as a degraded but safe state.
func (c *Cache) Refresh(ctx context.Context) []models.User {
	users, err := c.api.Users(ctx)
	if err != nil {
		c.log.Error(ctx, "directory refresh failed", "error", err)
		return nil
	}

	entries := make(map[int]models.User, len(users))
	for _, u := range users {
		entries[u.ID] = u
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return users
}

// Lookup returns the cached entry for id, if any.
func (c *Cache) Lookup(id int) (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.entries[id]
	return u, ok
}

// All returns the cached entries in no particular order.
func (c *Cache) All() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.User, 0, len(c.entries))
	for _, u := range c.entries {
		out = append(out, u)
	}
	return out
}

// Name resolves an optional user reference to a display name, substituting
// fallback when the reference is nil or the id is unknown.
func (c *Cache) Name(id *int, fallback string) string {
	if id == nil {
		return fallback
	}
	if u, ok := c.Lookup(*id); ok {
		return u.Name
	}
	return fallback
}

// Invalidate drops the snapshot. The session store calls this on logout so
// the cache's lifetime matches the session's.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.mu.Unlock()
}

// DepartmentName resolves a department id to its name through the remote
// service: "-" when the reference is absent, "ID:<id>" when the lookup
// fails. Missing organisational data never blocks rendering.
func (c *Cache) DepartmentName(ctx context.Context, id *int) string {
	if id == nil {
		return "-"
	}
	dept, err := c.api.Department(ctx, *id)
	if err != nil || dept.Name == "" {
		return "ID:" + strconv.Itoa(*id)
	}
	return dept.Name
}

// SectionName is DepartmentName for sections.
func (c *Cache) SectionName(ctx context.Context, id *int) string {
	if id == nil {
		return "-"
	}
	section, err := c.api.Section(ctx, *id)
	if err != nil || section.Name == "" {
		return "ID:" + strconv.Itoa(*id)
	}
	return section.Name
}
