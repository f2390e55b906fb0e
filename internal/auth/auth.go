// Package auth holds the demo role context: which persona is active and
// which permissions that persona carries. The active role is persisted in
// the kv layer under its own key, separate from the data collections, so
// switching roles survives a restart while a data reset leaves the session
// alone. The data store is role-agnostic; permission checks happen at the
// HTTP boundary.
package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/kv"
)

// Permission names one gated capability of the HTTP surface.
type Permission string

const (
	PermFleetRead         Permission = "fleet.read"
	PermFleetWrite        Permission = "fleet.write"
	PermMaintenanceReport Permission = "maintenance.report"
	PermMaintenanceWrite  Permission = "maintenance.write"
	PermReservationWrite  Permission = "reservation.write"
	PermSlipWrite         Permission = "slip.write"
	PermAdmin             Permission = "admin"
)

// rolePermissions is the derived permission set per role. Admin gets
// everything, guest is read-only.
var rolePermissions = map[domain.Role][]Permission{
	domain.RoleAdmin: {
		PermFleetRead, PermFleetWrite, PermMaintenanceReport,
		PermMaintenanceWrite, PermReservationWrite, PermSlipWrite, PermAdmin,
	},
	domain.RoleFleetManager: {
		PermFleetRead, PermFleetWrite, PermMaintenanceReport,
		PermMaintenanceWrite, PermReservationWrite, PermSlipWrite,
	},
	domain.RoleMember: {
		PermFleetRead, PermMaintenanceReport, PermReservationWrite,
	},
	domain.RoleGuest: {
		PermFleetRead,
	},
}

// sessionKey lives under the shared storage prefix but is not a collection
// key: the store's version purge and Clear never touch it.
const sessionKey = "rigreport:session"

// Session is the persisted role state.
type Session struct {
	Role      domain.Role `json:"role"`
	SessionID string      `json:"sessionId"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Manager owns the active demo session.
type Manager struct {
	mu  sync.Mutex
	kv  kv.Store
	cur Session
}

// NewManager loads the persisted session, defaulting to the admin persona
// so a fresh demo opens fully functional.
func NewManager(backing kv.Store) *Manager {
	m := &Manager{kv: backing}
	var stored Session
	if backing.Get(sessionKey, &stored) && rolePermissions[stored.Role] != nil {
		m.cur = stored
		return m
	}
	m.cur = Session{
		Role:      domain.RoleAdmin,
		SessionID: uuid.NewString(),
		UpdatedAt: time.Now(),
	}
	backing.Set(sessionKey, m.cur)
	return m
}

// Current returns the active session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// SetRole switches the active persona, mints a new session id, and persists.
// Unknown roles are a validation error.
func (m *Manager) SetRole(role domain.Role) (Session, error) {
	if rolePermissions[role] == nil {
		return Session{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = Session{
		Role:      role,
		SessionID: uuid.NewString(),
		UpdatedAt: time.Now(),
	}
	m.kv.Set(sessionKey, m.cur)
	return m.cur, nil
}

// Can reports whether the active role carries the permission.
func (m *Manager) Can(p Permission) bool {
	m.mu.Lock()
	role := m.cur.Role
	m.mu.Unlock()
	for _, granted := range rolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}

// Permissions returns the active role's permission set, in declaration order.
func (m *Manager) Permissions() []Permission {
	m.mu.Lock()
	role := m.cur.Role
	m.mu.Unlock()
	out := make([]Permission, len(rolePermissions[role]))
	copy(out, rolePermissions[role])
	return out
}
