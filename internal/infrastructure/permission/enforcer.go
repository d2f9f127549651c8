// Package permission enforces role-based access with casbin, persisting
// policies through the gorm adapter.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"hostelhub/internal/shared/constants"
	"hostelhub/internal/shared/logger"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return e.enforcer.SavePolicy()
}

func (e *Enforcer) RemovePolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return e.enforcer.SavePolicy()
}

// SeedDefaultPolicies installs the baseline role policies. AddPolicy on an
// existing rule is a no-op, so the seed is safe to run on every boot.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	policies := [][]string{
		{constants.RoleAdmin, "hostel", "create"},
		{constants.RoleAdmin, "hostel", "read"},
		{constants.RoleAdmin, "hostel", "update"},
		{constants.RoleAdmin, "hostel", "delete"},
		{constants.RoleAdmin, "room", "create"},
		{constants.RoleAdmin, "room", "read"},
		{constants.RoleAdmin, "room", "update"},
		{constants.RoleAdmin, "room", "delete"},
		{constants.RoleAdmin, "calendar_year", "create"},
		{constants.RoleAdmin, "calendar_year", "read"},
		{constants.RoleAdmin, "calendar_year", "activate"},
		{constants.RoleAdmin, "resident", "read"},
		{constants.RoleAdmin, "resident", "checkout"},
		{constants.RoleAdmin, "payment", "read"},
		{constants.RoleAdmin, "payment", "reconcile"},
		{constants.RoleAdmin, "announcement", "create"},
		{constants.RoleAdmin, "announcement", "read"},
		{constants.RoleAdmin, "announcement", "update"},
		{constants.RoleAdmin, "announcement", "delete"},
		{constants.RoleAdmin, "announcement", "publish"},
		{constants.RoleAdmin, "maintenance", "read"},
		{constants.RoleAdmin, "maintenance", "update"},

		{constants.RoleResident, "hostel", "read"},
		{constants.RoleResident, "room", "read"},
		{constants.RoleResident, "payment", "create"},
		{constants.RoleResident, "payment", "read"},
		{constants.RoleResident, "resident", "checkin"},
		{constants.RoleResident, "announcement", "read"},
		{constants.RoleResident, "maintenance", "create"},
		{constants.RoleResident, "maintenance", "read"},
	}

	for _, p := range policies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	e.logger.Info("default role policies seeded")
	return nil
}
