package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

// Role names are part of the token contract and the data model; they never
// change at runtime, so the whole policy table is static.
const (
	RoleUser      = "User"
	RoleCompanyHR = "Company_HR"
)

// policy is the full role -> resource/action table.
var policy = [][]string{
	{RoleCompanyHR, "company", "create"},
	{RoleCompanyHR, "company", "read"},
	{RoleCompanyHR, "company", "update"},
	{RoleCompanyHR, "company", "delete"},
	{RoleCompanyHR, "job", "create"},
	{RoleCompanyHR, "job", "update"},
	{RoleCompanyHR, "job", "delete"},
	{RoleCompanyHR, "application", "list"},
	{RoleCompanyHR, "application", "export"},
	{RoleUser, "application", "create"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// NewService seeds the static policy into the enforcer.
func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range policy {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
