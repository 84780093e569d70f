package authz

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
)

const (
	ResourceRecord = "production_record"
	ResourceLine   = "production_line"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// The role lattice and grants are fixed, so the enforcer is seeded from these
// tables instead of a storage adapter.
const modelText = `
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

var grants = [][3]string{
	{domain.RoleOperator, ResourceRecord, ActionCreate},
	{domain.RoleOperator, ResourceRecord, ActionRead},
	{domain.RoleOperator, ResourceRecord, ActionUpdate},
	{domain.RoleOperator, ResourceLine, ActionRead},
	{domain.RoleManager, ResourceRecord, ActionDelete},
	{domain.RoleManager, ResourceLine, ActionCreate},
	{domain.RoleManager, ResourceLine, ActionUpdate},
}

var inheritance = [][2]string{
	{domain.RoleManager, domain.RoleOperator},
	{domain.RoleAdmin, domain.RoleManager},
}

type Policy interface {
	Allow(principal domain.Principal, resource, action string) (bool, error)
	CanModifyRecord(principal domain.Principal, creatorID string) bool
}

type policy struct {
	enforcer *casbin.Enforcer
}

func NewPolicy() (Policy, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, g := range grants {
		if _, err := enforcer.AddPolicy(g[0], g[1], g[2]); err != nil {
			return nil, err
		}
	}
	for _, in := range inheritance {
		if _, err := enforcer.AddGroupingPolicy(in[0], in[1]); err != nil {
			return nil, err
		}
	}

	return &policy{enforcer: enforcer}, nil
}

func (p *policy) Allow(principal domain.Principal, resource, action string) (bool, error) {
	return p.enforcer.Enforce(principal.Role, resource, action)
}

// CanModifyRecord layers the ownership rule on top of the role grants:
// admins update any record, everyone else only their own.
func (p *policy) CanModifyRecord(principal domain.Principal, creatorID string) bool {
	if principal.Role == domain.RoleAdmin {
		return true
	}
	return principal.ID != "" && principal.ID == creatorID
}
