package authz

import "github.com/casbin/casbin"

const model = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Roles used in policies.
const (
	RoleStaff = "staff"
	RoleUser  = "user"
)

// NewEnforcer builds the RBAC enforcer for staff-only surfaces. Policies
// live in code since the staff surface is small and versioned with it.
func NewEnforcer() *casbin.Enforcer {
	e := casbin.NewEnforcer(casbin.NewModel(model))

	e.AddPolicy(RoleStaff, "/api/v1/staff/*", "*")
	e.AddPolicy(RoleStaff, "/api/v1/bookings/:id/approve", "POST")
	e.AddPolicy(RoleStaff, "/api/v1/bookings/:id/deny", "POST")
	e.AddPolicy(RoleStaff, "/api/v1/bookings/:id/cancel", "POST")
	e.AddPolicy(RoleStaff, "/api/v1/payments/:id/settlement", "PUT")
	e.AddPolicy(RoleStaff, "/api/v1/payments/:id/settlement", "GET")
	e.AddPolicy(RoleStaff, "/api/v1/payments/:id/status", "PUT")

	return e
}

// Allowed reports whether the role may call method+path. Paths are matched
// against the route template, not the concrete URL.
func Allowed(e *casbin.Enforcer, role, path, method string) bool {
	return e.Enforce(role, path, method)
}
