package apiclient

import (
	"strings"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
)

// RouteGuard mirrors the server's role allowlists so callers can make
// pre-flight routing decisions without a round trip. The server remains
// authoritative; an out-of-date guard fails closed with a 403.
type RouteGuard struct {
	rules []guardRule
}

type guardRule struct {
	prefix string
	roles  map[models.Role]bool
}

// NewRouteGuard builds the guard with the default allowlists. Rules are
// path-prefix only: route families whose access varies by HTTP method
// (mentors, mentees, groups, slots) carry no rule here and rely on the
// server's per-method gates.
func NewRouteGuard() *RouteGuard {
	g := &RouteGuard{}
	g.add("/api/session-logs/export", models.RoleAdmin)
	g.add("/api/session-logs/needs-support", models.RoleAdmin)
	g.add("/api/session-logs", models.RoleMentor, models.RoleAdmin)
	g.add("/api/invites/validate", models.RoleUser, models.RoleMentor, models.RoleMentee, models.RoleAdmin)
	g.add("/api/invites", models.RoleAdmin)
	return g
}

func (g *RouteGuard) add(prefix string, roles ...models.Role) {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	g.rules = append(g.rules, guardRule{prefix: prefix, roles: allowed})
}

// Allowed reports whether role may use path. Paths with no rule are open to
// every authenticated role. Longest-prefix rule wins.
func (g *RouteGuard) Allowed(path string, role models.Role) bool {
	var best *guardRule
	for i := range g.rules {
		rule := &g.rules[i]
		if strings.HasPrefix(path, rule.prefix) {
			if best == nil || len(rule.prefix) > len(best.prefix) {
				best = rule
			}
		}
	}
	if best == nil {
		return true
	}
	return best.roles[role]
}
