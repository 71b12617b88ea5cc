package domain

import (
	"net/http"
	"path"
	"strings"

	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// Rule maps a request pattern to the minimum role required to access it.
// An empty Method matches every method and an empty MinimumRole makes the
// pattern public.
type Rule struct {
	Method      string
	Pattern     string
	MinimumRole userDomain.Role
}

// Public returns a rule that lets anyone, authenticated or not, reach pattern.
func Public(pattern string) Rule {
	return Rule{Pattern: pattern}
}

// Require returns a rule restricting method on pattern to role or higher.
func Require(method, pattern string, role userDomain.Role) Rule {
	return Rule{Method: method, Pattern: pattern, MinimumRole: role}
}

func (r Rule) matches(method, requestPath string) bool {
	if r.Method != "" && !strings.EqualFold(r.Method, method) {
		return false
	}
	return matchPath(r.Pattern, requestPath)
}

// Policy is an ordered, read-only rule table. The first matching rule decides;
// a request matching no rule requires any authenticated identity.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules evaluated in the given order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: append([]Rule(nil), rules...)}
}

// DefaultPolicy returns the access rules of the quiz API.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Public("/api/auth/*"),
		Public("/swagger-ui/*"),
		Public("/v3/api-docs/*"),
		Public("/health"),
		Public("/ready"),
		Require(http.MethodPost, "/api/questions/create", userDomain.RoleAdmin),
		Require(http.MethodPut, "/api/questions/*", userDomain.RoleAdmin),
		Require(http.MethodDelete, "/api/questions/*", userDomain.RoleAdmin),
	)
}

// Rules returns a copy of the rule table.
func (p *Policy) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Evaluate decides whether identity may perform method on requestPath. A nil
// identity means the request is unauthenticated. It returns nil,
// ErrUnauthenticated or ErrForbidden.
func (p *Policy) Evaluate(method, requestPath string, identity *Identity) error {
	requestPath = cleanPath(requestPath)

	required := userDomain.RolePlayer
	for _, rule := range p.rules {
		if rule.matches(method, requestPath) {
			required = rule.MinimumRole
			break
		}
	}

	if required == "" {
		return nil
	}
	if identity == nil {
		return ErrUnauthenticated
	}
	if !identity.Role.AtLeast(required) {
		return ErrForbidden
	}
	return nil
}

// IsAllowed reports whether Evaluate grants access.
func (p *Policy) IsAllowed(method, requestPath string, identity *Identity) bool {
	return p.Evaluate(method, requestPath, identity) == nil
}

// cleanPath resolves dot segments so "/api/auth/../questions/create" cannot
// borrow a public prefix.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	cleaned := path.Clean("/" + p)
	if cleaned != "/" && strings.HasSuffix(p, "/") {
		cleaned += "/"
	}
	return cleaned
}

// matchPath checks if the request path matches the pattern.
//
//   - "*" matches any path
//   - "/api/auth/*" matches "/api/auth", "/api/auth/login" and "/api/auth/a/b" (greedy)
//   - "/api/game/*/finish" matches "/api/game/42/finish" but not "/api/game/finish"
//   - anything else must match exactly (case-sensitive)
func matchPath(pattern, requestPath string) bool {
	if pattern == "*" {
		return true
	}

	if !strings.Contains(pattern, "*") {
		return pattern == requestPath
	}

	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		if !strings.Contains(prefix, "*") {
			return requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/")
		}
	}

	patternParts := strings.Split(pattern, "/")
	requestParts := strings.Split(requestPath, "/")
	if len(patternParts) != len(requestParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] == "*" {
			continue
		}
		if patternParts[i] != requestParts[i] {
			return false
		}
	}

	return true
}
