package api

import (
	"net/http"
	"net/url"
	"strings"
)

// endpoint declares one remote capability. Path is relative to the client's
// base URL; each {placeholder} segment is filled positionally and escaped.
type endpoint struct {
	operation string
	method    string
	path      string
}

var (
	epRegister          = endpoint{"register", http.MethodPost, "register"}
	epLogin             = endpoint{"login", http.MethodPost, "login"}
	epGetUser           = endpoint{"get_user", http.MethodGet, "users/{userId}"}
	epSubmitGoal        = endpoint{"submit_goal", http.MethodPost, "users/{userId}/goals"}
	epUpdateGoalStatus  = endpoint{"update_goal_status", http.MethodPut, "users/{userId}/goals/{goalId}/status"}
	epUpdateProfile     = endpoint{"update_profile", http.MethodPatch, "users/{userId}"}
	epUpdateDescription = endpoint{"update_description", http.MethodPatch, "users/{userId}/description"}
)

// expand substitutes args into the placeholders in order. Missing args leave
// the segment empty, which the server rejects as a bad route.
func (e endpoint) expand(args ...string) string {
	segments := strings.Split(e.path, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		value := ""
		if next < len(args) {
			value = args[next]
		}
		next++
		segments[i] = url.PathEscape(value)
	}
	return strings.Join(segments, "/")
}
