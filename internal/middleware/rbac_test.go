package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// roleRouter builds a router whose /ping route is gated by RequireRole and
// whose context carries the given user, simulating a validated session.
func roleRouter(user *model.User, min model.Role) *gin.Engine {
	r := gin.New()
	r.GET("/ping",
		func(c *gin.Context) {
			if user != nil {
				c.Set(ContextKeyUser, user)
			}
			c.Next()
		},
		RequireRole(min),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		},
	)
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name string
		user *model.User
		min  model.Role
		want int
	}{
		{"no session", nil, model.RoleViewer, http.StatusUnauthorized},
		{"viewer below editor", &model.User{Role: model.RoleViewer}, model.RoleEditor, http.StatusForbidden},
		{"viewer below admin", &model.User{Role: model.RoleViewer}, model.RoleAdmin, http.StatusForbidden},
		{"editor below admin", &model.User{Role: model.RoleEditor}, model.RoleAdmin, http.StatusForbidden},
		{"viewer at viewer", &model.User{Role: model.RoleViewer}, model.RoleViewer, http.StatusOK},
		{"editor at editor", &model.User{Role: model.RoleEditor}, model.RoleEditor, http.StatusOK},
		{"admin passes editor gate", &model.User{Role: model.RoleAdmin}, model.RoleEditor, http.StatusOK},
		{"admin at admin", &model.User{Role: model.RoleAdmin}, model.RoleAdmin, http.StatusOK},
		{"unknown role", &model.User{Role: model.Role("ghost")}, model.RoleViewer, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			roleRouter(c.user, c.min).ServeHTTP(w, req)

			if w.Code != c.want {
				t.Errorf("status = %d, want %d", w.Code, c.want)
			}
		})
	}
}

func TestGetCurrentUserMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if user := GetCurrentUser(c); user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
	if token := GetSessionToken(c); token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}
