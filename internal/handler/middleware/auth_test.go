//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"newsletter-delivery/internal/domain/user"
	"newsletter-delivery/internal/handler/middleware"
	"newsletter-delivery/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	ownerID uuid.UUID
	role    user.Role
	err     error
}

func (v stubValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return v.ownerID, v.role, v.err
}

func newAuthRouter(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	r.POST("/admin/newsletters", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		validator stubValidator
		token     string
		wantCode  int
	}{
		{name: "operatorは通過", validator: stubValidator{ownerID: ownerID, role: user.RoleOperator}, token: "t", wantCode: http.StatusOK},
		{name: "adminは通過", validator: stubValidator{ownerID: ownerID, role: user.RoleAdmin}, token: "t", wantCode: http.StatusOK},
		{name: "viewerは403", validator: stubValidator{ownerID: ownerID, role: user.RoleViewer}, token: "t", wantCode: http.StatusForbidden},
		{name: "トークンなしは401", validator: stubValidator{}, token: "", wantCode: http.StatusUnauthorized},
		{name: "無効なトークンは401", validator: stubValidator{err: errors.New("bad token")}, token: "t", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, newAuthRouter(tt.validator), http.MethodPost, "/admin/newsletters", nil, tt.token)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, ownerID.String(), rec.Body.String())
			}
		})
	}
}
