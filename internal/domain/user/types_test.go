//go:build unit

package user_test

import (
	"testing"

	"newsletter-delivery/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "viewer OK", input: "viewer", want: user.RoleViewer},
		{name: "operator OK", input: "operator", want: user.RoleOperator},
		{name: "admin OK", input: "admin", want: user.RoleAdmin},
		{name: "空文字NG", input: "", errIs: user.ErrInvalidRole},
		{name: "大文字NG", input: "Admin", errIs: user.ErrInvalidRole},
		{name: "未知のロールNG", input: "owner", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
