//go:build unit

package idempotency_test

import (
	"strings"
	"testing"

	"newsletter-delivery/internal/domain/idempotency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "uuid形式OK", raw: "2f1c9b0e-4a8e-4c4b-9d53-7e2f0d0f9a11"},
		{name: "英数字OK", raw: "abc123"},
		{name: "記号 . _ ~ : - OK", raw: "a.b_c~d:e-f"},
		{name: "50文字ちょうどOK", raw: strings.Repeat("k", 50)},
		{name: "空文字NG", raw: "", errIs: idempotency.ErrEmptyKey},
		{name: "51文字NG", raw: strings.Repeat("k", 51), errIs: idempotency.ErrKeyTooLong},
		{name: "空白を含むNG", raw: "abc 123", errIs: idempotency.ErrInvalidKeyChars},
		{name: "改行を含むNG", raw: "abc\n123", errIs: idempotency.ErrInvalidKeyChars},
		{name: "引用符NG", raw: `abc"123`, errIs: idempotency.ErrInvalidKeyChars},
		{name: "非ASCII NG", raw: "キー", errIs: idempotency.ErrInvalidKeyChars},
		{name: "スラッシュNG", raw: "a/b", errIs: idempotency.ErrInvalidKeyChars},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := idempotency.NewKey(tc.raw)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, key.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, key.String())
		})
	}
}
