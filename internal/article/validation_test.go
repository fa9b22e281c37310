package article

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		content string
		ok      bool
	}{
		{"valid", "Hi", "Body", true},
		{"multibyte title", "日本", "Body", true},
		{"missing title", "", "Body", false},
		{"short title", "a", "Body", false},
		{"missing content", "Hello", "", false},
		{"both missing", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.title, tc.content)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.NotEmpty(t, verr.Reason)
		})
	}
}
