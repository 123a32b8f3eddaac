package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStep(t *testing.T) {
	cases := []struct {
		name      string
		fn        func(context.Context) ([]string, error)
		wantValue []string
		wantErrIs error
	}{
		{
			name:      "success",
			fn:        func(context.Context) ([]string, error) { return []string{"a"}, nil },
			wantValue: []string{"a"},
		},
		{
			name:      "error_discards_partial_value",
			fn:        func(context.Context) ([]string, error) { return []string{"partial"}, errors.New("boom") },
			wantValue: nil,
		},
		{
			name:      "panic_becomes_failure",
			fn:        func(context.Context) ([]string, error) { panic("unexpected") },
			wantValue: nil,
			wantErrIs: errStepPanicked,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := runStep(testContext(), nil, "test", "user-1", tc.fn)

			assert.Equal(t, tc.wantValue, outcome.Value)
			if tc.wantValue != nil {
				assert.True(t, outcome.OK())
				return
			}
			assert.False(t, outcome.OK())
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, outcome.Err, tc.wantErrIs)
			}
		})
	}
}
