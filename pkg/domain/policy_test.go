package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrailingTextPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    TrailingTextPolicy
		wantErr bool
	}{
		{in: "", want: TrailingTextFlush},
		{in: "flush", want: TrailingTextFlush},
		{in: "drop", want: TrailingTextDrop},
		{in: "Drop", wantErr: true},
		{in: "keep", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrailingTextPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{
		OnParseStart: func(context.Context, *ParseEvent) { calls = append(calls, "a-start") },
	}
	b := LifecycleHooks{
		OnParseStart: func(context.Context, *ParseEvent) { calls = append(calls, "b-start") },
		OnParseDone:  func(context.Context, *ParseEvent) { calls = append(calls, "b-done") },
	}

	merged := a.Merge(b)
	merged.OnParseStart(context.Background(), &ParseEvent{})
	merged.OnParseDone(context.Background(), &ParseEvent{})

	assert.Equal(t, []string{"a-start", "b-start", "b-done"}, calls)
	assert.Nil(t, LifecycleHooks{}.Merge(LifecycleHooks{}).OnParseDone)
}
