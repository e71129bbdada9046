package xmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nilObserver struct{}

func (nilObserver) Start(context.Context, Run) (context.Context, Span) { return nil, nil }

func TestStart(t *testing.T) {
	tests := []struct {
		name     string
		observer Observer
	}{
		{"nil observer", nil},
		{"noop", NoopObserver{}},
		{"returns nils", nilObserver{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, span := Start(nil, tt.observer, Run{Backend: "native"}) //nolint:staticcheck // nil ctx 兜底
			assert.NotNil(t, ctx)
			assert.NotNil(t, span)
			assert.NotPanics(t, func() { span.End(Result{}) })
		})
	}
}

func TestStart_KeepsContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	got, _ := Start(ctx, NoopObserver{}, Run{})
	assert.Equal(t, "v", got.Value(key{}))
}

func TestResult_Status(t *testing.T) {
	assert.Equal(t, StatusOK, Result{Acquisitions: 1}.Status())
	assert.Equal(t, StatusError, Result{Err: errors.New("x")}.Status())
}
