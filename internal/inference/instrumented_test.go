package inference_test

import (
	"context"
	"errors"
	"testing"

	"docvision/internal/inference"
	"docvision/internal/inference/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInstrumented(t *testing.T) {
	reg := prometheus.NewRegistry()
	next := new(mocks.MockBackend)
	b, err := inference.NewInstrumented(next, reg, zap.NewNop())
	require.NoError(t, err)

	ok := inference.Request{Operation: "extract", Parts: []inference.Part{inference.TextPart("x")}}
	next.On("Generate", mock.Anything, ok).Return(`{"a":1}`, nil).Once()
	next.On("Generate", mock.Anything, ok).Return("  ", nil).Once()
	next.On("Generate", mock.Anything, ok).Return("", errors.New("boom")).Once()

	text, err := b.Generate(context.Background(), ok)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)

	_, err = b.Generate(context.Background(), ok)
	require.NoError(t, err)

	_, err = b.Generate(context.Background(), ok)
	assert.EqualError(t, err, "boom")

	count, err := testutil.GatherAndCount(reg, "inference_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(reg, "inference_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	next.AssertExpectations(t)
}

func TestInstrumentedDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := inference.NewInstrumented(new(mocks.MockBackend), reg, zap.NewNop())
	require.NoError(t, err)

	_, err = inference.NewInstrumented(new(mocks.MockBackend), reg, zap.NewNop())
	assert.Error(t, err)
}
