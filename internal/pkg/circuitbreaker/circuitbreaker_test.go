package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }

func succeeding() error { return nil }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := New(Config{Name: "storage", MaxFailures: 3, Timeout: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, succeeding), ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(Config{Name: "storage", MaxFailures: 2})
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	require.NoError(t, cb.Execute(ctx, succeeding))
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.Failures())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(Config{Name: "storage", MaxFailures: 1, Timeout: 10 * time.Millisecond})
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	t.Run("probe success closes the circuit", func(t *testing.T) {
		require.NoError(t, cb.Execute(ctx, succeeding))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("probe failure reopens the circuit", func(t *testing.T) {
		_ = cb.Execute(ctx, failing)
		time.Sleep(20 * time.Millisecond)

		assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	errMissing := errors.New("missing")
	cb := New(Config{
		Name:        "storage",
		MaxFailures: 1,
		IsFailure:   func(err error) bool { return !errors.Is(err, errMissing) },
	})

	err := cb.Execute(context.Background(), func() error { return errMissing })

	assert.ErrorIs(t, err, errMissing)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 0, cb.Failures())
}

func TestDo(t *testing.T) {
	cb := New(DefaultConfig("storage"))

	t.Run("returns result", func(t *testing.T) {
		n, err := Do(cb, context.Background(), func() (int, error) { return 42, nil })

		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("cancelled context skips the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false

		_, err := Do(cb, ctx, func() (int, error) {
			called = true
			return 0, nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	changes := make(chan State, 2)
	cb := New(Config{
		Name:        "storage",
		MaxFailures: 1,
		OnStateChange: func(name string, from, to State) {
			assert.Equal(t, "storage", name)
			changes <- to
		},
	})

	_ = cb.Execute(context.Background(), failing)

	select {
	case to := <-changes:
		assert.Equal(t, StateOpen, to)
	case <-time.After(time.Second):
		t.Fatal("state change not reported")
	}

	cb.Reset()
	assert.Equal(t, StateClosed, cb.State())
}
