package srv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	shutdowns int
	err       error
}

func (f *fakeService) Start(ctx context.Context) error { return nil }
func (f *fakeService) Shutdown(ctx context.Context) error {
	f.shutdowns++
	return f.err
}

func TestShutdownNowReturnsWithoutCancellation(t *testing.T) {
	a := &fakeService{}
	b := &fakeService{err: errors.New("close failed")}

	done := make(chan struct{})
	go func() {
		ShutdownNow(context.Background(), []Service{a, b})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ShutdownNow did not return on an uncancelled context")
	}

	assert.Equal(t, 1, a.shutdowns)
	assert.Equal(t, 1, b.shutdowns)
}

func TestShutdownServicesWaitsForCancellation(t *testing.T) {
	svc := &fakeService{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ShutdownServices(ctx, []Service{svc})
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("ShutdownServices returned before cancellation")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ShutdownServices did not return after cancellation")
	}
	assert.Equal(t, 1, svc.shutdowns)
}
