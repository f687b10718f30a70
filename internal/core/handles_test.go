package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/brettbedarf/fsgraph/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHandleRegistry_ReleaseOnce(t *testing.T) {
	t.Parallel()

	dir := &mocks.MockDirHandle{}
	dir.On("Close").Return(nil).Once()

	r := newHandleRegistry()
	h := r.track("/tmp/x", dir)
	assert.Equal(t, 1, r.Len())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.release()
		}()
	}
	wg.Wait()

	assert.Zero(t, r.Len())
	dir.AssertNumberOfCalls(t, "Close", 1)
}

func TestHandleRegistry_CloseErrorStillReleases(t *testing.T) {
	t.Parallel()

	dir := &mocks.MockDirHandle{}
	dir.On("Close").Return(errors.New("bad file descriptor"))

	r := newHandleRegistry()
	r.track("/tmp/x", dir).release()

	assert.Zero(t, r.Len())
}

func TestHandleRegistry_DistinctIDs(t *testing.T) {
	t.Parallel()

	dir := &mocks.MockDirHandle{}
	r := newHandleRegistry()

	a := r.track("/tmp/same", dir)
	b := r.track("/tmp/same", dir)

	assert.NotEqual(t, a.id, b.id)
	assert.Equal(t, 2, r.Len())
}
