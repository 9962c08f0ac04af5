package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetPutRemove(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Put(1, &Session{Mode: ModeBooking})
	sess, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, ModeBooking, sess.Mode)

	store.Remove(1)
	_, ok = store.Get(1)
	assert.False(t, ok)

	// Removing an absent session is a no-op.
	store.Remove(42)
}

func TestMemoryStoreAcquireSerializesSameUser(t *testing.T) {
	store := NewMemoryStore()

	release := store.Acquire(1)
	entered := make(chan struct{})
	go func() {
		r := store.Acquire(1)
		close(entered)
		r()
	}()

	select {
	case <-entered:
		t.Fatal("second acquire for the same user must block")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("second acquire did not proceed after release")
	}
}

func TestMemoryStoreAcquireIndependentUsers(t *testing.T) {
	store := NewMemoryStore()

	release1 := store.Acquire(1)
	defer release1()

	done := make(chan struct{})
	go func() {
		release2 := store.Acquire(2)
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different users must not block each other")
	}
}
