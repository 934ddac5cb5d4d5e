package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("v"), time.Minute))

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	_, ok, err = m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_Overwrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("new"), time.Minute))

	got, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "short", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := m.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ExpiredCleanupKeepsConcurrentWrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// A Get on an expired key must not delete a fresh value written while the
	// cleanup is in flight.
	for i := 0; i < 200; i++ {
		require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("stale"), time.Nanosecond))

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _, _ = m.Get(ctx, "k")
		}()
		require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("fresh"), 0))
		<-done

		got, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok, "fresh value lost on iteration %d", i)
		require.Equal(t, []byte("fresh"), got)
	}
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "forever", []byte("v"), 0))
	time.Sleep(2 * time.Millisecond)

	_, ok, err := m.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("abc"), time.Minute))
	got, _, _ := m.Get(ctx, "k")
	got[0] = 'x'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SetWithExpiry(ctx, "k", []byte("v"), time.Minute))

	existed, err := m.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = m.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestMemory_PushRecent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.PushRecent(ctx, "list", "a", 10))
	require.NoError(t, m.PushRecent(ctx, "list", "b", 10))
	require.NoError(t, m.PushRecent(ctx, "list", "c", 10))

	ids, err := m.ListRecent(ctx, "list", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestMemory_PushRecent_DeduplicatesAndMovesToFront(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "a"} {
		require.NoError(t, m.PushRecent(ctx, "list", id, 10))
	}

	ids, err := m.ListRecent(ctx, "list", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestMemory_PushRecent_TrimsToMaxLen(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.PushRecent(ctx, "list", id, 3))
	}

	ids, err := m.ListRecent(ctx, "list", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, ids)
}

func TestMemory_ListRecent_Limit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, m.PushRecent(ctx, "list", id, 10))
	}

	ids, err := m.ListRecent(ctx, "list", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids)

	ids, err = m.ListRecent(ctx, "empty", 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemory_Ping(t *testing.T) {
	assert.NoError(t, NewMemory().Ping(context.Background()))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "hiremind:abc:workflow_state", SessionKey("abc", RecordWorkflowState))
	assert.Equal(t, "hiremind:abc:conversation", SessionKey("abc", RecordConversation))
	assert.Equal(t, "hiremind:abc:hiring_profile", SessionKey("abc", RecordProfile))
}

func TestOtherKeys(t *testing.T) {
	assert.Equal(t, "hiremind:profiles", ProfilesListKey())
	assert.Equal(t, "hiremind:user:a@b.com", UserKey("a@b.com"))
	assert.Equal(t, "hiremind:user_id:123", UserIDKey("123"))
}
