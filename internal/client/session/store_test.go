package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/greenpath/internal/client/profile"
	"github.com/dmitrijs2005/greenpath/internal/client/repositories/kv"
	"github.com/dmitrijs2005/greenpath/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_CorruptCurrentUserYieldsEmptyReadySession(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, profile.KeyCurrentUser, []byte("{not json")))

	c := New(profile.NewStore(mem, logging.Discard(), nil), logging.Discard())
	c.Init(ctx)

	assert.True(t, c.Ready())
	select {
	case <-c.Done():
	default:
		t.Fatal("Done should be closed after Init")
	}
	u, ok := c.User()
	assert.False(t, ok)
	assert.Nil(t, u)
}
