package audit_test

import (
	"context"
	"testing"
	"time"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	at := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should build entry", func(t *testing.T) {
		actor := kernel.NewUUID()
		recordID := kernel.NewUUID()

		e, err := audit.NewEntry(audit.Change{
			Actor:    &actor,
			Action:   audit.ActionMarkSpecial,
			Table:    audit.TablePersonas,
			RecordID: recordID,
			Before:   map[string]any{"es_especial": false},
			After:    map[string]any{"es_especial": true},
			Reason:   "  madre soltera  ",
		}, audit.Origin{IPAddress: "10.0.0.1"}, at)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, audit.ActionMarkSpecial, e.Action())
		assert.True(t, recordID.IsEqual(e.RecordID()))
		assert.Equal(t, "madre soltera", e.Reason())
		assert.Equal(t, "10.0.0.1", e.Origin().IPAddress)
		assert.Equal(t, at, e.At())
	})

	t.Run("should require action, table and record", func(t *testing.T) {
		_, err := audit.NewEntry(audit.Change{}, audit.Origin{}, at)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrigin(t *testing.T) {
	t.Run("should round trip through context", func(t *testing.T) {
		ctx := audit.WithOrigin(context.Background(), audit.Origin{IPAddress: "127.0.0.1", UserAgent: "curl"})

		assert.Equal(t, "curl", audit.OriginFrom(ctx).UserAgent)
	})

	t.Run("should be empty without origin", func(t *testing.T) {
		assert.Equal(t, audit.Origin{}, audit.OriginFrom(context.Background()))
	})
}
