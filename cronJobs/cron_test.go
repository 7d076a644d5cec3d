package cronJobs

import (
	"testing"
	"time"

	"github.com/RemoteState/petstash-server/database/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeAbandonedCarts(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 1, "alice")
	testdb.SeedProduct(t, db, 1, "Leash", "12.00", 0, true, 5)
	testdb.SeedProduct(t, db, 2, "Bowl", "6.25", 0, true, 5)

	_, err := db.Exec(`INSERT INTO cart(user_id, product_id, quantity, updated_at) VALUES
		(1, 1, 1, '2024-01-01 08:00:00'),
		(1, 2, 1, '2024-03-10 08:00:00')`)
	require.NoError(t, err)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	purged, err := PurgeAbandonedCarts(now, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	var remaining []int
	require.NoError(t, db.Select(&remaining, `SELECT product_id FROM cart`))
	assert.Equal(t, []int{2}, remaining)
}
