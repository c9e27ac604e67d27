package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abdessamed08/boutique-api/models"
)

// unreachableDB builds a handle whose every query fails at dial time, so the
// infrastructure failure paths can be exercised without a server.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "host=127.0.0.1 port=1 user=nobody dbname=nowhere sslmode=disable connect_timeout=1"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

// A failed catalog lookup must surface as an error, not as staleness: the
// stored cart keeps all its entries so a database outage never erases it.
func TestSummarizeLookupFailureKeepsCart(t *testing.T) {
	db := unreachableDB(t)
	cart := models.Cart{"7": 2, "9": 1}

	summary, kept, err := summarize(db, cart)
	require.Error(t, err)
	require.Empty(t, summary.Stale)
	require.Equal(t, models.Cart{"7": 2, "9": 1}, kept)
}

func TestLookupProductsEmptyIDsSkipsQuery(t *testing.T) {
	db := unreachableDB(t)

	byID, err := lookupProducts(db, nil)
	require.NoError(t, err)
	require.Empty(t, byID)
}
