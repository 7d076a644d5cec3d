package cronJobs

import (
	"time"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/metrics"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

// DefaultCartTTLDays is used when CART_TTL_DAYS is not set
const DefaultCartTTLDays = 30

// PurgeAbandonedCarts removes cart rows untouched for more than ttlDays days before now
func PurgeAbandonedCarts(now time.Time, ttlDays int) (int64, error) {
	cutoff := now.UTC().AddDate(0, 0, -ttlDays)
	purged, err := dbHelpers.PurgeAbandonedCarts(cutoff)
	if err != nil {
		return 0, err
	}
	metrics.CartsPurged.Add(float64(purged))
	return purged, nil
}

// Start schedules the maintenance jobs and returns the running scheduler
func Start(cartTTLDays int) (*cron.Cron, error) {
	logrus.Infof("initiating cron jobs")
	if cartTTLDays <= 0 {
		cartTTLDays = DefaultCartTTLDays
	}

	scheduler := cron.NewWithLocation(time.UTC)
	err := scheduler.AddFunc("@daily", func() {
		purged, err := PurgeAbandonedCarts(time.Now(), cartTTLDays)
		if err != nil {
			logrus.Errorf("PurgeAbandonedCarts: failed with error: %+v", err)
			return
		}
		logrus.Infof("PurgeAbandonedCarts: removed %d cart rows older than %d days", purged, cartTTLDays)
	})
	if err != nil {
		logrus.Errorf("cron job(purge abandoned carts) initiation failed %v", err)
		return nil, err
	}
	scheduler.Start()
	logrus.Infof("cron job initiation successful")
	return scheduler, nil
}
