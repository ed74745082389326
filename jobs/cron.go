package jobs

import (
	"github.com/robfig/cron/v3"

	"tourbooking/services/logger"
)

// Sweeper evicts expired entries from an in-process TTL cache
type Sweeper interface {
	Sweep() int
}

// InitCronJobs schedules the TTL sweeps and starts c. Nil sweepers are skipped.
func InitCronJobs(c *cron.Cron, log logger.Logger, sweepers map[string]Sweeper) error {
	if log == nil {
		log = logger.Nop{}
	}
	for name, s := range sweepers {
		if s == nil {
			continue
		}
		name, s := name, s
		if _, err := c.AddFunc("@every 1m", func() {
			if n := s.Sweep(); n > 0 {
				log.Debug("swept %d expired %s entries", n, name)
			}
		}); err != nil {
			return err
		}
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}
