package utils

import (
	"log"

	"coursegen/config"
	"coursegen/docs"

	"github.com/robfig/cron/v3"
)

// StartDocsSyncScheduler runs the vault-to-public mirror on the configured
// cron schedule. An empty schedule disables the scheduler.
func StartDocsSyncScheduler(service *docs.Service) *cron.Cron {
	schedule := config.AppConfig.DocsSyncCron
	if schedule == "" {
		log.Println("[DOCS-SCHEDULER] DOCS_SYNC_CRON not set, scheduler disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Println("[DOCS-SCHEDULER] Running scheduled content sync...")
		results, err := service.SyncAll()
		if err != nil {
			log.Printf("[DOCS-SCHEDULER] Sync failed: %v", err)
			return
		}
		for _, r := range results {
			log.Printf("[DOCS-SCHEDULER] %s: %d synced, %d errors", r.Section, len(r.Synced), len(r.Errors))
		}
	})
	if err != nil {
		log.Printf("[DOCS-SCHEDULER] Invalid DOCS_SYNC_CRON %q: %v", schedule, err)
		return nil
	}

	c.Start()
	log.Printf("[DOCS-SCHEDULER] Content sync scheduler started (%s)", schedule)
	return c
}
