package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studyplanner/database"
	"studyplanner/repository"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PLAN-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processDuePlans flips pending plans whose start date has arrived to
// in_progress. Completion stays a user action.
func processDuePlans() {
	plans := repository.NewStudyPlanRepository(database.Database.Db)

	changed, err := plans.StartDue(time.Now())
	if err != nil {
		logScheduler("Error starting due plans: " + err.Error())
		return
	}
	if changed > 0 {
		logScheduler(fmt.Sprintf("Moved %d plan(s) to in_progress", changed))
	}
}

// StartPlanScheduler runs the due-plan pass hourly, with one pass at boot
// so restarts do not delay overdue transitions.
func StartPlanScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", processDuePlans); err != nil {
		log.Fatalf("Failed to schedule plan status job: %v", err)
	}

	go processDuePlans()

	c.Start()
	logScheduler("Plan status scheduler started")
	return c
}
