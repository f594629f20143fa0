package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

const (
	reminderLock    = "medication_reminder_job"
	reminderLockTTL = 10 * time.Minute
)

// reminderFrequencies are the schedules the daily sweep looks at
var reminderFrequencies = []models.Frequency{models.FrequencyDaily, models.FrequencyWeekly}

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron       *cron.Cron
	MedDB      databases.MedicationDatabase
	NDB        databases.NotificationDatabase
	LockDB     databases.SchedulerLockDatabase
	schedule   string
	location   *time.Location
	instanceID string
	now        func() time.Time
}

// NewScheduler creates a new scheduler instance running in the configured time zone
func NewScheduler(
	conf *config.Config,
	medDB databases.MedicationDatabase,
	nDB databases.NotificationDatabase,
	lockDB databases.SchedulerLockDatabase,
) *Scheduler {
	loc := conf.Location()
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		MedDB:      medDB,
		NDB:        nDB,
		LockDB:     lockDB,
		schedule:   conf.ReminderSchedule,
		location:   loc,
		instanceID: conf.InstanceID,
		now:        time.Now,
	}
}

// Start registers the jobs and begins the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sendDailyReminders); err != nil {
		return fmt.Errorf("failed to register reminder job %q: %w", s.schedule, err)
	}

	s.cron.Start()
	zap.S().Infow("reminder scheduler started",
		"schedule", s.schedule,
		"timezone", s.location.String(),
		"instance", s.instanceID)
	return nil
}

// Stop waits for running jobs and stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("reminder scheduler stopped")
}

// sendDailyReminders runs the sweep on whichever instance wins the lock
func (s *Scheduler) sendDailyReminders() {
	ctx, cancel := api.WithSweepTimeout()
	defer cancel()

	acquired, err := s.LockDB.TryAcquireLock(ctx, reminderLock, s.instanceID, reminderLockTTL)
	if err != nil {
		zap.S().Errorw("failed to acquire lock for reminder job", "error", err)
		return
	}
	if !acquired {
		zap.S().Debug("reminder job already running on another instance, skipping")
		return
	}
	defer func() {
		if err := s.LockDB.ReleaseLock(ctx, reminderLock, s.instanceID); err != nil {
			zap.S().Warnw("failed to release reminder lock", "error", err)
		}
	}()

	if _, err := s.RunReminderSweep(ctx, s.now()); err != nil {
		zap.S().Errorw("reminder sweep failed", "error", err)
	}
}

// RunReminderSweep creates today's medication reminders and returns how many were stored.
// The date is taken from now in the scheduler's time zone.
func (s *Scheduler) RunReminderSweep(ctx context.Context, now time.Time) (int, error) {
	zap.S().Infow("Running reminder sweep", "instance", s.instanceID)
	today := rules.ReminderDate(now, s.location)

	meds, err := s.MedDB.FindByFrequency(ctx, reminderFrequencies)
	if err != nil {
		return 0, fmt.Errorf("failed to find medications: %w", err)
	}

	var notifications []models.Notification
	for _, med := range meds {
		notifications = append(notifications, rules.MapMedicationNotifications(med.ID.Hex(), med, today)...)
	}

	if len(notifications) == 0 {
		zap.S().Info("No reminders generated today.")
		return 0, nil
	}

	created, err := s.NDB.InsertMany(ctx, notifications)
	if err != nil {
		return 0, fmt.Errorf("failed to store reminders: %w", err)
	}
	zap.S().Infow(fmt.Sprintf("Created %d reminders.", created),
		"medications", len(meds),
		"date", today)
	return created, nil
}
