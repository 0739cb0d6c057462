package scheduler

import (
	"database/sql"
	"log"
	"os"
	"time"

	"hollmovies-web-be/internal/catalog"
	"hollmovies-web-be/internal/db"
	"hollmovies-web-be/internal/email"
	"hollmovies-web-be/internal/models"

	"github.com/robfig/cron/v3"
)

const digestSize = 5

type DigestScheduler struct {
	cron *cron.Cron
}

func NewScheduler() *DigestScheduler {
	return &DigestScheduler{
		cron: cron.New(),
	}
}

func (s *DigestScheduler) Start() {
	freq := os.Getenv("SCHEDULER_FREQUENCY")
	if freq == "" {
		freq = "@weekly"
	}

	_, err := s.cron.AddFunc(freq, func() {
		log.Printf("[Scheduler] Starting VIP digest task (Schedule: %s)...", freq)
		RunDigestTask()
	})
	if err != nil {
		log.Fatalf("Error scheduling digest: %v", err)
	}

	s.cron.Start()
	log.Printf("Scheduler started. Digest running with frequency: %s", freq)
}

func (s *DigestScheduler) Stop() {
	s.cron.Stop()
}

// RunDigestTask mails every VIP member the current top-rated picks. Members
// who already got a digest within the last six days are skipped, so a
// restart does not double-send mid-week.
func RunDigestTask() {
	type recipient struct {
		Email    string
		Name     string
		LastSent sql.NullTime
	}

	var recipients []recipient
	rows, err := db.DB.Query(
		`SELECT email, name, digest_sent_at FROM users WHERE role = ?`,
		models.RoleVIP,
	)
	if err != nil {
		log.Printf("[Scheduler] Error fetching VIP members: %v", err)
		return
	}
	for rows.Next() {
		var r recipient
		if err := rows.Scan(&r.Email, &r.Name, &r.LastSent); err != nil {
			log.Printf("[Scheduler] Error scanning row: %v", err)
			continue
		}
		recipients = append(recipients, r)
	}
	rows.Close()

	if len(recipients) == 0 {
		log.Printf("[Scheduler] No VIP members to mail")
		return
	}

	picks := catalog.TopRated(catalog.Movies, digestSize)

	for _, r := range recipients {
		if r.LastSent.Valid && time.Since(r.LastSent.Time) < 6*24*time.Hour {
			continue
		}

		log.Printf("[Scheduler] Sending digest to %s", r.Email)
		if err := email.SendDigest(r.Email, r.Name, picks); err != nil {
			log.Printf("[Scheduler] Failed to send digest to %s: %v", r.Email, err)
			continue
		}

		if _, err := db.DB.Exec("UPDATE users SET digest_sent_at = ? WHERE email = ?", time.Now(), r.Email); err != nil {
			log.Printf("[Scheduler] Failed to update digest_sent_at for %s: %v", r.Email, err)
		}
	}
}
