package tasks

import (
	"log"
	"time"

	"pasar/internal/repositories"
)

// AccountSweeper periodically deletes accounts whose deletion grace period
// has elapsed. It owns its ticker and exposes an explicit Start/Stop
// lifecycle; the store handle is injected, not ambient.
type AccountSweeper struct {
	userRepo repositories.UserRepository
	interval time.Duration
	done     chan struct{}
}

// NewAccountSweeper creates a sweeper that wakes every interval.
func NewAccountSweeper(userRepo repositories.UserRepository, interval time.Duration) *AccountSweeper {
	return &AccountSweeper{
		userRepo: userRepo,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the periodic sweep in a goroutine. It returns immediately.
func (s *AccountSweeper) Start() {
	log.Printf("Account sweeper starting, interval %s", s.interval)
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(time.Now())
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the sweep loop. It does not interrupt a sweep in progress.
func (s *AccountSweeper) Stop() {
	close(s.done)
	log.Println("Account sweeper stopped")
}

// Sweep deletes every account whose lockout window elapsed before now with a
// deletion request pending. Per-user failures are logged and do not abort the
// batch; there is no retry, the next tick picks up leftovers.
func (s *AccountSweeper) Sweep(now time.Time) {
	users, err := s.userRepo.FindDeletionDue(now)
	if err != nil {
		log.Printf("Account sweep failed to list users: %v", err)
		return
	}
	if len(users) == 0 {
		return
	}

	log.Printf("Account sweep found %d account(s) to delete", len(users))
	for _, user := range users {
		if err := s.userRepo.Delete(user.ID); err != nil {
			log.Printf("Error deleting user %s: %v", user.ID, err)
			continue
		}
		log.Printf("Deleted user %s", user.ID)
	}
}
