package service

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// RefreshService reloads the reference-data snapshot on a schedule.
// Each run publishes a fresh immutable dataset; in-flight reads keep the
// snapshot they started with.
type RefreshService struct {
	cron      *cron.Cron
	snapshots *SnapshotService
}

// NewRefreshService creates a RefreshService that reloads the snapshot
// per the given cron spec (e.g. "@hourly").
func NewRefreshService(snapshots *SnapshotService, cronSpec string) (*RefreshService, error) {
	s := &RefreshService{
		cron:      cron.New(),
		snapshots: snapshots,
	}

	if _, err := s.cron.AddFunc(cronSpec, s.refresh); err != nil {
		return nil, fmt.Errorf("failed to register refresh job %q: %w", cronSpec, err)
	}

	return s, nil
}

// Start begins the refresh schedule.
func (s *RefreshService) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running refresh to finish.
func (s *RefreshService) Stop() {
	<-s.cron.Stop().Done()
}

func (s *RefreshService) refresh() {
	if err := s.snapshots.Load(context.Background()); err != nil {
		log.Printf("snapshot refresh failed: %v", err)
		return
	}
	log.Printf("snapshot refreshed")
}
