package registrationservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/elaccess/internal/metrics"
)

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Session sweeper started", zap.Duration("ttl", s.cfg.SessionTTL))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, closing registration sessions")
			_ = s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep closes every session idle for longer than the session TTL and
// reports how many were closed.
func (s *Service) Sweep() int {
	deadline := s.now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	var idle []*entry
	for id, e := range s.sessions {
		if e.lastSeen.Before(deadline) || e.wizard.Closed() {
			idle = append(idle, e)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	_ = s.closeAll(idle)
	if len(idle) > 0 {
		metrics.SessionsSwept.Add(float64(len(idle)))
		zap.L().Info("idle registrations closed", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// Close shuts every session down and reports sessions whose processing did
// not finish in time.
func (s *Service) Close() error {
	s.mu.Lock()
	all := make([]*entry, 0, len(s.sessions))
	for id, e := range s.sessions {
		all = append(all, e)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	return s.closeAll(all)
}

// closeAll shuts the wizards down in parallel; each may be waiting on a
// completion hook that is queueing a receipt event.
func (s *Service) closeAll(entries []*entry) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.closeTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			return e.wizard.Shutdown(ctx)
		})
	}
	err := g.Wait()
	metrics.ActiveRegistrations.Sub(float64(len(entries)))
	if err != nil {
		zap.L().Error("registrations closed with errors", zap.Error(err))
	}
	return err
}
