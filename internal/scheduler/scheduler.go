package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/lingtangg/weather-summary/internal/weather"
)

// Reloader loads a source and stores the result under name.
type Reloader interface {
	LoadAndStore(ctx context.Context, name, source string) (weather.StoredDataset, error)
}

// Scheduler periodically reloads the configured sources.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Reloader
	sources   []weather.Source
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(sources []weather.Source, interval time.Duration, service Reloader) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		sources:   sources,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the reload job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.sources) == 0 {
		log.Println("scheduler: no sources configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		s.ReloadAll()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// ReloadAll loads every source concurrently and returns how many succeeded.
func (s *Scheduler) ReloadAll() int {
	log.Println("scheduler: running reload job")

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for _, src := range s.sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			defer cancel()

			if _, err := s.service.LoadAndStore(ctx, src.Name, src.Location); err != nil {
				log.Printf("scheduler: reload failed for %s: %v", src.Name, err)
				return
			}
			mu.Lock()
			ok++
			mu.Unlock()
		}()
	}
	wg.Wait()
	log.Printf("scheduler: completed reload job (%d/%d sources)", ok, len(s.sources))
	return ok
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
