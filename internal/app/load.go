package app

import (
	"context"
	"log"
	"sync"

	"github.com/rkeller/stride/internal/plan"
	"github.com/rkeller/stride/internal/trainer"
)

// Preload fetches the workout list and race countdown concurrently and
// fills the store with whatever arrived. Either fetch may fail without
// blocking startup; the store just stays partially empty.
func Preload(ctx context.Context, store *plan.Store, client trainer.PlanAPI) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		workouts, err := client.ListWorkouts(ctx, store.PlanID(), 0)
		if err != nil {
			log.Printf("initial workout load failed: %v", err)
			return
		}
		store.ReplaceWorkouts(workouts)
	}()

	go func() {
		defer wg.Done()
		countdown, err := client.FetchCountdown(ctx, store.PlanID())
		if err != nil {
			log.Printf("initial countdown load failed: %v", err)
			return
		}
		store.SetCountdown(countdown)
	}()

	wg.Wait()
}
