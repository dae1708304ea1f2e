// Package trainer provides an HTTP client for the training backend API.
//
// # Overview
//
// This package defines the API client stride uses to read and mutate the
// training plan. It handles HTTP communication, JSON serialization, and
// type-safe representation of workouts, actual runs, notes, and countdown
// stats.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the backend API schema
//
// # Client Usage
//
// Create a client using the API base URL from configuration:
//
//	client, err := trainer.NewClient("http://127.0.0.1:8000/api")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	workouts, err := client.ListWorkouts(ctx, planID, 0)
//	if err != nil {
//		log.Printf("workout fetch failed: %v", err)
//	}
//
// # API Endpoints
//
//   - GET /workouts/: all workouts of a plan (optionally one week)
//   - PATCH /workouts/{id}: partial update of plan fields
//   - PUT /notes/workout/{workoutId}: create-or-update a workout note
//   - GET /stats/countdown: race countdown for a plan
//   - GET /sync/garmin/status: sync provider connection check
//   - POST /sync/garmin/activities: trigger a provider sync
//
// The base URL's path component (typically /api) is preserved as a prefix
// for every request, so a reverse-proxied deployment works unchanged.
//
// # Partial Updates
//
// WorkoutPatch and NotePatch are maps rather than structs: a partial update
// must carry only the edited key, and that key's value may be an explicit
// JSON null (clearing a field). Pointer-struct encoding cannot distinguish
// "absent" from "null", so the patch types stay schemaless maps keyed by
// the wire field names.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept (and Content-Type when a body is sent) to application/json
//   - Include User-Agent: stride/0.1
//   - Have a 5-second timeout
//   - Return wrapped errors with context about what failed
//
// # Network Assumptions
//
// The backend is on localhost or a trusted local network, unauthenticated,
// single-operator. These assumptions match stride's design as a personal
// training dashboard.
package trainer
