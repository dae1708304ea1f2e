package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkeller/stride/internal/plan"
	"github.com/rkeller/stride/internal/trainer"
)

// reloadCmd fetches workouts and countdown concurrently and replaces the
// store contents when both arrive.
func (m Model) reloadCmd() tea.Cmd {
	return tea.Batch(m.fetchWorkoutsCmd(), m.fetchCountdownCmd())
}

func (m Model) fetchWorkoutsCmd() tea.Cmd {
	ctx := m.ctx
	client := m.client
	planID := m.store.PlanID()
	return func() tea.Msg {
		workouts, err := client.ListWorkouts(ctx, planID, 0)
		return workoutsMsg{workouts: workouts, err: err}
	}
}

func (m Model) fetchCountdownCmd() tea.Cmd {
	ctx := m.ctx
	client := m.client
	planID := m.store.PlanID()
	return func() tea.Msg {
		countdown, err := client.FetchCountdown(ctx, planID)
		return countdownMsg{countdown: countdown, err: err}
	}
}

// saveCmd persists a committed edit. The store already holds the
// optimistic value; this only reports success or failure.
func (m Model) saveCmd(update plan.Update) tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		var err error
		if update.Note {
			_, err = client.UpsertNote(ctx, update.WorkoutID, update.NotePatch())
		} else {
			_, err = client.UpdateWorkout(ctx, update.WorkoutID, update.WorkoutPatch())
		}
		return savedMsg{workoutID: update.WorkoutID, err: err}
	}
}

// syncStatusCmd checks the provider connection. Errors report as
// disconnected rather than surfacing.
func (m Model) syncStatusCmd() tea.Cmd {
	ctx := m.ctx
	client := m.client
	return func() tea.Msg {
		status, err := client.FetchSyncStatus(ctx)
		if err != nil || status == nil {
			return syncStatusMsg{connected: false}
		}
		return syncStatusMsg{connected: status.Connected()}
	}
}

func (m Model) triggerSyncCmd() tea.Cmd {
	ctx := m.ctx
	client := m.client
	planID := m.store.PlanID()
	return func() tea.Msg {
		result, err := client.TriggerSync(ctx, trainer.SyncQuery{PlanID: planID})
		if err != nil {
			return syncDoneMsg{err: err}
		}
		return syncDoneMsg{synced: result.ActivitiesSynced}
	}
}

func syncedMessage(n int) string {
	return fmt.Sprintf("%d synced", n)
}
