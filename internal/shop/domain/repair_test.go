package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyStatusTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	tests := []struct {
		name         string
		stored       RepairStatus
		target       RepairStatus
		startBefore  *time.Time
		finishBefore *time.Time
		wantStart    *time.Time
		wantFinish   *time.Time
	}{
		{
			name:   "pending to pending keeps empty dates",
			stored: StatusPending, target: StatusPending,
		},
		{
			name:   "pending to in_progress stamps start",
			stored: StatusPending, target: StatusInProgress,
			wantStart: &now,
		},
		{
			name:   "pending to completed stamps finish only",
			stored: StatusPending, target: StatusCompleted,
			wantFinish: &now,
		},
		{
			name:   "in_progress to pending clears start",
			stored: StatusInProgress, target: StatusPending,
			startBefore: &earlier,
		},
		{
			name:   "in_progress to in_progress restamps start",
			stored: StatusInProgress, target: StatusInProgress,
			startBefore: &earlier,
			wantStart:   &now,
		},
		{
			name:   "in_progress to completed stamps finish and keeps start",
			stored: StatusInProgress, target: StatusCompleted,
			startBefore: &earlier,
			wantStart:   &earlier,
			wantFinish:  &now,
		},
		{
			name:   "completed to pending clears both dates",
			stored: StatusCompleted, target: StatusPending,
			startBefore: &earlier, finishBefore: &earlier,
		},
		{
			name:   "completed to in_progress reopens the ticket",
			stored: StatusCompleted, target: StatusInProgress,
			startBefore: &earlier, finishBefore: &earlier,
			wantStart: &now,
		},
		{
			name:   "completed to completed restamps finish",
			stored: StatusCompleted, target: StatusCompleted,
			startBefore: &earlier, finishBefore: &earlier,
			wantStart:  &earlier,
			wantFinish: &now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Repair{
				Status:       tt.stored,
				StartDate:    tt.startBefore,
				FinishedDate: tt.finishBefore,
			}
			r.ApplyStatus(tt.target, now)

			assert.Equal(t, tt.target, r.Status)
			assert.Equal(t, tt.wantStart, r.StartDate)
			assert.Equal(t, tt.wantFinish, r.FinishedDate)
		})
	}
}

func TestRepairStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, RepairStatus("done").Valid())
	assert.False(t, RepairStatus("").Valid())
}

func TestServiceTypeValid(t *testing.T) {
	assert.True(t, ServiceTypeSale.Valid())
	assert.True(t, ServiceTypeRepair.Valid())
	assert.False(t, ServiceType("rental").Valid())
}
