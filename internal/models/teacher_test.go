package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSlotHours(t *testing.T) {
	tests := []struct {
		name string
		slot ScheduleSlot
		want float64
	}{
		{name: "whole hours", slot: ScheduleSlot{StartTime: "09:00", EndTime: "12:00"}, want: 3},
		{name: "half hour", slot: ScheduleSlot{StartTime: "10:00", EndTime: "11:30"}, want: 1.5},
		{name: "zero length", slot: ScheduleSlot{StartTime: "10:00", EndTime: "10:00"}, want: 0},
		{name: "end before start", slot: ScheduleSlot{StartTime: "14:00", EndTime: "09:00"}, want: 0},
		{name: "malformed start", slot: ScheduleSlot{StartTime: "morning", EndTime: "12:00"}, want: 0},
		{name: "out of range minutes", slot: ScheduleSlot{StartTime: "09:75", EndTime: "12:00"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.slot.Hours(), 0.001)
		})
	}
}

func TestTeacherWeeklyAvailableHours(t *testing.T) {
	teacher := Teacher{
		Schedule: []ScheduleSlot{
			{StartTime: "09:00", EndTime: "12:00", Available: true},
			{StartTime: "10:00", EndTime: "14:00", Available: true},
			{StartTime: "14:00", EndTime: "16:00", Available: false},
		},
	}
	assert.InDelta(t, 7.0, teacher.WeeklyAvailableHours(), 0.001)

	assert.Zero(t, Teacher{}.WeeklyAvailableHours())
}

func TestTeacherAverageRate(t *testing.T) {
	teacher := Teacher{
		Qualifications: []Qualification{
			{Rate: 45},
			{Rate: 50},
			{Rate: 25},
		},
	}
	assert.InDelta(t, 40.0, teacher.AverageRate(), 0.001)

	assert.Zero(t, Teacher{}.AverageRate())
}
