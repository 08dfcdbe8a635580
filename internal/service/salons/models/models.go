package models

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// ScheduleResponse публичное расписание салона
type ScheduleResponse struct {
	Salon           string        `json:"salon"`
	Name            string        `json:"name"`
	Timezone        string        `json:"timezone"`
	SlotStepMinutes int           `json:"slotStepMinutes"`
	Days            []DaySchedule `json:"days"`
}

// DaySchedule часы работы салона в день недели
type DaySchedule struct {
	Day       string `json:"day"`       // "monday"
	DayNumber int    `json:"dayNumber"` // 0 = понедельник
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`  // "09:00"
	CloseTime string `json:"closeTime,omitempty"` // "18:00"
}

// FromDomainSalon строит расписание на неделю с понедельника
func FromDomainSalon(salon *domain.Salon) *ScheduleResponse {
	if salon == nil {
		return nil
	}

	resp := &ScheduleResponse{
		Salon:           salon.Slug,
		Name:            salon.Name,
		Timezone:        salon.Loc().String(),
		SlotStepMinutes: salon.SlotStepMinutes,
		Days:            make([]DaySchedule, 0, 7),
	}

	for _, day := range domain.AllDays() {
		schedule := DaySchedule{
			Day:       day.String(),
			DayNumber: int(day),
			IsOpen:    !salon.IsClosedOn(day),
		}
		if schedule.IsOpen {
			hours := salon.HoursFor(day)
			schedule.OpenTime = hours.Start.String()
			schedule.CloseTime = hours.End.String()
		}
		resp.Days = append(resp.Days, schedule)
	}

	return resp
}
