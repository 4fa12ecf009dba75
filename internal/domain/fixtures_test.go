package domain

import (
	"time"
)

const testBranchID int64 = 7

// weekdayCalendar branch open Mon-Fri 09:00-17:00
func weekdayCalendar() BusinessCalendar {
	hours := TimeWindow{Open: "09:00", Close: "17:00"}
	return BusinessCalendar{
		BranchID:  testBranchID,
		HoursType: "standard",
		Days: map[time.Weekday]TimeWindow{
			time.Monday:    hours,
			time.Tuesday:   hours,
			time.Wednesday: hours,
			time.Thursday:  hours,
			time.Friday:    hours,
		},
	}
}

// sevenDayCalendar branch open every day 08:00-20:00
func sevenDayCalendar() BusinessCalendar {
	cal := BusinessCalendar{BranchID: testBranchID, Days: map[time.Weekday]TimeWindow{}}
	for d := time.Sunday; d <= time.Saturday; d++ {
		cal.Days[d] = TimeWindow{Open: "08:00", Close: "20:00"}
	}
	return cal
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

var (
	monday    = date(2026, time.March, 2)
	wednesday = date(2026, time.March, 4)
	saturday  = date(2026, time.March, 7)
)
