package warehouse

import (
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// Fixed-date holidays flagged in the date dimension: New Year, Brazilian
// Independence Day, Christmas.
var fixedHolidays = map[[2]int]struct{}{
	{1, 1}:   {},
	{9, 7}:   {},
	{12, 25}: {},
}

// DateKey encodes a date as year*10000 + month*100 + day, the surrogate key
// convention of dim_dates.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// GenerateDateDimension emits one row per calendar day from start through end
// inclusive. It is a pure function of the range: calendar-continuous, no
// gaps, and independent of any source data.
func GenerateDateDimension(start, end time.Time) []models.DimDate {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var rows []models.DimDate
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weekday := int(d.Weekday())
		_, holiday := fixedHolidays[[2]int{int(d.Month()), d.Day()}]
		rows = append(rows, models.DimDate{
			DateKey:       DateKey(d),
			Date:          d,
			Year:          d.Year(),
			Quarter:       (int(d.Month())-1)/3 + 1,
			Month:         int(d.Month()),
			MonthName:     d.Month().String(),
			Day:           d.Day(),
			WeekdayNumber: weekday,
			WeekdayName:   d.Weekday().String(),
			IsWeekend:     weekday == 0 || weekday == 6,
			IsHoliday:     holiday,
		})
	}
	return rows
}
