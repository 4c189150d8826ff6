package templates

import "github.com/louisbranch/portfolio/internal/content"

// MonthYear formats d as a short month and year ("Jan 2024"). Invalid dates
// render empty.
func MonthYear(loc Localizer, d content.Date) string {
	if !d.Valid() {
		return ""
	}
	return tr(loc, "month.short."+itoa(int(d.Month()))) + " " + itoa(d.Year())
}

// LongMonthYear formats d with the full month name.
func LongMonthYear(loc Localizer, d content.Date) string {
	if !d.Valid() {
		return ""
	}
	return tr(loc, "month.long."+itoa(int(d.Month()))) + " " + itoa(d.Year())
}

// Period formats an experience range, using the localized "Present" when the
// role has no end date.
func Period(loc Localizer, exp content.Experience) string {
	start := MonthYear(loc, exp.StartDate)
	end := tr(loc, "about.present")
	if !exp.Current() {
		end = MonthYear(loc, exp.EndDate)
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}
