package desc

// Fixed ASCII name tables shared by the two interpreters. Indexed from
// zero: MonthNames[0] is January, WeekdayNames[0] is Monday.

var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ShortMonthName returns the three-letter abbreviation for a 1-based month.
func ShortMonthName(month int) string { return MonthNames[month-1][:3] }

// ShortWeekdayName returns the three-letter abbreviation for a weekday where
// 1 is Monday and 7 is Sunday.
func ShortWeekdayName(weekday int) string { return WeekdayNames[weekday-1][:3] }
