// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package lunar

// holidayKey identifies a lunar (month, day) pair. Month here is always
// the plain 1..12 code: none of the fixed lunar holidays fall in a leap
// month, matching the reference implementation's update_holiday table.
type holidayKey struct {
	month, day int
}

// fixedHolidays maps lunar (month, day) to its traditional name (§6). 除夕
// is not in this table: it is derived (the day immediately before 春节) by
// expandDays in assembler.go, together with 寒食 (the day before 清明).
var fixedHolidays = map[holidayKey]string{
	{12, 8}:  "腊八",
	{1, 1}:   "春节",
	{1, 15}:  "元宵",
	{5, 5}:   "端午",
	{7, 7}:   "七夕",
	{7, 15}:  "中元",
	{8, 15}:  "中秋",
	{9, 9}:   "重阳",
	{10, 15}: "下元",
}

// HolidayLabel returns the fixed lunar-calendar holiday for (month, day),
// or "" if none. month is always the plain 1..12 code.
func HolidayLabel(month, day int) string {
	return fixedHolidays[holidayKey{month, day}]
}
