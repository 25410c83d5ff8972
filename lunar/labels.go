// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package lunar

import "fmt"

// monthNames maps a plain month number 1..12 to its traditional label.
// Leap-month codes 101..112 reuse these names with a 閏 prefix (MonthLabel).
var monthNames = [...]string{
	"", "正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

// dayNames maps day-of-month 1..30 to its traditional label, following the
// 初/十/廿/三十 convention.
var dayNames = [...]string{
	"", "初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

// MonthLabel renders a Chinese-month code (1..12 regular, 101..112 leap)
// as its traditional label (§6).
func MonthLabel(code int) string {
	if code >= 101 && code <= 112 {
		return "閏" + monthNames[code-100]
	}
	if code >= 1 && code <= 12 {
		return monthNames[code]
	}
	return fmt.Sprintf("?月(%d)", code)
}

// DayLabel renders a day-of-month 1..30 as its traditional label (§6).
func DayLabel(day int) string {
	if day < 1 || day > 30 {
		return fmt.Sprintf("?日(%d)", day)
	}
	return dayNames[day]
}

// jieqiNames maps a jieqi angle, normalised to [0, 360) in 15° steps, to
// its traditional name (§6).
var jieqiNames = map[int]string{
	0: "春分", 15: "清明", 30: "穀雨", 45: "立夏", 60: "小滿", 75: "芒種",
	90: "夏至", 105: "小暑", 120: "大暑", 135: "立秋", 150: "處暑", 165: "白露",
	180: "秋分", 195: "寒露", 210: "霜降", 225: "立冬", 240: "小雪", 255: "大雪",
	270: "冬至", 285: "小寒", 300: "大寒", 315: "立春", 330: "雨水", 345: "驚蟄",
}

// JieqiLabel renders a solar-term angle in degrees (any representative,
// including negative multiples of 15 used internally during assembly) as
// its traditional name.
func JieqiLabel(angleDeg float64) string {
	a := int(angleDeg) % 360
	if a < 0 {
		a += 360
	}
	name, ok := jieqiNames[a]
	if !ok {
		return fmt.Sprintf("?氣(%v)", angleDeg)
	}
	return name
}

// IsZhongqi reports whether angleDeg is a major solar term ("zhongqi"):
// angle ≡ 0 (mod 30°). Leap-month detection hinges on this (§4.8 step 8).
func IsZhongqi(angleDeg float64) bool {
	a := int(angleDeg) % 30
	if a < 0 {
		a += 30
	}
	return a == 0
}
