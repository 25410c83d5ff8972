// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package lunar

import (
	"container/list"
	"fmt"
	"sort"
	"sync"

	"github.com/lunartime/lunargo/moonposition"
	"github.com/lunartime/lunargo/search"
	"github.com/lunartime/lunargo/vsop87d"
)

// Engine is the public facade (§4.9, §9 "Globals and caches"): a value
// that owns an optional LRU cache of completed per-year calendars, so that
// callers never touch package-level mutable state. The engine itself is
// stateless apart from that cache — every method is a pure function of its
// arguments plus whatever is already cached.
type Engine struct {
	mu       sync.Mutex
	cache    map[int]*list.Element
	order    *list.List // front = most recently used
	capacity int
}

type cacheEntry struct {
	year int
	days []CalendarDay
}

// DefaultCacheCapacity is the suggested LRU capacity (§4.9).
const DefaultCacheCapacity = 500

// NewEngine returns an Engine with an LRU cache of the given capacity.
// A capacity of 0 disables caching: every call recomputes from scratch.
func NewEngine(capacity int) *Engine {
	return &Engine{
		cache:    make(map[int]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

// LunarCalendar returns the Chinese calendar for every civil day of year,
// 1 January through 31 December (§4.9). Because a lunar year's leap-11
// month can straddle the civil year boundary, this assembles the lunar
// years anchored on both year and year+1 and trims the merge to year.
func (e *Engine) LunarCalendar(year int) ([]CalendarDay, error) {
	if days, ok := e.lookup(year); ok {
		return days, nil
	}

	a, err := assembleLunarYear(year)
	if err != nil {
		return nil, err
	}
	b, err := assembleLunarYear(year + 1)
	if err != nil {
		return nil, err
	}

	merged := make(map[[3]int]CalendarDay, len(a)+len(b))
	for _, d := range a {
		merged[[3]int{d.Year, d.Month, d.Day}] = d
	}
	for _, d := range b {
		merged[[3]int{d.Year, d.Month, d.Day}] = d
	}

	out := make([]CalendarDay, 0, 366)
	for _, d := range merged {
		if d.Year == year {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})

	e.store(year, out)
	return out, nil
}

func (e *Engine) lookup(year int) ([]CalendarDay, bool) {
	if e.capacity <= 0 {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	el, ok := e.cache[year]
	if !ok {
		return nil, false
	}
	e.order.MoveToFront(el)
	return el.Value.(*cacheEntry).days, true
}

func (e *Engine) store(year int, days []CalendarDay) {
	if e.capacity <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if el, ok := e.cache[year]; ok {
		el.Value.(*cacheEntry).days = days
		e.order.MoveToFront(el)
		return
	}
	el := e.order.PushFront(&cacheEntry{year: year, days: days})
	e.cache[year] = el
	for e.order.Len() > e.capacity {
		oldest := e.order.Back()
		if oldest == nil {
			break
		}
		e.order.Remove(oldest)
		delete(e.cache, oldest.Value.(*cacheEntry).year)
	}
}

// SolarTerm returns the JDTT of the given solar-term angle for year (§6).
func (e *Engine) SolarTerm(year int, angleDeg float64) (float64, error) {
	return search.SolarTerm(year, angleDeg)
}

// NewMoonsFrom returns count new moons (JDTT) at or after jd (§6).
func (e *Engine) NewMoonsFrom(jd float64, count int) ([]float64, error) {
	return search.EnumerateNewMoons(jd, count)
}

// ApparentSun returns the Sun's apparent geocentric ecliptic longitude in
// radians for jdTT (§6).
func (e *Engine) ApparentSun(jdTT float64, suppressNutation bool) float64 {
	return vsop87d.ApparentLongitude(jdTT, suppressNutation).Rad()
}

// ApparentMoon returns the Moon's apparent geocentric ecliptic longitude
// in radians for jdTT (§6).
func (e *Engine) ApparentMoon(jdTT float64, suppressNutation bool) float64 {
	return moonposition.ApparentLongitude(jdTT, suppressNutation).Rad()
}

// String renders the engine's cache occupancy, useful in diagnostics.
func (e *Engine) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("lunar.Engine{cached=%d/%d}", e.order.Len(), e.capacity)
}
