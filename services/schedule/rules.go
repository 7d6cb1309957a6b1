package schedule

import (
	"strings"
	"time"
)

// baseTemplate is the canonical daily offering: ten hourly slots from
// 9 AM to 6 PM. Per-provider rules subtract from or replace it.
var baseTemplate = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
}

// ScheduleRule describes one provider's deviation from the base template.
// When Whitelist is non-empty it replaces the entire day regardless of
// weekday; otherwise RemoveAlways and RemoveWeekends subtract slots.
type ScheduleRule struct {
	Canonical      string
	Aliases        []string
	RemoveAlways   []string
	RemoveWeekends []string
	Whitelist      []string
}

// scheduleRules is the per-provider exception table. Matching is an
// ordered scan, so more specific names should appear before generic ones.
var scheduleRules = []ScheduleRule{
	{
		Canonical:    "KIKI",
		Aliases:      []string{"Kiki Beauty", "Kiki's"},
		RemoveAlways: []string{"1:00 PM"},
	},
	{
		Canonical:      "Amara Beauty",
		Aliases:        []string{"Amara"},
		RemoveWeekends: []string{"9:00 AM", "10:00 AM"},
	},
	{
		Canonical: "Luxe Lash Studio",
		Aliases:   []string{"Luxe Lash"},
		Whitelist: []string{"11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM"},
	},
	{
		Canonical:    "Zuri Hair Lounge",
		Aliases:      []string{"Zuri"},
		RemoveAlways: []string{"6:00 PM"},
	},
	{
		Canonical:      "Nia Nails",
		Aliases:        []string{"Nia"},
		RemoveWeekends: []string{"5:00 PM", "6:00 PM"},
	},
	{
		Canonical:    "Blush & Go",
		Aliases:      []string{"Blush and Go"},
		RemoveAlways: []string{"12:00 PM"},
	},
	{
		Canonical:      "The Mane Attraction",
		Aliases:        []string{"Mane Attraction"},
		RemoveWeekends: []string{"9:00 AM"},
	},
	{
		Canonical: "Velvet Brow Bar",
		Aliases:   []string{"Velvet Brow"},
		Whitelist: []string{"10:00 AM", "11:00 AM", "12:00 PM", "2:00 PM", "3:00 PM"},
	},
	{
		Canonical:    "Gloss House",
		RemoveAlways: []string{"9:00 AM"},
	},
	{
		Canonical:      "Coco Curls",
		Aliases:        []string{"Coco"},
		RemoveWeekends: []string{"11:00 AM", "12:00 PM"},
	},
	{
		Canonical:    "Ivory Skin Studio",
		Aliases:      []string{"Ivory Skin"},
		RemoveAlways: []string{"5:00 PM", "6:00 PM"},
	},
	{
		Canonical: "Henna by Leila",
		Aliases:   []string{"Leila Henna"},
		Whitelist: []string{"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
	},
	{
		Canonical:    "Polished",
		Aliases:      []string{"Polished Nail Bar"},
		RemoveAlways: []string{"2:00 PM"},
	},
	{
		Canonical:      "Shear Bliss",
		RemoveWeekends: []string{"6:00 PM"},
	},
	{
		Canonical:    "Lumi Lashes",
		Aliases:      []string{"Lumi"},
		RemoveAlways: []string{"10:00 AM"},
	},
}

// ResolveRule finds the exception rule for a provider display name.
// Matching is case-insensitive containment in either direction against
// the canonical name and its aliases, which tolerates short-name vs
// display-name mismatches. Unknown providers return nil and get the
// unmodified base template.
func ResolveRule(providerName string) *ScheduleRule {
	name := strings.ToLower(strings.TrimSpace(providerName))
	if name == "" {
		return nil
	}
	for i := range scheduleRules {
		rule := &scheduleRules[i]
		for _, candidate := range append([]string{rule.Canonical}, rule.Aliases...) {
			c := strings.ToLower(candidate)
			if strings.Contains(name, c) || strings.Contains(c, name) {
				return rule
			}
		}
	}
	return nil
}

// DaySchedule returns the ordered base slots a provider offers on the
// given weekday, before any confirmed bookings are subtracted.
func DaySchedule(providerName string, day time.Weekday) []string {
	rule := ResolveRule(providerName)
	if rule == nil {
		return append([]string(nil), baseTemplate...)
	}
	if len(rule.Whitelist) > 0 {
		return append([]string(nil), rule.Whitelist...)
	}

	removed := make(map[string]bool, len(rule.RemoveAlways)+len(rule.RemoveWeekends))
	for _, t := range rule.RemoveAlways {
		removed[t] = true
	}
	if day == time.Saturday || day == time.Sunday {
		for _, t := range rule.RemoveWeekends {
			removed[t] = true
		}
	}

	slots := make([]string, 0, len(baseTemplate))
	for _, t := range baseTemplate {
		if !removed[t] {
			slots = append(slots, t)
		}
	}
	return slots
}

// WeekSchedule maps every weekday to the provider's base offering.
func WeekSchedule(providerName string) map[time.Weekday][]string {
	week := make(map[time.Weekday][]string, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		week[day] = DaySchedule(providerName, day)
	}
	return week
}
