// Package schedule decides whether appointments are upcoming or already
// over. Classification is a read-time projection: nothing here mutates a
// record, and a stored completed flag only matters when the record's
// date/time cannot be resolved.
package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"serenity-api/internal/model"
)

// Resolved is the outcome of turning a calendar date, a clock time and a
// duration into concrete instants. OK is false when the inputs could not
// be resolved; Start and End are meaningless in that case.
type Resolved struct {
	Start time.Time
	End   time.Time
	OK    bool
}

// Resolve combines date ("YYYY-MM-DD"), startTime ("HH:MM") and a
// duration in minutes into start/end instants in server-local time.
// Parsing is deliberately lenient: a missing day means the 1st, a
// missing minute means :00, and any malformed or absent component yields
// an unresolved result rather than an error. Negative durations count
// as 0.
func Resolve(date, startTime string, durationMinutes int) Resolved {
	if date == "" || startTime == "" {
		return Resolved{}
	}

	dp := strings.Split(date, "-")
	if len(dp) < 2 {
		return Resolved{}
	}
	year, err := strconv.Atoi(dp[0])
	if err != nil {
		return Resolved{}
	}
	month, err := strconv.Atoi(dp[1])
	if err != nil {
		return Resolved{}
	}
	day := 1
	if len(dp) >= 3 && dp[2] != "" {
		if day, err = strconv.Atoi(dp[2]); err != nil {
			return Resolved{}
		}
	}

	tp := strings.Split(startTime, ":")
	hour := 0
	if tp[0] != "" {
		if hour, err = strconv.Atoi(tp[0]); err != nil {
			return Resolved{}
		}
	}
	minute := 0
	if len(tp) >= 2 && tp[1] != "" {
		if minute, err = strconv.Atoi(tp[1]); err != nil {
			return Resolved{}
		}
	}

	if durationMinutes < 0 {
		durationMinutes = 0
	}

	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	return Resolved{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
		OK:    true,
	}
}

// Completed reports whether an appointment is over at the reference
// instant now. A resolved end time is authoritative (end itself counts
// as over); otherwise the stored flag decides.
func Completed(r Resolved, stored bool, now time.Time) bool {
	if !r.OK {
		return stored
	}
	return !now.Before(r.End)
}

// Partition splits one identity's appointments into upcoming and
// previous, both sorted ascending by resolved start. Records whose
// date/time cannot be resolved sort first (their key is the empty
// string); ties keep their input order. The Completed field on every
// returned record is the computed value, not the stored one.
func Partition(appts []model.Appointment, now time.Time) (upcoming, previous []model.Appointment) {
	type keyed struct {
		appt model.Appointment
		key  string
	}

	var up, prev []keyed
	for _, a := range appts {
		r := Resolve(a.Date, a.StartTime, int(a.Duration))
		a.Completed = Completed(r, a.Completed, now)
		k := ""
		if r.OK {
			k = r.Start.Format(time.RFC3339)
		}
		if a.Completed {
			prev = append(prev, keyed{a, k})
		} else {
			up = append(up, keyed{a, k})
		}
	}

	byStart := func(s []keyed) []model.Appointment {
		sort.SliceStable(s, func(i, j int) bool { return s[i].key < s[j].key })
		out := make([]model.Appointment, len(s))
		for i := range s {
			out[i] = s[i].appt
		}
		return out
	}

	return byStart(up), byStart(prev)
}
