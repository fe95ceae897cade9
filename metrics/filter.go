// Package metrics derives the financial summaries shown on every screen
// from one immutable snapshot of operational data. Every function here is
// pure: no I/O, no shared state, inputs are never mutated.
package metrics

import (
	"time"

	"junket/models"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	RoleStaff = "staff"
)

// Snapshot is one consistent view of the five source collections.
type Snapshot struct {
	Agents          []models.Agent
	Customers       []models.Customer
	Trips           []models.Trip
	RollingRecords  []models.RollingRecord
	BuyInOutRecords []models.BuyInOutRecord
}

// ViewFilter scopes a snapshot to what the caller is allowed to see and,
// optionally, to a trailing date window. Now is injectable for tests; the
// zero value means evaluation time.
type ViewFilter struct {
	Role          string
	AgentCode     string
	StaffCode     string
	DateRangeDays int
	Now           time.Time
}

func (f ViewFilter) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

// applyFilter narrows a snapshot by role scope, agent drill-down and date
// window. The predicates are independent, so application order does not
// change the result.
func applyFilter(s Snapshot, f ViewFilter) Snapshot {
	if f.Role == RoleStaff && f.StaffCode != "" {
		s = scopeToStaff(s, f.StaffCode)
	}
	if f.AgentCode != "" {
		s = scopeToAgent(s, f.AgentCode)
	}
	if f.DateRangeDays > 0 {
		s = scopeToWindow(s, f.now().AddDate(0, 0, -f.DateRangeDays))
	}
	return s
}

func scopeToAgent(s Snapshot, agentCode string) Snapshot {
	out := Snapshot{}
	for _, a := range s.Agents {
		if a.AgentCode == agentCode {
			out.Agents = append(out.Agents, a)
		}
	}
	for _, c := range s.Customers {
		if c.AgentCode == agentCode {
			out.Customers = append(out.Customers, c)
		}
	}
	for _, t := range s.Trips {
		if t.AgentCode == agentCode {
			out.Trips = append(out.Trips, t)
		}
	}
	for _, r := range s.RollingRecords {
		if r.AgentCode == agentCode {
			out.RollingRecords = append(out.RollingRecords, r)
		}
	}
	for _, b := range s.BuyInOutRecords {
		if b.AgentCode == agentCode {
			out.BuyInOutRecords = append(out.BuyInOutRecords, b)
		}
	}
	return out
}

// scopeToStaff keeps the records created by one staff member, then derives
// the customer and trip subsets transitively from those records.
func scopeToStaff(s Snapshot, staffCode string) Snapshot {
	out := Snapshot{Agents: s.Agents}
	customerCodes := map[string]bool{}
	tripCodes := map[string]bool{}

	for _, r := range s.RollingRecords {
		if r.StaffCode == staffCode {
			out.RollingRecords = append(out.RollingRecords, r)
			customerCodes[r.CustomerCode] = true
			tripCodes[r.TripCode] = true
		}
	}
	for _, b := range s.BuyInOutRecords {
		if b.StaffCode == staffCode {
			out.BuyInOutRecords = append(out.BuyInOutRecords, b)
			customerCodes[b.CustomerCode] = true
			tripCodes[b.TripCode] = true
		}
	}
	for _, c := range s.Customers {
		if customerCodes[c.CustomerCode] {
			out.Customers = append(out.Customers, c)
		}
	}
	for _, t := range s.Trips {
		if tripCodes[t.TripCode] {
			out.Trips = append(out.Trips, t)
		}
	}
	return out
}

// scopeToWindow drops records and trips older than the cutoff. The lower
// bound is inclusive; the upper bound is open-ended.
func scopeToWindow(s Snapshot, cutoff time.Time) Snapshot {
	out := Snapshot{Agents: s.Agents, Customers: s.Customers}
	for _, t := range s.Trips {
		if !tripDate(t).Before(cutoff) {
			out.Trips = append(out.Trips, t)
		}
	}
	for _, r := range s.RollingRecords {
		if !r.RecordedAt.Before(cutoff) {
			out.RollingRecords = append(out.RollingRecords, r)
		}
	}
	for _, b := range s.BuyInOutRecords {
		if !b.RecordedAt.Before(cutoff) {
			out.BuyInOutRecords = append(out.BuyInOutRecords, b)
		}
	}
	return out
}

func tripDate(t models.Trip) time.Time {
	if !t.EndDate.IsZero() {
		return t.EndDate
	}
	return t.StartDate
}
