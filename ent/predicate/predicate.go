// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Resident is the predicate function for resident builders.
type Resident func(*sql.Selector)

// Route is the predicate function for route builders.
type Route func(*sql.Selector)

// ScheduledAssignment is the predicate function for scheduledassignment builders.
type ScheduledAssignment func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// TeamMember is the predicate function for teammember builders.
type TeamMember func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Zone is the predicate function for zone builders.
type Zone func(*sql.Selector)

// ZoneAssignment is the predicate function for zoneassignment builders.
type ZoneAssignment func(*sql.Selector)
