// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/knockbase/knockbase/ent/activity"
	"github.com/knockbase/knockbase/ent/auditlog"
	"github.com/knockbase/knockbase/ent/lead"
	"github.com/knockbase/knockbase/ent/resident"
	"github.com/knockbase/knockbase/ent/route"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/schema"
	"github.com/knockbase/knockbase/ent/team"
	"github.com/knockbase/knockbase/ent/teammember"
	"github.com/knockbase/knockbase/ent/user"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/ent/zoneassignment"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescZoneID is the schema descriptor for zone_id field.
	activityDescZoneID := activityFields[0].Descriptor()
	// activity.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	activity.ZoneIDValidator = activityDescZoneID.Validators[0].(func(int) error)
	// activityDescAgentID is the schema descriptor for agent_id field.
	activityDescAgentID := activityFields[1].Descriptor()
	// activity.AgentIDValidator is a validator for the "agent_id" field. It is called by the builders before save.
	activity.AgentIDValidator = activityDescAgentID.Validators[0].(func(int) error)
	// activityDescOccurredAt is the schema descriptor for occurred_at field.
	activityDescOccurredAt := activityFields[4].Descriptor()
	// activity.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	activity.DefaultOccurredAt = activityDescOccurredAt.Default.(func() time.Time)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[5].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[9].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescZoneID is the schema descriptor for zone_id field.
	leadDescZoneID := leadFields[0].Descriptor()
	// lead.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	lead.ZoneIDValidator = leadDescZoneID.Validators[0].(func(int) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[5].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[6].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	residentFields := schema.Resident{}.Fields()
	_ = residentFields
	// residentDescZoneID is the schema descriptor for zone_id field.
	residentDescZoneID := residentFields[0].Descriptor()
	// resident.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	resident.ZoneIDValidator = residentDescZoneID.Validators[0].(func(int) error)
	// residentDescAddress is the schema descriptor for address field.
	residentDescAddress := residentFields[2].Descriptor()
	// resident.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	resident.AddressValidator = residentDescAddress.Validators[0].(func(string) error)
	// residentDescCreatedAt is the schema descriptor for created_at field.
	residentDescCreatedAt := residentFields[6].Descriptor()
	// resident.DefaultCreatedAt holds the default value on creation for the created_at field.
	resident.DefaultCreatedAt = residentDescCreatedAt.Default.(func() time.Time)
	// residentDescUpdatedAt is the schema descriptor for updated_at field.
	residentDescUpdatedAt := residentFields[7].Descriptor()
	// resident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resident.DefaultUpdatedAt = residentDescUpdatedAt.Default.(func() time.Time)
	// resident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resident.UpdateDefaultUpdatedAt = residentDescUpdatedAt.UpdateDefault.(func() time.Time)
	routeFields := schema.Route{}.Fields()
	_ = routeFields
	// routeDescZoneID is the schema descriptor for zone_id field.
	routeDescZoneID := routeFields[0].Descriptor()
	// route.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	route.ZoneIDValidator = routeDescZoneID.Validators[0].(func(int) error)
	// routeDescName is the schema descriptor for name field.
	routeDescName := routeFields[2].Descriptor()
	// route.NameValidator is a validator for the "name" field. It is called by the builders before save.
	route.NameValidator = routeDescName.Validators[0].(func(string) error)
	// routeDescCreatedAt is the schema descriptor for created_at field.
	routeDescCreatedAt := routeFields[4].Descriptor()
	// route.DefaultCreatedAt holds the default value on creation for the created_at field.
	route.DefaultCreatedAt = routeDescCreatedAt.Default.(func() time.Time)
	// routeDescUpdatedAt is the schema descriptor for updated_at field.
	routeDescUpdatedAt := routeFields[5].Descriptor()
	// route.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	route.DefaultUpdatedAt = routeDescUpdatedAt.Default.(func() time.Time)
	// route.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	route.UpdateDefaultUpdatedAt = routeDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduledassignmentFields := schema.ScheduledAssignment{}.Fields()
	_ = scheduledassignmentFields
	// scheduledassignmentDescZoneID is the schema descriptor for zone_id field.
	scheduledassignmentDescZoneID := scheduledassignmentFields[0].Descriptor()
	// scheduledassignment.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	scheduledassignment.ZoneIDValidator = scheduledassignmentDescZoneID.Validators[0].(func(int) error)
	// scheduledassignmentDescCreatedAt is the schema descriptor for created_at field.
	scheduledassignmentDescCreatedAt := scheduledassignmentFields[8].Descriptor()
	// scheduledassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledassignment.DefaultCreatedAt = scheduledassignmentDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[0].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = func() func(string) error {
		validators := teamDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// teamDescLeaderUserID is the schema descriptor for leader_user_id field.
	teamDescLeaderUserID := teamFields[4].Descriptor()
	// team.LeaderUserIDValidator is a validator for the "leader_user_id" field. It is called by the builders before save.
	team.LeaderUserIDValidator = teamDescLeaderUserID.Validators[0].(func(int) error)
	// teamDescCreatedByUserID is the schema descriptor for created_by_user_id field.
	teamDescCreatedByUserID := teamFields[5].Descriptor()
	// team.CreatedByUserIDValidator is a validator for the "created_by_user_id" field. It is called by the builders before save.
	team.CreatedByUserIDValidator = teamDescCreatedByUserID.Validators[0].(func(int) error)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[6].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[7].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	teammemberFields := schema.TeamMember{}.Fields()
	_ = teammemberFields
	// teammemberDescTeamID is the schema descriptor for team_id field.
	teammemberDescTeamID := teammemberFields[0].Descriptor()
	// teammember.TeamIDValidator is a validator for the "team_id" field. It is called by the builders before save.
	teammember.TeamIDValidator = teammemberDescTeamID.Validators[0].(func(int) error)
	// teammemberDescUserID is the schema descriptor for user_id field.
	teammemberDescUserID := teammemberFields[1].Descriptor()
	// teammember.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	teammember.UserIDValidator = teammemberDescUserID.Validators[0].(func(int) error)
	// teammemberDescAddedByUserID is the schema descriptor for added_by_user_id field.
	teammemberDescAddedByUserID := teammemberFields[2].Descriptor()
	// teammember.AddedByUserIDValidator is a validator for the "added_by_user_id" field. It is called by the builders before save.
	teammember.AddedByUserIDValidator = teammemberDescAddedByUserID.Validators[0].(func(int) error)
	// teammemberDescJoinedAt is the schema descriptor for joined_at field.
	teammemberDescJoinedAt := teammemberFields[3].Descriptor()
	// teammember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	teammember.DefaultJoinedAt = teammemberDescJoinedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[10].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[11].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	zoneFields := schema.Zone{}.Fields()
	_ = zoneFields
	// zoneDescName is the schema descriptor for name field.
	zoneDescName := zoneFields[0].Descriptor()
	// zone.NameValidator is a validator for the "name" field. It is called by the builders before save.
	zone.NameValidator = func() func(string) error {
		validators := zoneDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// zoneDescCreatedByUserID is the schema descriptor for created_by_user_id field.
	zoneDescCreatedByUserID := zoneFields[6].Descriptor()
	// zone.CreatedByUserIDValidator is a validator for the "created_by_user_id" field. It is called by the builders before save.
	zone.CreatedByUserIDValidator = zoneDescCreatedByUserID.Validators[0].(func(int) error)
	// zoneDescCreatedAt is the schema descriptor for created_at field.
	zoneDescCreatedAt := zoneFields[7].Descriptor()
	// zone.DefaultCreatedAt holds the default value on creation for the created_at field.
	zone.DefaultCreatedAt = zoneDescCreatedAt.Default.(func() time.Time)
	// zoneDescUpdatedAt is the schema descriptor for updated_at field.
	zoneDescUpdatedAt := zoneFields[8].Descriptor()
	// zone.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	zone.DefaultUpdatedAt = zoneDescUpdatedAt.Default.(func() time.Time)
	// zone.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	zone.UpdateDefaultUpdatedAt = zoneDescUpdatedAt.UpdateDefault.(func() time.Time)
	zoneassignmentFields := schema.ZoneAssignment{}.Fields()
	_ = zoneassignmentFields
	// zoneassignmentDescZoneID is the schema descriptor for zone_id field.
	zoneassignmentDescZoneID := zoneassignmentFields[0].Descriptor()
	// zoneassignment.ZoneIDValidator is a validator for the "zone_id" field. It is called by the builders before save.
	zoneassignment.ZoneIDValidator = zoneassignmentDescZoneID.Validators[0].(func(int) error)
	// zoneassignmentDescEffectiveFrom is the schema descriptor for effective_from field.
	zoneassignmentDescEffectiveFrom := zoneassignmentFields[4].Descriptor()
	// zoneassignment.DefaultEffectiveFrom holds the default value on creation for the effective_from field.
	zoneassignment.DefaultEffectiveFrom = zoneassignmentDescEffectiveFrom.Default.(func() time.Time)
	// zoneassignmentDescCreatedAt is the schema descriptor for created_at field.
	zoneassignmentDescCreatedAt := zoneassignmentFields[7].Descriptor()
	// zoneassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	zoneassignment.DefaultCreatedAt = zoneassignmentDescCreatedAt.Default.(func() time.Time)
}
