// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "activity_type", Type: field.TypeEnum, Enums: []string{"knock", "callback", "sale", "note"}},
		{Name: "details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_users_activities",
				Columns:    []*schema.Column{ActivitiesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "activities_zones_activities",
				Columns:    []*schema.Column{ActivitiesColumns[6]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_zone_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[6], ActivitiesColumns[3]},
			},
			{
				Name:    "activity_agent_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[5], ActivitiesColumns[3]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"user_login", "user_register", "zone_create", "zone_update", "zone_delete", "zone_assign_agent", "zone_assign_team", "zone_unassign", "assignment_scheduled", "assignment_activated", "team_create", "team_member_add", "team_member_remove", "sweep_run", "resync_run"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_users_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[9]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "won", "lost"}, Default: "new"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "resident_id", Type: field.TypeInt, Nullable: true},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_residents_leads",
				Columns:    []*schema.Column{LeadsColumns[5]},
				RefColumns: []*schema.Column{ResidentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "leads_users_leads",
				Columns:    []*schema.Column{LeadsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "leads_zones_leads",
				Columns:    []*schema.Column{LeadsColumns[7]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_zone_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7], LeadsColumns[1]},
			},
			{
				Name:    "lead_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
		},
	}
	// ResidentsColumns holds the columns for the "residents" table.
	ResidentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "visit_status", Type: field.TypeEnum, Enums: []string{"not_visited", "visited", "not_home", "callback"}, Default: "not_visited"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// ResidentsTable holds the schema information for the "residents" table.
	ResidentsTable = &schema.Table{
		Name:       "residents",
		Columns:    ResidentsColumns,
		PrimaryKey: []*schema.Column{ResidentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "residents_zones_residents",
				Columns:    []*schema.Column{ResidentsColumns[8]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "resident_zone_id_visit_status",
				Unique:  false,
				Columns: []*schema.Column{ResidentsColumns[8], ResidentsColumns[4]},
			},
		},
	}
	// RoutesColumns holds the columns for the "routes" table.
	RoutesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "waypoints", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// RoutesTable holds the schema information for the "routes" table.
	RoutesTable = &schema.Table{
		Name:       "routes",
		Columns:    RoutesColumns,
		PrimaryKey: []*schema.Column{RoutesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routes_users_routes",
				Columns:    []*schema.Column{RoutesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "routes_zones_routes",
				Columns:    []*schema.Column{RoutesColumns[6]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "route_zone_id",
				Unique:  false,
				Columns: []*schema.Column{RoutesColumns[6]},
			},
		},
	}
	// ScheduledAssignmentsColumns holds the columns for the "scheduled_assignments" table.
	ScheduledAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "effective_from", Type: field.TypeTime},
		{Name: "scheduled_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "activated", "cancelled", "completed"}, Default: "pending"},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt, Nullable: true},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "assigned_by_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// ScheduledAssignmentsTable holds the schema information for the "scheduled_assignments" table.
	ScheduledAssignmentsTable = &schema.Table{
		Name:       "scheduled_assignments",
		Columns:    ScheduledAssignmentsColumns,
		PrimaryKey: []*schema.Column{ScheduledAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_assignments_teams_scheduled_assignments",
				Columns:    []*schema.Column{ScheduledAssignmentsColumns[6]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "scheduled_assignments_users_scheduled_assignments",
				Columns:    []*schema.Column{ScheduledAssignmentsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "scheduled_assignments_users_scheduled_assignments_made",
				Columns:    []*schema.Column{ScheduledAssignmentsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "scheduled_assignments_zones_scheduled_assignments",
				Columns:    []*schema.Column{ScheduledAssignmentsColumns[9]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_scheduled_assignment_due",
				Unique:  false,
				Columns: []*schema.Column{ScheduledAssignmentsColumns[3], ScheduledAssignmentsColumns[2]},
			},
			{
				Name:    "idx_scheduled_assignment_zone_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledAssignmentsColumns[9], ScheduledAssignmentsColumns[3]},
			},
			{
				Name:    "idx_scheduled_assignment_agent_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledAssignmentsColumns[7], ScheduledAssignmentsColumns[3]},
			},
			{
				Name:    "idx_scheduled_assignment_team_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledAssignmentsColumns[6], ScheduledAssignmentsColumns[3]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "inactive"},
		{Name: "assignment_status", Type: field.TypeEnum, Enums: []string{"assigned", "unassigned"}, Default: "unassigned"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by_user_id", Type: field.TypeInt},
		{Name: "leader_user_id", Type: field.TypeInt},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teams_users_teams_created",
				Columns:    []*schema.Column{TeamsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "teams_users_teams_led",
				Columns:    []*schema.Column{TeamsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "team_status",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[3]},
			},
			{
				Name:    "team_created_by_user_id",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[7]},
			},
		},
	}
	// TeamMembersColumns holds the columns for the "team_members" table.
	TeamMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "added_by_user_id", Type: field.TypeInt},
	}
	// TeamMembersTable holds the schema information for the "team_members" table.
	TeamMembersTable = &schema.Table{
		Name:       "team_members",
		Columns:    TeamMembersColumns,
		PrimaryKey: []*schema.Column{TeamMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "team_members_teams_members",
				Columns:    []*schema.Column{TeamMembersColumns[2]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "team_members_users_team_memberships",
				Columns:    []*schema.Column{TeamMembersColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "team_members_users_team_members_added",
				Columns:    []*schema.Column{TeamMembersColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "teammember_team_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TeamMembersColumns[2], TeamMembersColumns[3]},
			},
			{
				Name:    "teammember_user_id",
				Unique:  false,
				Columns: []*schema.Column{TeamMembersColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "agent"}, Default: "agent"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "inactive"},
		{Name: "assignment_status", Type: field.TypeEnum, Enums: []string{"assigned", "unassigned"}, Default: "unassigned"},
		{Name: "primary_zone_id", Type: field.TypeInt, Nullable: true},
		{Name: "zone_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_assignment_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// ZonesColumns holds the columns for the "zones" table.
	ZonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "boundary", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "scheduled", "completed"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_by_user_id", Type: field.TypeInt},
		{Name: "assigned_agent_id", Type: field.TypeInt, Nullable: true},
	}
	// ZonesTable holds the schema information for the "zones" table.
	ZonesTable = &schema.Table{
		Name:       "zones",
		Columns:    ZonesColumns,
		PrimaryKey: []*schema.Column{ZonesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "zones_teams_zones",
				Columns:    []*schema.Column{ZonesColumns[7]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "zones_users_zones_created",
				Columns:    []*schema.Column{ZonesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "zones_users_zones_assigned",
				Columns:    []*schema.Column{ZonesColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "zone_status",
				Unique:  false,
				Columns: []*schema.Column{ZonesColumns[4]},
			},
			{
				Name:    "zone_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ZonesColumns[9]},
			},
			{
				Name:    "zone_team_id",
				Unique:  false,
				Columns: []*schema.Column{ZonesColumns[7]},
			},
			{
				Name:    "zone_created_by_user_id",
				Unique:  false,
				Columns: []*schema.Column{ZonesColumns[8]},
			},
		},
	}
	// ZoneAssignmentsColumns holds the columns for the "zone_assignments" table.
	ZoneAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "effective_from", Type: field.TypeTime},
		{Name: "effective_to", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "completed", "cancelled"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt, Nullable: true},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "assigned_by_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "zone_id", Type: field.TypeInt},
	}
	// ZoneAssignmentsTable holds the schema information for the "zone_assignments" table.
	ZoneAssignmentsTable = &schema.Table{
		Name:       "zone_assignments",
		Columns:    ZoneAssignmentsColumns,
		PrimaryKey: []*schema.Column{ZoneAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "zone_assignments_teams_assignments",
				Columns:    []*schema.Column{ZoneAssignmentsColumns[5]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "zone_assignments_users_assignments",
				Columns:    []*schema.Column{ZoneAssignmentsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "zone_assignments_users_assignments_made",
				Columns:    []*schema.Column{ZoneAssignmentsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "zone_assignments_zones_assignments",
				Columns:    []*schema.Column{ZoneAssignmentsColumns[8]},
				RefColumns: []*schema.Column{ZonesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_zone_assignment_zone_status",
				Unique:  false,
				Columns: []*schema.Column{ZoneAssignmentsColumns[8], ZoneAssignmentsColumns[3]},
			},
			{
				Name:    "idx_zone_assignment_agent_status",
				Unique:  false,
				Columns: []*schema.Column{ZoneAssignmentsColumns[6], ZoneAssignmentsColumns[3]},
			},
			{
				Name:    "idx_zone_assignment_team_status",
				Unique:  false,
				Columns: []*schema.Column{ZoneAssignmentsColumns[5], ZoneAssignmentsColumns[3]},
			},
			{
				Name:    "idx_zone_assignment_time",
				Unique:  false,
				Columns: []*schema.Column{ZoneAssignmentsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		AuditLogsTable,
		LeadsTable,
		ResidentsTable,
		RoutesTable,
		ScheduledAssignmentsTable,
		TeamsTable,
		TeamMembersTable,
		UsersTable,
		ZonesTable,
		ZoneAssignmentsTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = UsersTable
	ActivitiesTable.ForeignKeys[1].RefTable = ZonesTable
	AuditLogsTable.ForeignKeys[0].RefTable = UsersTable
	LeadsTable.ForeignKeys[0].RefTable = ResidentsTable
	LeadsTable.ForeignKeys[1].RefTable = UsersTable
	LeadsTable.ForeignKeys[2].RefTable = ZonesTable
	ResidentsTable.ForeignKeys[0].RefTable = ZonesTable
	RoutesTable.ForeignKeys[0].RefTable = UsersTable
	RoutesTable.ForeignKeys[1].RefTable = ZonesTable
	ScheduledAssignmentsTable.ForeignKeys[0].RefTable = TeamsTable
	ScheduledAssignmentsTable.ForeignKeys[1].RefTable = UsersTable
	ScheduledAssignmentsTable.ForeignKeys[2].RefTable = UsersTable
	ScheduledAssignmentsTable.ForeignKeys[3].RefTable = ZonesTable
	TeamsTable.ForeignKeys[0].RefTable = UsersTable
	TeamsTable.ForeignKeys[1].RefTable = UsersTable
	TeamMembersTable.ForeignKeys[0].RefTable = TeamsTable
	TeamMembersTable.ForeignKeys[1].RefTable = UsersTable
	TeamMembersTable.ForeignKeys[2].RefTable = UsersTable
	ZonesTable.ForeignKeys[0].RefTable = TeamsTable
	ZonesTable.ForeignKeys[1].RefTable = UsersTable
	ZonesTable.ForeignKeys[2].RefTable = UsersTable
	ZoneAssignmentsTable.ForeignKeys[0].RefTable = TeamsTable
	ZoneAssignmentsTable.ForeignKeys[1].RefTable = UsersTable
	ZoneAssignmentsTable.ForeignKeys[2].RefTable = UsersTable
	ZoneAssignmentsTable.ForeignKeys[3].RefTable = ZonesTable
}
