// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/engagementstate"
)

// EngagementState is the model entity for the EngagementState schema.
type EngagementState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// LongestStreak holds the value of the "longest_streak" field.
	LongestStreak int `json:"longest_streak,omitempty"`
	// Calendar date of the last counted practice day
	LastPractice *time.Time `json:"last_practice,omitempty"`
	// Weekly streak-freeze allowance
	FreezeAvailable bool `json:"freeze_available,omitempty"`
	// Calendar date the freeze was last consumed
	FreezeUsed *time.Time `json:"freeze_used,omitempty"`
	// TotalXp holds the value of the "total_xp" field.
	TotalXp      int `json:"total_xp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EngagementState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case engagementstate.FieldFreezeAvailable:
			values[i] = new(sql.NullBool)
		case engagementstate.FieldID, engagementstate.FieldCurrentStreak, engagementstate.FieldLongestStreak, engagementstate.FieldTotalXp:
			values[i] = new(sql.NullInt64)
		case engagementstate.FieldLearnerID:
			values[i] = new(sql.NullString)
		case engagementstate.FieldLastPractice, engagementstate.FieldFreezeUsed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EngagementState fields.
func (_m *EngagementState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case engagementstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case engagementstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case engagementstate.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case engagementstate.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case engagementstate.FieldLastPractice:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practice", values[i])
			} else if value.Valid {
				_m.LastPractice = new(time.Time)
				*_m.LastPractice = value.Time
			}
		case engagementstate.FieldFreezeAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field freeze_available", values[i])
			} else if value.Valid {
				_m.FreezeAvailable = value.Bool
			}
		case engagementstate.FieldFreezeUsed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field freeze_used", values[i])
			} else if value.Valid {
				_m.FreezeUsed = new(time.Time)
				*_m.FreezeUsed = value.Time
			}
		case engagementstate.FieldTotalXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp", values[i])
			} else if value.Valid {
				_m.TotalXp = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EngagementState.
// This includes values selected through modifiers, order, etc.
func (_m *EngagementState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EngagementState.
// Note that you need to call EngagementState.Unwrap() before calling this method if this EngagementState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EngagementState) Update() *EngagementStateUpdateOne {
	return NewEngagementStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EngagementState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EngagementState) Unwrap() *EngagementState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EngagementState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EngagementState) String() string {
	var builder strings.Builder
	builder.WriteString("EngagementState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	if v := _m.LastPractice; v != nil {
		builder.WriteString("last_practice=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("freeze_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreezeAvailable))
	builder.WriteString(", ")
	if v := _m.FreezeUsed; v != nil {
		builder.WriteString("freeze_used=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXp))
	builder.WriteByte(')')
	return builder.String()
}

// EngagementStates is a parsable slice of EngagementState.
type EngagementStates []*EngagementState
