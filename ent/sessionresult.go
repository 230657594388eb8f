// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
)

// SessionResult is the model entity for the SessionResult schema.
type SessionResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// UUID assigned at commit
	SessionID string `json:"session_id,omitempty"`
	// Calendar date the session was practiced
	SessionDate time.Time `json:"session_date,omitempty"`
	// TotalExercises holds the value of the "total_exercises" field.
	TotalExercises int `json:"total_exercises,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Longest run of consecutive correct answers in the session
	BestRun int `json:"best_run,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// Details holds the value of the "details" field.
	Details      []schema.ExerciseDetail `json:"details,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionresult.FieldDetails:
			values[i] = new([]byte)
		case sessionresult.FieldID, sessionresult.FieldTotalExercises, sessionresult.FieldCorrect, sessionresult.FieldBestRun, sessionresult.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case sessionresult.FieldLearnerID, sessionresult.FieldSessionID:
			values[i] = new(sql.NullString)
		case sessionresult.FieldSessionDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionResult fields.
func (_m *SessionResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionresult.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sessionresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionresult.FieldSessionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_date", values[i])
			} else if value.Valid {
				_m.SessionDate = value.Time
			}
		case sessionresult.FieldTotalExercises:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_exercises", values[i])
			} else if value.Valid {
				_m.TotalExercises = int(value.Int64)
			}
		case sessionresult.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case sessionresult.FieldBestRun:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_run", values[i])
			} else if value.Valid {
				_m.BestRun = int(value.Int64)
			}
		case sessionresult.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case sessionresult.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionResult.
// This includes values selected through modifiers, order, etc.
func (_m *SessionResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionResult.
// Note that you need to call SessionResult.Unwrap() before calling this method if this SessionResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionResult) Update() *SessionResultUpdateOne {
	return NewSessionResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionResult) Unwrap() *SessionResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionResult) String() string {
	var builder strings.Builder
	builder.WriteString("SessionResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("session_date=")
	builder.WriteString(_m.SessionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExercises))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("best_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestRun))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteByte(')')
	return builder.String()
}

// SessionResults is a parsable slice of SessionResult.
type SessionResults []*SessionResult
