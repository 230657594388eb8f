// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/errorpattern"
)

// ErrorPattern is the model entity for the ErrorPattern schema.
type ErrorPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Pattern holds the value of the "pattern" field.
	Pattern string `json:"pattern,omitempty"`
	// Verb the pattern was observed on; empty for topic-level patterns
	Verb string `json:"verb,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Example holds the value of the "example" field.
	Example string `json:"example,omitempty"`
	// Occurrences holds the value of the "occurrences" field.
	Occurrences int `json:"occurrences,omitempty"`
	// watching or active
	Status string `json:"status,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ErrorPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldID, errorpattern.FieldOccurrences:
			values[i] = new(sql.NullInt64)
		case errorpattern.FieldLearnerID, errorpattern.FieldPattern, errorpattern.FieldVerb, errorpattern.FieldDescription, errorpattern.FieldExample, errorpattern.FieldStatus:
			values[i] = new(sql.NullString)
		case errorpattern.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ErrorPattern fields.
func (_m *ErrorPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case errorpattern.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case errorpattern.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case errorpattern.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case errorpattern.FieldVerb:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verb", values[i])
			} else if value.Valid {
				_m.Verb = value.String
			}
		case errorpattern.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case errorpattern.FieldExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example", values[i])
			} else if value.Valid {
				_m.Example = value.String
			}
		case errorpattern.FieldOccurrences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrences", values[i])
			} else if value.Valid {
				_m.Occurrences = int(value.Int64)
			}
		case errorpattern.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case errorpattern.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ErrorPattern.
// This includes values selected through modifiers, order, etc.
func (_m *ErrorPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ErrorPattern.
// Note that you need to call ErrorPattern.Unwrap() before calling this method if this ErrorPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ErrorPattern) Update() *ErrorPatternUpdateOne {
	return NewErrorPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ErrorPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ErrorPattern) Unwrap() *ErrorPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ErrorPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ErrorPattern) String() string {
	var builder strings.Builder
	builder.WriteString("ErrorPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("verb=")
	builder.WriteString(_m.Verb)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("example=")
	builder.WriteString(_m.Example)
	builder.WriteString(", ")
	builder.WriteString("occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Occurrences))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ErrorPatterns is a parsable slice of ErrorPattern.
type ErrorPatterns []*ErrorPattern
