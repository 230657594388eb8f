// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/predicate"
	"github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
)

// SessionResultUpdate is the builder for updating SessionResult entities.
type SessionResultUpdate struct {
	config
	hooks    []Hook
	mutation *SessionResultMutation
}

// Where appends a list predicates to the SessionResultUpdate builder.
func (_u *SessionResultUpdate) Where(ps ...predicate.SessionResult) *SessionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionResultUpdate) SetLearnerID(v string) *SessionResultUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableLearnerID(v *string) *SessionResultUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionResultUpdate) SetSessionID(v string) *SessionResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableSessionID(v *string) *SessionResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionResultUpdate) SetSessionDate(v time.Time) *SessionResultUpdate {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableSessionDate(v *time.Time) *SessionResultUpdate {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetTotalExercises sets the "total_exercises" field.
func (_u *SessionResultUpdate) SetTotalExercises(v int) *SessionResultUpdate {
	_u.mutation.ResetTotalExercises()
	_u.mutation.SetTotalExercises(v)
	return _u
}

// SetNillableTotalExercises sets the "total_exercises" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableTotalExercises(v *int) *SessionResultUpdate {
	if v != nil {
		_u.SetTotalExercises(*v)
	}
	return _u
}

// AddTotalExercises adds value to the "total_exercises" field.
func (_u *SessionResultUpdate) AddTotalExercises(v int) *SessionResultUpdate {
	_u.mutation.AddTotalExercises(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionResultUpdate) SetCorrect(v int) *SessionResultUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableCorrect(v *int) *SessionResultUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionResultUpdate) AddCorrect(v int) *SessionResultUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetBestRun sets the "best_run" field.
func (_u *SessionResultUpdate) SetBestRun(v int) *SessionResultUpdate {
	_u.mutation.ResetBestRun()
	_u.mutation.SetBestRun(v)
	return _u
}

// SetNillableBestRun sets the "best_run" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableBestRun(v *int) *SessionResultUpdate {
	if v != nil {
		_u.SetBestRun(*v)
	}
	return _u
}

// AddBestRun adds value to the "best_run" field.
func (_u *SessionResultUpdate) AddBestRun(v int) *SessionResultUpdate {
	_u.mutation.AddBestRun(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *SessionResultUpdate) SetXpAwarded(v int) *SessionResultUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *SessionResultUpdate) SetNillableXpAwarded(v *int) *SessionResultUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *SessionResultUpdate) AddXpAwarded(v int) *SessionResultUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *SessionResultUpdate) SetDetails(v []schema.ExerciseDetail) *SessionResultUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// AppendDetails appends value to the "details" field.
func (_u *SessionResultUpdate) AppendDetails(v []schema.ExerciseDetail) *SessionResultUpdate {
	_u.mutation.AppendDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *SessionResultUpdate) ClearDetails() *SessionResultUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the SessionResultMutation object of the builder.
func (_u *SessionResultUpdate) Mutation() *SessionResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionResultUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionresult.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionresult.Table, sessionresult.Columns, sqlgraph.NewFieldSpec(sessionresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionresult.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(sessionresult.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalExercises(); ok {
		_spec.SetField(sessionresult.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExercises(); ok {
		_spec.AddField(sessionresult.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestRun(); ok {
		_spec.SetField(sessionresult.FieldBestRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestRun(); ok {
		_spec.AddField(sessionresult.FieldBestRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(sessionresult.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(sessionresult.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(sessionresult.FieldDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionresult.FieldDetails, value)
		})
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(sessionresult.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionResultUpdateOne is the builder for updating a single SessionResult entity.
type SessionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionResultMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionResultUpdateOne) SetLearnerID(v string) *SessionResultUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableLearnerID(v *string) *SessionResultUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionResultUpdateOne) SetSessionID(v string) *SessionResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableSessionID(v *string) *SessionResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *SessionResultUpdateOne) SetSessionDate(v time.Time) *SessionResultUpdateOne {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableSessionDate(v *time.Time) *SessionResultUpdateOne {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetTotalExercises sets the "total_exercises" field.
func (_u *SessionResultUpdateOne) SetTotalExercises(v int) *SessionResultUpdateOne {
	_u.mutation.ResetTotalExercises()
	_u.mutation.SetTotalExercises(v)
	return _u
}

// SetNillableTotalExercises sets the "total_exercises" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableTotalExercises(v *int) *SessionResultUpdateOne {
	if v != nil {
		_u.SetTotalExercises(*v)
	}
	return _u
}

// AddTotalExercises adds value to the "total_exercises" field.
func (_u *SessionResultUpdateOne) AddTotalExercises(v int) *SessionResultUpdateOne {
	_u.mutation.AddTotalExercises(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionResultUpdateOne) SetCorrect(v int) *SessionResultUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableCorrect(v *int) *SessionResultUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionResultUpdateOne) AddCorrect(v int) *SessionResultUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetBestRun sets the "best_run" field.
func (_u *SessionResultUpdateOne) SetBestRun(v int) *SessionResultUpdateOne {
	_u.mutation.ResetBestRun()
	_u.mutation.SetBestRun(v)
	return _u
}

// SetNillableBestRun sets the "best_run" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableBestRun(v *int) *SessionResultUpdateOne {
	if v != nil {
		_u.SetBestRun(*v)
	}
	return _u
}

// AddBestRun adds value to the "best_run" field.
func (_u *SessionResultUpdateOne) AddBestRun(v int) *SessionResultUpdateOne {
	_u.mutation.AddBestRun(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *SessionResultUpdateOne) SetXpAwarded(v int) *SessionResultUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *SessionResultUpdateOne) SetNillableXpAwarded(v *int) *SessionResultUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *SessionResultUpdateOne) AddXpAwarded(v int) *SessionResultUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *SessionResultUpdateOne) SetDetails(v []schema.ExerciseDetail) *SessionResultUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// AppendDetails appends value to the "details" field.
func (_u *SessionResultUpdateOne) AppendDetails(v []schema.ExerciseDetail) *SessionResultUpdateOne {
	_u.mutation.AppendDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *SessionResultUpdateOne) ClearDetails() *SessionResultUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the SessionResultMutation object of the builder.
func (_u *SessionResultUpdateOne) Mutation() *SessionResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionResultUpdate builder.
func (_u *SessionResultUpdateOne) Where(ps ...predicate.SessionResult) *SessionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionResultUpdateOne) Select(field string, fields ...string) *SessionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionResult entity.
func (_u *SessionResultUpdateOne) Save(ctx context.Context) (*SessionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionResultUpdateOne) SaveX(ctx context.Context) *SessionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionResultUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionresult.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionResultUpdateOne) sqlSave(ctx context.Context) (_node *SessionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionresult.Table, sessionresult.Columns, sqlgraph.NewFieldSpec(sessionresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionresult.FieldID)
		for _, f := range fields {
			if !sessionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionresult.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(sessionresult.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalExercises(); ok {
		_spec.SetField(sessionresult.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalExercises(); ok {
		_spec.AddField(sessionresult.FieldTotalExercises, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionresult.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestRun(); ok {
		_spec.SetField(sessionresult.FieldBestRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestRun(); ok {
		_spec.AddField(sessionresult.FieldBestRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(sessionresult.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(sessionresult.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(sessionresult.FieldDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionresult.FieldDetails, value)
		})
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(sessionresult.FieldDetails, field.TypeJSON)
	}
	_node = &SessionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
