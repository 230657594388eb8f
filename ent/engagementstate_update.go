// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/ent/predicate"
)

// EngagementStateUpdate is the builder for updating EngagementState entities.
type EngagementStateUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementStateMutation
}

// Where appends a list predicates to the EngagementStateUpdate builder.
func (_u *EngagementStateUpdate) Where(ps ...predicate.EngagementState) *EngagementStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *EngagementStateUpdate) SetLearnerID(v string) *EngagementStateUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableLearnerID(v *string) *EngagementStateUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *EngagementStateUpdate) SetCurrentStreak(v int) *EngagementStateUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableCurrentStreak(v *int) *EngagementStateUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *EngagementStateUpdate) AddCurrentStreak(v int) *EngagementStateUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *EngagementStateUpdate) SetLongestStreak(v int) *EngagementStateUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableLongestStreak(v *int) *EngagementStateUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *EngagementStateUpdate) AddLongestStreak(v int) *EngagementStateUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastPractice sets the "last_practice" field.
func (_u *EngagementStateUpdate) SetLastPractice(v time.Time) *EngagementStateUpdate {
	_u.mutation.SetLastPractice(v)
	return _u
}

// SetNillableLastPractice sets the "last_practice" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableLastPractice(v *time.Time) *EngagementStateUpdate {
	if v != nil {
		_u.SetLastPractice(*v)
	}
	return _u
}

// ClearLastPractice clears the value of the "last_practice" field.
func (_u *EngagementStateUpdate) ClearLastPractice() *EngagementStateUpdate {
	_u.mutation.ClearLastPractice()
	return _u
}

// SetFreezeAvailable sets the "freeze_available" field.
func (_u *EngagementStateUpdate) SetFreezeAvailable(v bool) *EngagementStateUpdate {
	_u.mutation.SetFreezeAvailable(v)
	return _u
}

// SetNillableFreezeAvailable sets the "freeze_available" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableFreezeAvailable(v *bool) *EngagementStateUpdate {
	if v != nil {
		_u.SetFreezeAvailable(*v)
	}
	return _u
}

// SetFreezeUsed sets the "freeze_used" field.
func (_u *EngagementStateUpdate) SetFreezeUsed(v time.Time) *EngagementStateUpdate {
	_u.mutation.SetFreezeUsed(v)
	return _u
}

// SetNillableFreezeUsed sets the "freeze_used" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableFreezeUsed(v *time.Time) *EngagementStateUpdate {
	if v != nil {
		_u.SetFreezeUsed(*v)
	}
	return _u
}

// ClearFreezeUsed clears the value of the "freeze_used" field.
func (_u *EngagementStateUpdate) ClearFreezeUsed() *EngagementStateUpdate {
	_u.mutation.ClearFreezeUsed()
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *EngagementStateUpdate) SetTotalXp(v int) *EngagementStateUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *EngagementStateUpdate) SetNillableTotalXp(v *int) *EngagementStateUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *EngagementStateUpdate) AddTotalXp(v int) *EngagementStateUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// Mutation returns the EngagementStateMutation object of the builder.
func (_u *EngagementStateUpdate) Mutation() *EngagementStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementStateUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := engagementstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EngagementState.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementstate.Table, engagementstate.Columns, sqlgraph.NewFieldSpec(engagementstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(engagementstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(engagementstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(engagementstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(engagementstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(engagementstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPractice(); ok {
		_spec.SetField(engagementstate.FieldLastPractice, field.TypeTime, value)
	}
	if _u.mutation.LastPracticeCleared() {
		_spec.ClearField(engagementstate.FieldLastPractice, field.TypeTime)
	}
	if value, ok := _u.mutation.FreezeAvailable(); ok {
		_spec.SetField(engagementstate.FieldFreezeAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FreezeUsed(); ok {
		_spec.SetField(engagementstate.FieldFreezeUsed, field.TypeTime, value)
	}
	if _u.mutation.FreezeUsedCleared() {
		_spec.ClearField(engagementstate.FieldFreezeUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(engagementstate.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(engagementstate.FieldTotalXp, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementStateUpdateOne is the builder for updating a single EngagementState entity.
type EngagementStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementStateMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *EngagementStateUpdateOne) SetLearnerID(v string) *EngagementStateUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableLearnerID(v *string) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *EngagementStateUpdateOne) SetCurrentStreak(v int) *EngagementStateUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableCurrentStreak(v *int) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *EngagementStateUpdateOne) AddCurrentStreak(v int) *EngagementStateUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *EngagementStateUpdateOne) SetLongestStreak(v int) *EngagementStateUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableLongestStreak(v *int) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *EngagementStateUpdateOne) AddLongestStreak(v int) *EngagementStateUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastPractice sets the "last_practice" field.
func (_u *EngagementStateUpdateOne) SetLastPractice(v time.Time) *EngagementStateUpdateOne {
	_u.mutation.SetLastPractice(v)
	return _u
}

// SetNillableLastPractice sets the "last_practice" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableLastPractice(v *time.Time) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetLastPractice(*v)
	}
	return _u
}

// ClearLastPractice clears the value of the "last_practice" field.
func (_u *EngagementStateUpdateOne) ClearLastPractice() *EngagementStateUpdateOne {
	_u.mutation.ClearLastPractice()
	return _u
}

// SetFreezeAvailable sets the "freeze_available" field.
func (_u *EngagementStateUpdateOne) SetFreezeAvailable(v bool) *EngagementStateUpdateOne {
	_u.mutation.SetFreezeAvailable(v)
	return _u
}

// SetNillableFreezeAvailable sets the "freeze_available" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableFreezeAvailable(v *bool) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetFreezeAvailable(*v)
	}
	return _u
}

// SetFreezeUsed sets the "freeze_used" field.
func (_u *EngagementStateUpdateOne) SetFreezeUsed(v time.Time) *EngagementStateUpdateOne {
	_u.mutation.SetFreezeUsed(v)
	return _u
}

// SetNillableFreezeUsed sets the "freeze_used" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableFreezeUsed(v *time.Time) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetFreezeUsed(*v)
	}
	return _u
}

// ClearFreezeUsed clears the value of the "freeze_used" field.
func (_u *EngagementStateUpdateOne) ClearFreezeUsed() *EngagementStateUpdateOne {
	_u.mutation.ClearFreezeUsed()
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *EngagementStateUpdateOne) SetTotalXp(v int) *EngagementStateUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *EngagementStateUpdateOne) SetNillableTotalXp(v *int) *EngagementStateUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *EngagementStateUpdateOne) AddTotalXp(v int) *EngagementStateUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// Mutation returns the EngagementStateMutation object of the builder.
func (_u *EngagementStateUpdateOne) Mutation() *EngagementStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementStateUpdate builder.
func (_u *EngagementStateUpdateOne) Where(ps ...predicate.EngagementState) *EngagementStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementStateUpdateOne) Select(field string, fields ...string) *EngagementStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementState entity.
func (_u *EngagementStateUpdateOne) Save(ctx context.Context) (*EngagementState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementStateUpdateOne) SaveX(ctx context.Context) *EngagementState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementStateUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := engagementstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EngagementState.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EngagementStateUpdateOne) sqlSave(ctx context.Context) (_node *EngagementState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementstate.Table, engagementstate.Columns, sqlgraph.NewFieldSpec(engagementstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementstate.FieldID)
		for _, f := range fields {
			if !engagementstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementstate.FieldID {
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
		_spec.SetField(engagementstate.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(engagementstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(engagementstate.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(engagementstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(engagementstate.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPractice(); ok {
		_spec.SetField(engagementstate.FieldLastPractice, field.TypeTime, value)
	}
	if _u.mutation.LastPracticeCleared() {
		_spec.ClearField(engagementstate.FieldLastPractice, field.TypeTime)
	}
	if value, ok := _u.mutation.FreezeAvailable(); ok {
		_spec.SetField(engagementstate.FieldFreezeAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FreezeUsed(); ok {
		_spec.SetField(engagementstate.FieldFreezeUsed, field.TypeTime, value)
	}
	if _u.mutation.FreezeUsedCleared() {
		_spec.ClearField(engagementstate.FieldFreezeUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(engagementstate.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(engagementstate.FieldTotalXp, field.TypeInt, value)
	}
	_node = &EngagementState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
