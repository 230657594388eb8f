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
	"github.com/vincentb/aurelie/ent/predicate"
	"github.com/vincentb/aurelie/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewItemUpdate) SetLearnerID(v string) *ReviewItemUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLearnerID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ReviewItemUpdate) SetKey(v string) *ReviewItemUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableKey(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewItemUpdate) SetTopic(v string) *ReviewItemUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableTopic(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReviewItemUpdate) SetKind(v string) *ReviewItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableKind(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewItemUpdate) SetStatus(v string) *ReviewItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableStatus(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdate) SetIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableIntervalDays(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdate) AddIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewItemUpdate) SetNextReview(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableNextReview(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTopStreak sets the "top_streak" field.
func (_u *ReviewItemUpdate) SetTopStreak(v int) *ReviewItemUpdate {
	_u.mutation.ResetTopStreak()
	_u.mutation.SetTopStreak(v)
	return _u
}

// SetNillableTopStreak sets the "top_streak" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableTopStreak(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetTopStreak(*v)
	}
	return _u
}

// AddTopStreak adds value to the "top_streak" field.
func (_u *ReviewItemUpdate) AddTopStreak(v int) *ReviewItemUpdate {
	_u.mutation.AddTopStreak(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewitem.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := reviewitem.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.key": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewitem.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(reviewitem.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reviewitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewitem.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TopStreak(); ok {
		_spec.SetField(reviewitem.FieldTopStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopStreak(); ok {
		_spec.AddField(reviewitem.FieldTopStreak, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewItemUpdateOne) SetLearnerID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLearnerID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ReviewItemUpdateOne) SetKey(v string) *ReviewItemUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableKey(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewItemUpdateOne) SetTopic(v string) *ReviewItemUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableTopic(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReviewItemUpdateOne) SetKind(v string) *ReviewItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableKind(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewItemUpdateOne) SetStatus(v string) *ReviewItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableStatus(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdateOne) SetIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableIntervalDays(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdateOne) AddIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewItemUpdateOne) SetNextReview(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableNextReview(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTopStreak sets the "top_streak" field.
func (_u *ReviewItemUpdateOne) SetTopStreak(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetTopStreak()
	_u.mutation.SetTopStreak(v)
	return _u
}

// SetNillableTopStreak sets the "top_streak" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableTopStreak(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetTopStreak(*v)
	}
	return _u
}

// AddTopStreak adds value to the "top_streak" field.
func (_u *ReviewItemUpdateOne) AddTopStreak(v int) *ReviewItemUpdateOne {
	_u.mutation.AddTopStreak(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewitem.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := reviewitem.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.key": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
		_spec.SetField(reviewitem.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(reviewitem.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reviewitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewitem.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TopStreak(); ok {
		_spec.SetField(reviewitem.FieldTopStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopStreak(); ok {
		_spec.AddField(reviewitem.FieldTopStreak, field.TypeInt, value)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
