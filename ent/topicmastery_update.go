// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/predicate"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

// TopicMasteryUpdate is the builder for updating TopicMastery entities.
type TopicMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdate) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TopicMasteryUpdate) SetLearnerID(v string) *TopicMasteryUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableLearnerID(v *string) *TopicMasteryUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *TopicMasteryUpdate) SetTopicKey(v string) *TopicMasteryUpdate {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTopicKey(v *string) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TopicMasteryUpdate) SetTotalAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTotalAttempts(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TopicMasteryUpdate) AddTotalAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *TopicMasteryUpdate) SetCorrectAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableCorrectAttempts(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *TopicMasteryUpdate) AddCorrectAttempts(v int) *TopicMasteryUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdate) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := topicmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := topicmastery.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := topicmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAttempts(); ok {
		if err := topicmastery.CorrectAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "correct_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(topicmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(topicmastery.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(topicmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(topicmastery.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(topicmastery.FieldCorrectAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicMasteryUpdateOne is the builder for updating a single TopicMastery entity.
type TopicMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *TopicMasteryUpdateOne) SetLearnerID(v string) *TopicMasteryUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableLearnerID(v *string) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *TopicMasteryUpdateOne) SetTopicKey(v string) *TopicMasteryUpdateOne {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTopicKey(v *string) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *TopicMasteryUpdateOne) SetTotalAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTotalAttempts(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *TopicMasteryUpdateOne) AddTotalAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *TopicMasteryUpdateOne) SetCorrectAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableCorrectAttempts(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *TopicMasteryUpdateOne) AddCorrectAttempts(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdateOne) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdateOne) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicMasteryUpdateOne) Select(field string, fields ...string) *TopicMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicMastery entity.
func (_u *TopicMasteryUpdateOne) Save(ctx context.Context) (*TopicMastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) SaveX(ctx context.Context) *TopicMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := topicmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := topicmastery.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := topicmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAttempts(); ok {
		if err := topicmastery.CorrectAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "correct_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdateOne) sqlSave(ctx context.Context) (_node *TopicMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicmastery.FieldID)
		for _, f := range fields {
			if !topicmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicmastery.FieldID {
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
		_spec.SetField(topicmastery.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(topicmastery.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(topicmastery.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(topicmastery.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(topicmastery.FieldCorrectAttempts, field.TypeInt, value)
	}
	_node = &TopicMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
