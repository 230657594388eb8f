// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

// TopicMasteryCreate is the builder for creating a TopicMastery entity.
type TopicMasteryCreate struct {
	config
	mutation *TopicMasteryMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *TopicMasteryCreate) SetLearnerID(v string) *TopicMasteryCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopicKey sets the "topic_key" field.
func (_c *TopicMasteryCreate) SetTopicKey(v string) *TopicMasteryCreate {
	_c.mutation.SetTopicKey(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *TopicMasteryCreate) SetTotalAttempts(v int) *TopicMasteryCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableTotalAttempts(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *TopicMasteryCreate) SetCorrectAttempts(v int) *TopicMasteryCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableCorrectAttempts(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_c *TopicMasteryCreate) Mutation() *TopicMasteryMutation {
	return _c.mutation
}

// Save creates the TopicMastery in the database.
func (_c *TopicMasteryCreate) Save(ctx context.Context) (*TopicMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicMasteryCreate) SaveX(ctx context.Context) *TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicMasteryCreate) defaults() {
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := topicmastery.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := topicmastery.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicMasteryCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TopicMastery.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := topicmastery.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicKey(); !ok {
		return &ValidationError{Name: "topic_key", err: errors.New(`ent: missing required field "TopicMastery.topic_key"`)}
	}
	if v, ok := _c.mutation.TopicKey(); ok {
		if err := topicmastery.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "TopicMastery.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := topicmastery.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "TopicMastery.correct_attempts"`)}
	}
	if v, ok := _c.mutation.CorrectAttempts(); ok {
		if err := topicmastery.CorrectAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "correct_attempts", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.correct_attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *TopicMasteryCreate) sqlSave(ctx context.Context) (*TopicMastery, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicMasteryCreate) createSpec() (*TopicMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicmastery.Table, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(topicmastery.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.TopicKey(); ok {
		_spec.SetField(topicmastery.FieldTopicKey, field.TypeString, value)
		_node.TopicKey = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(topicmastery.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	return _node, _spec
}

// TopicMasteryCreateBulk is the builder for creating many TopicMastery entities in bulk.
type TopicMasteryCreateBulk struct {
	config
	err      error
	builders []*TopicMasteryCreate
}

// Save creates the TopicMastery entities in the database.
func (_c *TopicMasteryCreateBulk) Save(ctx context.Context) ([]*TopicMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMasteryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TopicMasteryCreateBulk) SaveX(ctx context.Context) []*TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
