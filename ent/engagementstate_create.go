// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/engagementstate"
)

// EngagementStateCreate is the builder for creating a EngagementState entity.
type EngagementStateCreate struct {
	config
	mutation *EngagementStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *EngagementStateCreate) SetLearnerID(v string) *EngagementStateCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *EngagementStateCreate) SetCurrentStreak(v int) *EngagementStateCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableCurrentStreak(v *int) *EngagementStateCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *EngagementStateCreate) SetLongestStreak(v int) *EngagementStateCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableLongestStreak(v *int) *EngagementStateCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetLastPractice sets the "last_practice" field.
func (_c *EngagementStateCreate) SetLastPractice(v time.Time) *EngagementStateCreate {
	_c.mutation.SetLastPractice(v)
	return _c
}

// SetNillableLastPractice sets the "last_practice" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableLastPractice(v *time.Time) *EngagementStateCreate {
	if v != nil {
		_c.SetLastPractice(*v)
	}
	return _c
}

// SetFreezeAvailable sets the "freeze_available" field.
func (_c *EngagementStateCreate) SetFreezeAvailable(v bool) *EngagementStateCreate {
	_c.mutation.SetFreezeAvailable(v)
	return _c
}

// SetNillableFreezeAvailable sets the "freeze_available" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableFreezeAvailable(v *bool) *EngagementStateCreate {
	if v != nil {
		_c.SetFreezeAvailable(*v)
	}
	return _c
}

// SetFreezeUsed sets the "freeze_used" field.
func (_c *EngagementStateCreate) SetFreezeUsed(v time.Time) *EngagementStateCreate {
	_c.mutation.SetFreezeUsed(v)
	return _c
}

// SetNillableFreezeUsed sets the "freeze_used" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableFreezeUsed(v *time.Time) *EngagementStateCreate {
	if v != nil {
		_c.SetFreezeUsed(*v)
	}
	return _c
}

// SetTotalXp sets the "total_xp" field.
func (_c *EngagementStateCreate) SetTotalXp(v int) *EngagementStateCreate {
	_c.mutation.SetTotalXp(v)
	return _c
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_c *EngagementStateCreate) SetNillableTotalXp(v *int) *EngagementStateCreate {
	if v != nil {
		_c.SetTotalXp(*v)
	}
	return _c
}

// Mutation returns the EngagementStateMutation object of the builder.
func (_c *EngagementStateCreate) Mutation() *EngagementStateMutation {
	return _c.mutation
}

// Save creates the EngagementState in the database.
func (_c *EngagementStateCreate) Save(ctx context.Context) (*EngagementState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementStateCreate) SaveX(ctx context.Context) *EngagementState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementStateCreate) defaults() {
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := engagementstate.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := engagementstate.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.FreezeAvailable(); !ok {
		v := engagementstate.DefaultFreezeAvailable
		_c.mutation.SetFreezeAvailable(v)
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		v := engagementstate.DefaultTotalXp
		_c.mutation.SetTotalXp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementStateCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "EngagementState.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := engagementstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EngagementState.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "EngagementState.current_streak"`)}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "EngagementState.longest_streak"`)}
	}
	if _, ok := _c.mutation.FreezeAvailable(); !ok {
		return &ValidationError{Name: "freeze_available", err: errors.New(`ent: missing required field "EngagementState.freeze_available"`)}
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		return &ValidationError{Name: "total_xp", err: errors.New(`ent: missing required field "EngagementState.total_xp"`)}
	}
	return nil
}

func (_c *EngagementStateCreate) sqlSave(ctx context.Context) (*EngagementState, error) {
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

func (_c *EngagementStateCreate) createSpec() (*EngagementState, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementstate.Table, sqlgraph.NewFieldSpec(engagementstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(engagementstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(engagementstate.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(engagementstate.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastPractice(); ok {
		_spec.SetField(engagementstate.FieldLastPractice, field.TypeTime, value)
		_node.LastPractice = &value
	}
	if value, ok := _c.mutation.FreezeAvailable(); ok {
		_spec.SetField(engagementstate.FieldFreezeAvailable, field.TypeBool, value)
		_node.FreezeAvailable = value
	}
	if value, ok := _c.mutation.FreezeUsed(); ok {
		_spec.SetField(engagementstate.FieldFreezeUsed, field.TypeTime, value)
		_node.FreezeUsed = &value
	}
	if value, ok := _c.mutation.TotalXp(); ok {
		_spec.SetField(engagementstate.FieldTotalXp, field.TypeInt, value)
		_node.TotalXp = value
	}
	return _node, _spec
}

// EngagementStateCreateBulk is the builder for creating many EngagementState entities in bulk.
type EngagementStateCreateBulk struct {
	config
	err      error
	builders []*EngagementStateCreate
}

// Save creates the EngagementState entities in the database.
func (_c *EngagementStateCreateBulk) Save(ctx context.Context) ([]*EngagementState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementStateMutation)
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
func (_c *EngagementStateCreateBulk) SaveX(ctx context.Context) []*EngagementState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
