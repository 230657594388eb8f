// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
)

// SessionResultCreate is the builder for creating a SessionResult entity.
type SessionResultCreate struct {
	config
	mutation *SessionResultMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *SessionResultCreate) SetLearnerID(v string) *SessionResultCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionResultCreate) SetSessionID(v string) *SessionResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSessionDate sets the "session_date" field.
func (_c *SessionResultCreate) SetSessionDate(v time.Time) *SessionResultCreate {
	_c.mutation.SetSessionDate(v)
	return _c
}

// SetTotalExercises sets the "total_exercises" field.
func (_c *SessionResultCreate) SetTotalExercises(v int) *SessionResultCreate {
	_c.mutation.SetTotalExercises(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SessionResultCreate) SetCorrect(v int) *SessionResultCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetBestRun sets the "best_run" field.
func (_c *SessionResultCreate) SetBestRun(v int) *SessionResultCreate {
	_c.mutation.SetBestRun(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *SessionResultCreate) SetXpAwarded(v int) *SessionResultCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *SessionResultCreate) SetDetails(v []schema.ExerciseDetail) *SessionResultCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// Mutation returns the SessionResultMutation object of the builder.
func (_c *SessionResultCreate) Mutation() *SessionResultMutation {
	return _c.mutation
}

// Save creates the SessionResult in the database.
func (_c *SessionResultCreate) Save(ctx context.Context) (*SessionResult, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionResultCreate) SaveX(ctx context.Context) *SessionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionResultCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionResult.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sessionresult.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionDate(); !ok {
		return &ValidationError{Name: "session_date", err: errors.New(`ent: missing required field "SessionResult.session_date"`)}
	}
	if _, ok := _c.mutation.TotalExercises(); !ok {
		return &ValidationError{Name: "total_exercises", err: errors.New(`ent: missing required field "SessionResult.total_exercises"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SessionResult.correct"`)}
	}
	if _, ok := _c.mutation.BestRun(); !ok {
		return &ValidationError{Name: "best_run", err: errors.New(`ent: missing required field "SessionResult.best_run"`)}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "SessionResult.xp_awarded"`)}
	}
	return nil
}

func (_c *SessionResultCreate) sqlSave(ctx context.Context) (*SessionResult, error) {
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

func (_c *SessionResultCreate) createSpec() (*SessionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionresult.Table, sqlgraph.NewFieldSpec(sessionresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sessionresult.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SessionDate(); ok {
		_spec.SetField(sessionresult.FieldSessionDate, field.TypeTime, value)
		_node.SessionDate = value
	}
	if value, ok := _c.mutation.TotalExercises(); ok {
		_spec.SetField(sessionresult.FieldTotalExercises, field.TypeInt, value)
		_node.TotalExercises = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(sessionresult.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.BestRun(); ok {
		_spec.SetField(sessionresult.FieldBestRun, field.TypeInt, value)
		_node.BestRun = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(sessionresult.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(sessionresult.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// SessionResultCreateBulk is the builder for creating many SessionResult entities in bulk.
type SessionResultCreateBulk struct {
	config
	err      error
	builders []*SessionResultCreate
}

// Save creates the SessionResult entities in the database.
func (_c *SessionResultCreateBulk) Save(ctx context.Context) ([]*SessionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionResultMutation)
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
func (_c *SessionResultCreateBulk) SaveX(ctx context.Context) []*SessionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
