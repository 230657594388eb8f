// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vincentb/aurelie/ent/errorpattern"
)

// ErrorPatternCreate is the builder for creating a ErrorPattern entity.
type ErrorPatternCreate struct {
	config
	mutation *ErrorPatternMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ErrorPatternCreate) SetLearnerID(v string) *ErrorPatternCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *ErrorPatternCreate) SetPattern(v string) *ErrorPatternCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetVerb sets the "verb" field.
func (_c *ErrorPatternCreate) SetVerb(v string) *ErrorPatternCreate {
	_c.mutation.SetVerb(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ErrorPatternCreate) SetDescription(v string) *ErrorPatternCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableDescription(v *string) *ErrorPatternCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetExample sets the "example" field.
func (_c *ErrorPatternCreate) SetExample(v string) *ErrorPatternCreate {
	_c.mutation.SetExample(v)
	return _c
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableExample(v *string) *ErrorPatternCreate {
	if v != nil {
		_c.SetExample(*v)
	}
	return _c
}

// SetOccurrences sets the "occurrences" field.
func (_c *ErrorPatternCreate) SetOccurrences(v int) *ErrorPatternCreate {
	_c.mutation.SetOccurrences(v)
	return _c
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableOccurrences(v *int) *ErrorPatternCreate {
	if v != nil {
		_c.SetOccurrences(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ErrorPatternCreate) SetStatus(v string) *ErrorPatternCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ErrorPatternCreate) SetNillableStatus(v *string) *ErrorPatternCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ErrorPatternCreate) SetLastSeen(v time.Time) *ErrorPatternCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_c *ErrorPatternCreate) Mutation() *ErrorPatternMutation {
	return _c.mutation
}

// Save creates the ErrorPattern in the database.
func (_c *ErrorPatternCreate) Save(ctx context.Context) (*ErrorPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorPatternCreate) SaveX(ctx context.Context) *ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorPatternCreate) defaults() {
	if _, ok := _c.mutation.Occurrences(); !ok {
		v := errorpattern.DefaultOccurrences
		_c.mutation.SetOccurrences(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := errorpattern.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorPatternCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ErrorPattern.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := errorpattern.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "ErrorPattern.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := errorpattern.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verb(); !ok {
		return &ValidationError{Name: "verb", err: errors.New(`ent: missing required field "ErrorPattern.verb"`)}
	}
	if _, ok := _c.mutation.Occurrences(); !ok {
		return &ValidationError{Name: "occurrences", err: errors.New(`ent: missing required field "ErrorPattern.occurrences"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ErrorPattern.status"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "ErrorPattern.last_seen"`)}
	}
	return nil
}

func (_c *ErrorPatternCreate) sqlSave(ctx context.Context) (*ErrorPattern, error) {
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

func (_c *ErrorPatternCreate) createSpec() (*ErrorPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorpattern.Table, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(errorpattern.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(errorpattern.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Verb(); ok {
		_spec.SetField(errorpattern.FieldVerb, field.TypeString, value)
		_node.Verb = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(errorpattern.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Example(); ok {
		_spec.SetField(errorpattern.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := _c.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
		_node.Occurrences = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(errorpattern.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// ErrorPatternCreateBulk is the builder for creating many ErrorPattern entities in bulk.
type ErrorPatternCreateBulk struct {
	config
	err      error
	builders []*ErrorPatternCreate
}

// Save creates the ErrorPattern entities in the database.
func (_c *ErrorPatternCreateBulk) Save(ctx context.Context) ([]*ErrorPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorPatternMutation)
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
func (_c *ErrorPatternCreateBulk) SaveX(ctx context.Context) []*ErrorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
