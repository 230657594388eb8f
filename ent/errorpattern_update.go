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
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/ent/predicate"
)

// ErrorPatternUpdate is the builder for updating ErrorPattern entities.
type ErrorPatternUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdate) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ErrorPatternUpdate) SetLearnerID(v string) *ErrorPatternUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableLearnerID(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ErrorPatternUpdate) SetPattern(v string) *ErrorPatternUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillablePattern(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetVerb sets the "verb" field.
func (_u *ErrorPatternUpdate) SetVerb(v string) *ErrorPatternUpdate {
	_u.mutation.SetVerb(v)
	return _u
}

// SetNillableVerb sets the "verb" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableVerb(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetVerb(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ErrorPatternUpdate) SetDescription(v string) *ErrorPatternUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableDescription(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ErrorPatternUpdate) ClearDescription() *ErrorPatternUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetExample sets the "example" field.
func (_u *ErrorPatternUpdate) SetExample(v string) *ErrorPatternUpdate {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableExample(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *ErrorPatternUpdate) ClearExample() *ErrorPatternUpdate {
	_u.mutation.ClearExample()
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *ErrorPatternUpdate) SetOccurrences(v int) *ErrorPatternUpdate {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableOccurrences(v *int) *ErrorPatternUpdate {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *ErrorPatternUpdate) AddOccurrences(v int) *ErrorPatternUpdate {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ErrorPatternUpdate) SetStatus(v string) *ErrorPatternUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableStatus(v *string) *ErrorPatternUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ErrorPatternUpdate) SetLastSeen(v time.Time) *ErrorPatternUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ErrorPatternUpdate) SetNillableLastSeen(v *time.Time) *ErrorPatternUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdate) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := errorpattern.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := errorpattern.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(errorpattern.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(errorpattern.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verb(); ok {
		_spec.SetField(errorpattern.FieldVerb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(errorpattern.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(errorpattern.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(errorpattern.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(errorpattern.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(errorpattern.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorPatternUpdateOne is the builder for updating a single ErrorPattern entity.
type ErrorPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorPatternMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ErrorPatternUpdateOne) SetLearnerID(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableLearnerID(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *ErrorPatternUpdateOne) SetPattern(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillablePattern(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetVerb sets the "verb" field.
func (_u *ErrorPatternUpdateOne) SetVerb(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetVerb(v)
	return _u
}

// SetNillableVerb sets the "verb" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableVerb(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetVerb(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ErrorPatternUpdateOne) SetDescription(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableDescription(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ErrorPatternUpdateOne) ClearDescription() *ErrorPatternUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetExample sets the "example" field.
func (_u *ErrorPatternUpdateOne) SetExample(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetExample(v)
	return _u
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableExample(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetExample(*v)
	}
	return _u
}

// ClearExample clears the value of the "example" field.
func (_u *ErrorPatternUpdateOne) ClearExample() *ErrorPatternUpdateOne {
	_u.mutation.ClearExample()
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *ErrorPatternUpdateOne) SetOccurrences(v int) *ErrorPatternUpdateOne {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableOccurrences(v *int) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *ErrorPatternUpdateOne) AddOccurrences(v int) *ErrorPatternUpdateOne {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ErrorPatternUpdateOne) SetStatus(v string) *ErrorPatternUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableStatus(v *string) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ErrorPatternUpdateOne) SetLastSeen(v time.Time) *ErrorPatternUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ErrorPatternUpdateOne) SetNillableLastSeen(v *time.Time) *ErrorPatternUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ErrorPatternMutation object of the builder.
func (_u *ErrorPatternUpdateOne) Mutation() *ErrorPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorPatternUpdate builder.
func (_u *ErrorPatternUpdateOne) Where(ps ...predicate.ErrorPattern) *ErrorPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorPatternUpdateOne) Select(field string, fields ...string) *ErrorPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorPattern entity.
func (_u *ErrorPatternUpdateOne) Save(ctx context.Context) (*ErrorPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) SaveX(ctx context.Context) *ErrorPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ErrorPatternUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := errorpattern.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pattern(); ok {
		if err := errorpattern.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ErrorPattern.pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *ErrorPatternUpdateOne) sqlSave(ctx context.Context) (_node *ErrorPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(errorpattern.Table, errorpattern.Columns, sqlgraph.NewFieldSpec(errorpattern.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorpattern.FieldID)
		for _, f := range fields {
			if !errorpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorpattern.FieldID {
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
		_spec.SetField(errorpattern.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(errorpattern.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verb(); ok {
		_spec.SetField(errorpattern.FieldVerb, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(errorpattern.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(errorpattern.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Example(); ok {
		_spec.SetField(errorpattern.FieldExample, field.TypeString, value)
	}
	if _u.mutation.ExampleCleared() {
		_spec.ClearField(errorpattern.FieldExample, field.TypeString)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(errorpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(errorpattern.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(errorpattern.FieldLastSeen, field.TypeTime, value)
	}
	_node = &ErrorPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
