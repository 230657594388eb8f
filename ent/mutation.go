// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/achievement"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/ent/predicate"
	"github.com/vincentb/aurelie/ent/reviewitem"
	"github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement     = "Achievement"
	TypeEngagementState = "EngagementState"
	TypeErrorPattern    = "ErrorPattern"
	TypeReviewItem      = "ReviewItem"
	TypeSessionResult   = "SessionResult"
	TypeTopicMastery    = "TopicMastery"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	key           *string
	unlocked_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Achievement, error)
	predicates    []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id int) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *AchievementMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AchievementMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AchievementMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKey sets the "key" field.
func (m *AchievementMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AchievementMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *AchievementMutation) ResetKey() {
	m.key = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *AchievementMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *AchievementMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *AchievementMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner_id != nil {
		fields = append(fields, achievement.FieldLearnerID)
	}
	if m.key != nil {
		fields = append(fields, achievement.FieldKey)
	}
	if m.unlocked_at != nil {
		fields = append(fields, achievement.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldLearnerID:
		return m.LearnerID()
	case achievement.FieldKey:
		return m.Key()
	case achievement.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case achievement.FieldKey:
		return m.OldKey(ctx)
	case achievement.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case achievement.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case achievement.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case achievement.FieldKey:
		m.ResetKey()
		return nil
	case achievement.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// EngagementStateMutation represents an operation that mutates the EngagementState nodes in the graph.
type EngagementStateMutation struct {
	config
	op                Op
	typ               string
	id                *int
	learner_id        *string
	current_streak    *int
	addcurrent_streak *int
	longest_streak    *int
	addlongest_streak *int
	last_practice     *time.Time
	freeze_available  *bool
	freeze_used       *time.Time
	total_xp          *int
	addtotal_xp       *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EngagementState, error)
	predicates        []predicate.EngagementState
}

var _ ent.Mutation = (*EngagementStateMutation)(nil)

// engagementstateOption allows management of the mutation configuration using functional options.
type engagementstateOption func(*EngagementStateMutation)

// newEngagementStateMutation creates new mutation for the EngagementState entity.
func newEngagementStateMutation(c config, op Op, opts ...engagementstateOption) *EngagementStateMutation {
	m := &EngagementStateMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagementState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementStateID sets the ID field of the mutation.
func withEngagementStateID(id int) engagementstateOption {
	return func(m *EngagementStateMutation) {
		var (
			err   error
			once  sync.Once
			value *EngagementState
		)
		m.oldValue = func(ctx context.Context) (*EngagementState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngagementState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagementState sets the old EngagementState of the mutation.
func withEngagementState(node *EngagementState) engagementstateOption {
	return func(m *EngagementStateMutation) {
		m.oldValue = func(context.Context) (*EngagementState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngagementState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *EngagementStateMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *EngagementStateMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *EngagementStateMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetCurrentStreak sets the "current_streak" field.
func (m *EngagementStateMutation) SetCurrentStreak(i int) {
	m.current_streak = &i
	m.addcurrent_streak = nil
}

// CurrentStreak returns the value of the "current_streak" field in the mutation.
func (m *EngagementStateMutation) CurrentStreak() (r int, exists bool) {
	v := m.current_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreak returns the old "current_streak" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldCurrentStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreak: %w", err)
	}
	return oldValue.CurrentStreak, nil
}

// AddCurrentStreak adds i to the "current_streak" field.
func (m *EngagementStateMutation) AddCurrentStreak(i int) {
	if m.addcurrent_streak != nil {
		*m.addcurrent_streak += i
	} else {
		m.addcurrent_streak = &i
	}
}

// AddedCurrentStreak returns the value that was added to the "current_streak" field in this mutation.
func (m *EngagementStateMutation) AddedCurrentStreak() (r int, exists bool) {
	v := m.addcurrent_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreak resets all changes to the "current_streak" field.
func (m *EngagementStateMutation) ResetCurrentStreak() {
	m.current_streak = nil
	m.addcurrent_streak = nil
}

// SetLongestStreak sets the "longest_streak" field.
func (m *EngagementStateMutation) SetLongestStreak(i int) {
	m.longest_streak = &i
	m.addlongest_streak = nil
}

// LongestStreak returns the value of the "longest_streak" field in the mutation.
func (m *EngagementStateMutation) LongestStreak() (r int, exists bool) {
	v := m.longest_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreak returns the old "longest_streak" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldLongestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreak: %w", err)
	}
	return oldValue.LongestStreak, nil
}

// AddLongestStreak adds i to the "longest_streak" field.
func (m *EngagementStateMutation) AddLongestStreak(i int) {
	if m.addlongest_streak != nil {
		*m.addlongest_streak += i
	} else {
		m.addlongest_streak = &i
	}
}

// AddedLongestStreak returns the value that was added to the "longest_streak" field in this mutation.
func (m *EngagementStateMutation) AddedLongestStreak() (r int, exists bool) {
	v := m.addlongest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreak resets all changes to the "longest_streak" field.
func (m *EngagementStateMutation) ResetLongestStreak() {
	m.longest_streak = nil
	m.addlongest_streak = nil
}

// SetLastPractice sets the "last_practice" field.
func (m *EngagementStateMutation) SetLastPractice(t time.Time) {
	m.last_practice = &t
}

// LastPractice returns the value of the "last_practice" field in the mutation.
func (m *EngagementStateMutation) LastPractice() (r time.Time, exists bool) {
	v := m.last_practice
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPractice returns the old "last_practice" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldLastPractice(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPractice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPractice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPractice: %w", err)
	}
	return oldValue.LastPractice, nil
}

// ClearLastPractice clears the value of the "last_practice" field.
func (m *EngagementStateMutation) ClearLastPractice() {
	m.last_practice = nil
	m.clearedFields[engagementstate.FieldLastPractice] = struct{}{}
}

// LastPracticeCleared returns if the "last_practice" field was cleared in this mutation.
func (m *EngagementStateMutation) LastPracticeCleared() bool {
	_, ok := m.clearedFields[engagementstate.FieldLastPractice]
	return ok
}

// ResetLastPractice resets all changes to the "last_practice" field.
func (m *EngagementStateMutation) ResetLastPractice() {
	m.last_practice = nil
	delete(m.clearedFields, engagementstate.FieldLastPractice)
}

// SetFreezeAvailable sets the "freeze_available" field.
func (m *EngagementStateMutation) SetFreezeAvailable(b bool) {
	m.freeze_available = &b
}

// FreezeAvailable returns the value of the "freeze_available" field in the mutation.
func (m *EngagementStateMutation) FreezeAvailable() (r bool, exists bool) {
	v := m.freeze_available
	if v == nil {
		return
	}
	return *v, true
}

// OldFreezeAvailable returns the old "freeze_available" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldFreezeAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreezeAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreezeAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreezeAvailable: %w", err)
	}
	return oldValue.FreezeAvailable, nil
}

// ResetFreezeAvailable resets all changes to the "freeze_available" field.
func (m *EngagementStateMutation) ResetFreezeAvailable() {
	m.freeze_available = nil
}

// SetFreezeUsed sets the "freeze_used" field.
func (m *EngagementStateMutation) SetFreezeUsed(t time.Time) {
	m.freeze_used = &t
}

// FreezeUsed returns the value of the "freeze_used" field in the mutation.
func (m *EngagementStateMutation) FreezeUsed() (r time.Time, exists bool) {
	v := m.freeze_used
	if v == nil {
		return
	}
	return *v, true
}

// OldFreezeUsed returns the old "freeze_used" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldFreezeUsed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreezeUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreezeUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreezeUsed: %w", err)
	}
	return oldValue.FreezeUsed, nil
}

// ClearFreezeUsed clears the value of the "freeze_used" field.
func (m *EngagementStateMutation) ClearFreezeUsed() {
	m.freeze_used = nil
	m.clearedFields[engagementstate.FieldFreezeUsed] = struct{}{}
}

// FreezeUsedCleared returns if the "freeze_used" field was cleared in this mutation.
func (m *EngagementStateMutation) FreezeUsedCleared() bool {
	_, ok := m.clearedFields[engagementstate.FieldFreezeUsed]
	return ok
}

// ResetFreezeUsed resets all changes to the "freeze_used" field.
func (m *EngagementStateMutation) ResetFreezeUsed() {
	m.freeze_used = nil
	delete(m.clearedFields, engagementstate.FieldFreezeUsed)
}

// SetTotalXp sets the "total_xp" field.
func (m *EngagementStateMutation) SetTotalXp(i int) {
	m.total_xp = &i
	m.addtotal_xp = nil
}

// TotalXp returns the value of the "total_xp" field in the mutation.
func (m *EngagementStateMutation) TotalXp() (r int, exists bool) {
	v := m.total_xp
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalXp returns the old "total_xp" field's value of the EngagementState entity.
// If the EngagementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementStateMutation) OldTotalXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalXp: %w", err)
	}
	return oldValue.TotalXp, nil
}

// AddTotalXp adds i to the "total_xp" field.
func (m *EngagementStateMutation) AddTotalXp(i int) {
	if m.addtotal_xp != nil {
		*m.addtotal_xp += i
	} else {
		m.addtotal_xp = &i
	}
}

// AddedTotalXp returns the value that was added to the "total_xp" field in this mutation.
func (m *EngagementStateMutation) AddedTotalXp() (r int, exists bool) {
	v := m.addtotal_xp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalXp resets all changes to the "total_xp" field.
func (m *EngagementStateMutation) ResetTotalXp() {
	m.total_xp = nil
	m.addtotal_xp = nil
}

// Where appends a list predicates to the EngagementStateMutation builder.
func (m *EngagementStateMutation) Where(ps ...predicate.EngagementState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngagementState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngagementState).
func (m *EngagementStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementStateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.learner_id != nil {
		fields = append(fields, engagementstate.FieldLearnerID)
	}
	if m.current_streak != nil {
		fields = append(fields, engagementstate.FieldCurrentStreak)
	}
	if m.longest_streak != nil {
		fields = append(fields, engagementstate.FieldLongestStreak)
	}
	if m.last_practice != nil {
		fields = append(fields, engagementstate.FieldLastPractice)
	}
	if m.freeze_available != nil {
		fields = append(fields, engagementstate.FieldFreezeAvailable)
	}
	if m.freeze_used != nil {
		fields = append(fields, engagementstate.FieldFreezeUsed)
	}
	if m.total_xp != nil {
		fields = append(fields, engagementstate.FieldTotalXp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagementstate.FieldLearnerID:
		return m.LearnerID()
	case engagementstate.FieldCurrentStreak:
		return m.CurrentStreak()
	case engagementstate.FieldLongestStreak:
		return m.LongestStreak()
	case engagementstate.FieldLastPractice:
		return m.LastPractice()
	case engagementstate.FieldFreezeAvailable:
		return m.FreezeAvailable()
	case engagementstate.FieldFreezeUsed:
		return m.FreezeUsed()
	case engagementstate.FieldTotalXp:
		return m.TotalXp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagementstate.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case engagementstate.FieldCurrentStreak:
		return m.OldCurrentStreak(ctx)
	case engagementstate.FieldLongestStreak:
		return m.OldLongestStreak(ctx)
	case engagementstate.FieldLastPractice:
		return m.OldLastPractice(ctx)
	case engagementstate.FieldFreezeAvailable:
		return m.OldFreezeAvailable(ctx)
	case engagementstate.FieldFreezeUsed:
		return m.OldFreezeUsed(ctx)
	case engagementstate.FieldTotalXp:
		return m.OldTotalXp(ctx)
	}
	return nil, fmt.Errorf("unknown EngagementState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagementstate.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case engagementstate.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreak(v)
		return nil
	case engagementstate.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreak(v)
		return nil
	case engagementstate.FieldLastPractice:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPractice(v)
		return nil
	case engagementstate.FieldFreezeAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreezeAvailable(v)
		return nil
	case engagementstate.FieldFreezeUsed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreezeUsed(v)
		return nil
	case engagementstate.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalXp(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementStateMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_streak != nil {
		fields = append(fields, engagementstate.FieldCurrentStreak)
	}
	if m.addlongest_streak != nil {
		fields = append(fields, engagementstate.FieldLongestStreak)
	}
	if m.addtotal_xp != nil {
		fields = append(fields, engagementstate.FieldTotalXp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case engagementstate.FieldCurrentStreak:
		return m.AddedCurrentStreak()
	case engagementstate.FieldLongestStreak:
		return m.AddedLongestStreak()
	case engagementstate.FieldTotalXp:
		return m.AddedTotalXp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case engagementstate.FieldCurrentStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreak(v)
		return nil
	case engagementstate.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreak(v)
		return nil
	case engagementstate.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalXp(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagementstate.FieldLastPractice) {
		fields = append(fields, engagementstate.FieldLastPractice)
	}
	if m.FieldCleared(engagementstate.FieldFreezeUsed) {
		fields = append(fields, engagementstate.FieldFreezeUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementStateMutation) ClearField(name string) error {
	switch name {
	case engagementstate.FieldLastPractice:
		m.ClearLastPractice()
		return nil
	case engagementstate.FieldFreezeUsed:
		m.ClearFreezeUsed()
		return nil
	}
	return fmt.Errorf("unknown EngagementState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementStateMutation) ResetField(name string) error {
	switch name {
	case engagementstate.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case engagementstate.FieldCurrentStreak:
		m.ResetCurrentStreak()
		return nil
	case engagementstate.FieldLongestStreak:
		m.ResetLongestStreak()
		return nil
	case engagementstate.FieldLastPractice:
		m.ResetLastPractice()
		return nil
	case engagementstate.FieldFreezeAvailable:
		m.ResetFreezeAvailable()
		return nil
	case engagementstate.FieldFreezeUsed:
		m.ResetFreezeUsed()
		return nil
	case engagementstate.FieldTotalXp:
		m.ResetTotalXp()
		return nil
	}
	return fmt.Errorf("unknown EngagementState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EngagementState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EngagementState edge %s", name)
}

// ErrorPatternMutation represents an operation that mutates the ErrorPattern nodes in the graph.
type ErrorPatternMutation struct {
	config
	op             Op
	typ            string
	id             *int
	learner_id     *string
	pattern        *string
	verb           *string
	description    *string
	example        *string
	occurrences    *int
	addoccurrences *int
	status         *string
	last_seen      *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ErrorPattern, error)
	predicates     []predicate.ErrorPattern
}

var _ ent.Mutation = (*ErrorPatternMutation)(nil)

// errorpatternOption allows management of the mutation configuration using functional options.
type errorpatternOption func(*ErrorPatternMutation)

// newErrorPatternMutation creates new mutation for the ErrorPattern entity.
func newErrorPatternMutation(c config, op Op, opts ...errorpatternOption) *ErrorPatternMutation {
	m := &ErrorPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorPatternID sets the ID field of the mutation.
func withErrorPatternID(id int) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorPattern
		)
		m.oldValue = func(ctx context.Context) (*ErrorPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorPattern sets the old ErrorPattern of the mutation.
func withErrorPattern(node *ErrorPattern) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		m.oldValue = func(context.Context) (*ErrorPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorPatternMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorPatternMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ErrorPatternMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ErrorPatternMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ErrorPatternMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetPattern sets the "pattern" field.
func (m *ErrorPatternMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *ErrorPatternMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *ErrorPatternMutation) ResetPattern() {
	m.pattern = nil
}

// SetVerb sets the "verb" field.
func (m *ErrorPatternMutation) SetVerb(s string) {
	m.verb = &s
}

// Verb returns the value of the "verb" field in the mutation.
func (m *ErrorPatternMutation) Verb() (r string, exists bool) {
	v := m.verb
	if v == nil {
		return
	}
	return *v, true
}

// OldVerb returns the old "verb" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldVerb(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerb: %w", err)
	}
	return oldValue.Verb, nil
}

// ResetVerb resets all changes to the "verb" field.
func (m *ErrorPatternMutation) ResetVerb() {
	m.verb = nil
}

// SetDescription sets the "description" field.
func (m *ErrorPatternMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ErrorPatternMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ErrorPatternMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[errorpattern.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ErrorPatternMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[errorpattern.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ErrorPatternMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, errorpattern.FieldDescription)
}

// SetExample sets the "example" field.
func (m *ErrorPatternMutation) SetExample(s string) {
	m.example = &s
}

// Example returns the value of the "example" field in the mutation.
func (m *ErrorPatternMutation) Example() (r string, exists bool) {
	v := m.example
	if v == nil {
		return
	}
	return *v, true
}

// OldExample returns the old "example" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldExample(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExample: %w", err)
	}
	return oldValue.Example, nil
}

// ClearExample clears the value of the "example" field.
func (m *ErrorPatternMutation) ClearExample() {
	m.example = nil
	m.clearedFields[errorpattern.FieldExample] = struct{}{}
}

// ExampleCleared returns if the "example" field was cleared in this mutation.
func (m *ErrorPatternMutation) ExampleCleared() bool {
	_, ok := m.clearedFields[errorpattern.FieldExample]
	return ok
}

// ResetExample resets all changes to the "example" field.
func (m *ErrorPatternMutation) ResetExample() {
	m.example = nil
	delete(m.clearedFields, errorpattern.FieldExample)
}

// SetOccurrences sets the "occurrences" field.
func (m *ErrorPatternMutation) SetOccurrences(i int) {
	m.occurrences = &i
	m.addoccurrences = nil
}

// Occurrences returns the value of the "occurrences" field in the mutation.
func (m *ErrorPatternMutation) Occurrences() (r int, exists bool) {
	v := m.occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrences returns the old "occurrences" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldOccurrences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrences: %w", err)
	}
	return oldValue.Occurrences, nil
}

// AddOccurrences adds i to the "occurrences" field.
func (m *ErrorPatternMutation) AddOccurrences(i int) {
	if m.addoccurrences != nil {
		*m.addoccurrences += i
	} else {
		m.addoccurrences = &i
	}
}

// AddedOccurrences returns the value that was added to the "occurrences" field in this mutation.
func (m *ErrorPatternMutation) AddedOccurrences() (r int, exists bool) {
	v := m.addoccurrences
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrences resets all changes to the "occurrences" field.
func (m *ErrorPatternMutation) ResetOccurrences() {
	m.occurrences = nil
	m.addoccurrences = nil
}

// SetStatus sets the "status" field.
func (m *ErrorPatternMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ErrorPatternMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ErrorPatternMutation) ResetStatus() {
	m.status = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ErrorPatternMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ErrorPatternMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ErrorPatternMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the ErrorPatternMutation builder.
func (m *ErrorPatternMutation) Where(ps ...predicate.ErrorPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorPattern).
func (m *ErrorPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorPatternMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, errorpattern.FieldLearnerID)
	}
	if m.pattern != nil {
		fields = append(fields, errorpattern.FieldPattern)
	}
	if m.verb != nil {
		fields = append(fields, errorpattern.FieldVerb)
	}
	if m.description != nil {
		fields = append(fields, errorpattern.FieldDescription)
	}
	if m.example != nil {
		fields = append(fields, errorpattern.FieldExample)
	}
	if m.occurrences != nil {
		fields = append(fields, errorpattern.FieldOccurrences)
	}
	if m.status != nil {
		fields = append(fields, errorpattern.FieldStatus)
	}
	if m.last_seen != nil {
		fields = append(fields, errorpattern.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldLearnerID:
		return m.LearnerID()
	case errorpattern.FieldPattern:
		return m.Pattern()
	case errorpattern.FieldVerb:
		return m.Verb()
	case errorpattern.FieldDescription:
		return m.Description()
	case errorpattern.FieldExample:
		return m.Example()
	case errorpattern.FieldOccurrences:
		return m.Occurrences()
	case errorpattern.FieldStatus:
		return m.Status()
	case errorpattern.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorpattern.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case errorpattern.FieldPattern:
		return m.OldPattern(ctx)
	case errorpattern.FieldVerb:
		return m.OldVerb(ctx)
	case errorpattern.FieldDescription:
		return m.OldDescription(ctx)
	case errorpattern.FieldExample:
		return m.OldExample(ctx)
	case errorpattern.FieldOccurrences:
		return m.OldOccurrences(ctx)
	case errorpattern.FieldStatus:
		return m.OldStatus(ctx)
	case errorpattern.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case errorpattern.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case errorpattern.FieldVerb:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerb(v)
		return nil
	case errorpattern.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case errorpattern.FieldExample:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExample(v)
		return nil
	case errorpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrences(v)
		return nil
	case errorpattern.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case errorpattern.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrences != nil {
		fields = append(fields, errorpattern.FieldOccurrences)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldOccurrences:
		return m.AddedOccurrences()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrences(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(errorpattern.FieldDescription) {
		fields = append(fields, errorpattern.FieldDescription)
	}
	if m.FieldCleared(errorpattern.FieldExample) {
		fields = append(fields, errorpattern.FieldExample)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ClearField(name string) error {
	switch name {
	case errorpattern.FieldDescription:
		m.ClearDescription()
		return nil
	case errorpattern.FieldExample:
		m.ClearExample()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ResetField(name string) error {
	switch name {
	case errorpattern.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case errorpattern.FieldPattern:
		m.ResetPattern()
		return nil
	case errorpattern.FieldVerb:
		m.ResetVerb()
		return nil
	case errorpattern.FieldDescription:
		m.ResetDescription()
		return nil
	case errorpattern.FieldExample:
		m.ResetExample()
		return nil
	case errorpattern.FieldOccurrences:
		m.ResetOccurrences()
		return nil
	case errorpattern.FieldStatus:
		m.ResetStatus()
		return nil
	case errorpattern.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ErrorPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ErrorPattern edge %s", name)
}

// ReviewItemMutation represents an operation that mutates the ReviewItem nodes in the graph.
type ReviewItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *string
	key              *string
	topic            *string
	kind             *string
	status           *string
	interval_days    *int
	addinterval_days *int
	next_review      *time.Time
	top_streak       *int
	addtop_streak    *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewItem, error)
	predicates       []predicate.ReviewItem
}

var _ ent.Mutation = (*ReviewItemMutation)(nil)

// reviewitemOption allows management of the mutation configuration using functional options.
type reviewitemOption func(*ReviewItemMutation)

// newReviewItemMutation creates new mutation for the ReviewItem entity.
func newReviewItemMutation(c config, op Op, opts ...reviewitemOption) *ReviewItemMutation {
	m := &ReviewItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewItemID sets the ID field of the mutation.
func withReviewItemID(id int) reviewitemOption {
	return func(m *ReviewItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewItem
		)
		m.oldValue = func(ctx context.Context) (*ReviewItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewItem sets the old ReviewItem of the mutation.
func withReviewItem(node *ReviewItem) reviewitemOption {
	return func(m *ReviewItemMutation) {
		m.oldValue = func(context.Context) (*ReviewItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ReviewItemMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ReviewItemMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ReviewItemMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKey sets the "key" field.
func (m *ReviewItemMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ReviewItemMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ReviewItemMutation) ResetKey() {
	m.key = nil
}

// SetTopic sets the "topic" field.
func (m *ReviewItemMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ReviewItemMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *ReviewItemMutation) ResetTopic() {
	m.topic = nil
}

// SetKind sets the "kind" field.
func (m *ReviewItemMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReviewItemMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReviewItemMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ReviewItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewItemMutation) ResetStatus() {
	m.status = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewItemMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewItemMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewItemMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewItemMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewItemMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetNextReview sets the "next_review" field.
func (m *ReviewItemMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *ReviewItemMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *ReviewItemMutation) ResetNextReview() {
	m.next_review = nil
}

// SetTopStreak sets the "top_streak" field.
func (m *ReviewItemMutation) SetTopStreak(i int) {
	m.top_streak = &i
	m.addtop_streak = nil
}

// TopStreak returns the value of the "top_streak" field in the mutation.
func (m *ReviewItemMutation) TopStreak() (r int, exists bool) {
	v := m.top_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldTopStreak returns the old "top_streak" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldTopStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopStreak: %w", err)
	}
	return oldValue.TopStreak, nil
}

// AddTopStreak adds i to the "top_streak" field.
func (m *ReviewItemMutation) AddTopStreak(i int) {
	if m.addtop_streak != nil {
		*m.addtop_streak += i
	} else {
		m.addtop_streak = &i
	}
}

// AddedTopStreak returns the value that was added to the "top_streak" field in this mutation.
func (m *ReviewItemMutation) AddedTopStreak() (r int, exists bool) {
	v := m.addtop_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopStreak resets all changes to the "top_streak" field.
func (m *ReviewItemMutation) ResetTopStreak() {
	m.top_streak = nil
	m.addtop_streak = nil
}

// Where appends a list predicates to the ReviewItemMutation builder.
func (m *ReviewItemMutation) Where(ps ...predicate.ReviewItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewItem).
func (m *ReviewItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, reviewitem.FieldLearnerID)
	}
	if m.key != nil {
		fields = append(fields, reviewitem.FieldKey)
	}
	if m.topic != nil {
		fields = append(fields, reviewitem.FieldTopic)
	}
	if m.kind != nil {
		fields = append(fields, reviewitem.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, reviewitem.FieldStatus)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.next_review != nil {
		fields = append(fields, reviewitem.FieldNextReview)
	}
	if m.top_streak != nil {
		fields = append(fields, reviewitem.FieldTopStreak)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldLearnerID:
		return m.LearnerID()
	case reviewitem.FieldKey:
		return m.Key()
	case reviewitem.FieldTopic:
		return m.Topic()
	case reviewitem.FieldKind:
		return m.Kind()
	case reviewitem.FieldStatus:
		return m.Status()
	case reviewitem.FieldIntervalDays:
		return m.IntervalDays()
	case reviewitem.FieldNextReview:
		return m.NextReview()
	case reviewitem.FieldTopStreak:
		return m.TopStreak()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewitem.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case reviewitem.FieldKey:
		return m.OldKey(ctx)
	case reviewitem.FieldTopic:
		return m.OldTopic(ctx)
	case reviewitem.FieldKind:
		return m.OldKind(ctx)
	case reviewitem.FieldStatus:
		return m.OldStatus(ctx)
	case reviewitem.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewitem.FieldNextReview:
		return m.OldNextReview(ctx)
	case reviewitem.FieldTopStreak:
		return m.OldTopStreak(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case reviewitem.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case reviewitem.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case reviewitem.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reviewitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewitem.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	case reviewitem.FieldTopStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopStreak(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewItemMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.addtop_streak != nil {
		fields = append(fields, reviewitem.FieldTopStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewitem.FieldTopStreak:
		return m.AddedTopStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewitem.FieldTopStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopStreak(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewItemMutation) ResetField(name string) error {
	switch name {
	case reviewitem.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case reviewitem.FieldKey:
		m.ResetKey()
		return nil
	case reviewitem.FieldTopic:
		m.ResetTopic()
		return nil
	case reviewitem.FieldKind:
		m.ResetKind()
		return nil
	case reviewitem.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewitem.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewitem.FieldNextReview:
		m.ResetNextReview()
		return nil
	case reviewitem.FieldTopStreak:
		m.ResetTopStreak()
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem edge %s", name)
}

// SessionResultMutation represents an operation that mutates the SessionResult nodes in the graph.
type SessionResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	learner_id         *string
	session_id         *string
	session_date       *time.Time
	total_exercises    *int
	addtotal_exercises *int
	correct            *int
	addcorrect         *int
	best_run           *int
	addbest_run        *int
	xp_awarded         *int
	addxp_awarded      *int
	details            *[]schema.ExerciseDetail
	appenddetails      []schema.ExerciseDetail
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionResult, error)
	predicates         []predicate.SessionResult
}

var _ ent.Mutation = (*SessionResultMutation)(nil)

// sessionresultOption allows management of the mutation configuration using functional options.
type sessionresultOption func(*SessionResultMutation)

// newSessionResultMutation creates new mutation for the SessionResult entity.
func newSessionResultMutation(c config, op Op, opts ...sessionresultOption) *SessionResultMutation {
	m := &SessionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionResultID sets the ID field of the mutation.
func withSessionResultID(id int) sessionresultOption {
	return func(m *SessionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionResult
		)
		m.oldValue = func(ctx context.Context) (*SessionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionResult sets the old SessionResult of the mutation.
func withSessionResult(node *SessionResult) sessionresultOption {
	return func(m *SessionResultMutation) {
		m.oldValue = func(context.Context) (*SessionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionResultMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionResultMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionResultMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionResultMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSessionDate sets the "session_date" field.
func (m *SessionResultMutation) SetSessionDate(t time.Time) {
	m.session_date = &t
}

// SessionDate returns the value of the "session_date" field in the mutation.
func (m *SessionResultMutation) SessionDate() (r time.Time, exists bool) {
	v := m.session_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDate returns the old "session_date" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldSessionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDate: %w", err)
	}
	return oldValue.SessionDate, nil
}

// ResetSessionDate resets all changes to the "session_date" field.
func (m *SessionResultMutation) ResetSessionDate() {
	m.session_date = nil
}

// SetTotalExercises sets the "total_exercises" field.
func (m *SessionResultMutation) SetTotalExercises(i int) {
	m.total_exercises = &i
	m.addtotal_exercises = nil
}

// TotalExercises returns the value of the "total_exercises" field in the mutation.
func (m *SessionResultMutation) TotalExercises() (r int, exists bool) {
	v := m.total_exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExercises returns the old "total_exercises" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldTotalExercises(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExercises: %w", err)
	}
	return oldValue.TotalExercises, nil
}

// AddTotalExercises adds i to the "total_exercises" field.
func (m *SessionResultMutation) AddTotalExercises(i int) {
	if m.addtotal_exercises != nil {
		*m.addtotal_exercises += i
	} else {
		m.addtotal_exercises = &i
	}
}

// AddedTotalExercises returns the value that was added to the "total_exercises" field in this mutation.
func (m *SessionResultMutation) AddedTotalExercises() (r int, exists bool) {
	v := m.addtotal_exercises
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExercises resets all changes to the "total_exercises" field.
func (m *SessionResultMutation) ResetTotalExercises() {
	m.total_exercises = nil
	m.addtotal_exercises = nil
}

// SetCorrect sets the "correct" field.
func (m *SessionResultMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *SessionResultMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *SessionResultMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *SessionResultMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *SessionResultMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetBestRun sets the "best_run" field.
func (m *SessionResultMutation) SetBestRun(i int) {
	m.best_run = &i
	m.addbest_run = nil
}

// BestRun returns the value of the "best_run" field in the mutation.
func (m *SessionResultMutation) BestRun() (r int, exists bool) {
	v := m.best_run
	if v == nil {
		return
	}
	return *v, true
}

// OldBestRun returns the old "best_run" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldBestRun(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestRun: %w", err)
	}
	return oldValue.BestRun, nil
}

// AddBestRun adds i to the "best_run" field.
func (m *SessionResultMutation) AddBestRun(i int) {
	if m.addbest_run != nil {
		*m.addbest_run += i
	} else {
		m.addbest_run = &i
	}
}

// AddedBestRun returns the value that was added to the "best_run" field in this mutation.
func (m *SessionResultMutation) AddedBestRun() (r int, exists bool) {
	v := m.addbest_run
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestRun resets all changes to the "best_run" field.
func (m *SessionResultMutation) ResetBestRun() {
	m.best_run = nil
	m.addbest_run = nil
}

// SetXpAwarded sets the "xp_awarded" field.
func (m *SessionResultMutation) SetXpAwarded(i int) {
	m.xp_awarded = &i
	m.addxp_awarded = nil
}

// XpAwarded returns the value of the "xp_awarded" field in the mutation.
func (m *SessionResultMutation) XpAwarded() (r int, exists bool) {
	v := m.xp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldXpAwarded returns the old "xp_awarded" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldXpAwarded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpAwarded: %w", err)
	}
	return oldValue.XpAwarded, nil
}

// AddXpAwarded adds i to the "xp_awarded" field.
func (m *SessionResultMutation) AddXpAwarded(i int) {
	if m.addxp_awarded != nil {
		*m.addxp_awarded += i
	} else {
		m.addxp_awarded = &i
	}
}

// AddedXpAwarded returns the value that was added to the "xp_awarded" field in this mutation.
func (m *SessionResultMutation) AddedXpAwarded() (r int, exists bool) {
	v := m.addxp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpAwarded resets all changes to the "xp_awarded" field.
func (m *SessionResultMutation) ResetXpAwarded() {
	m.xp_awarded = nil
	m.addxp_awarded = nil
}

// SetDetails sets the "details" field.
func (m *SessionResultMutation) SetDetails(sd []schema.ExerciseDetail) {
	m.details = &sd
	m.appenddetails = nil
}

// Details returns the value of the "details" field in the mutation.
func (m *SessionResultMutation) Details() (r []schema.ExerciseDetail, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the SessionResult entity.
// If the SessionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionResultMutation) OldDetails(ctx context.Context) (v []schema.ExerciseDetail, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// AppendDetails adds sd to the "details" field.
func (m *SessionResultMutation) AppendDetails(sd []schema.ExerciseDetail) {
	m.appenddetails = append(m.appenddetails, sd...)
}

// AppendedDetails returns the list of values that were appended to the "details" field in this mutation.
func (m *SessionResultMutation) AppendedDetails() ([]schema.ExerciseDetail, bool) {
	if len(m.appenddetails) == 0 {
		return nil, false
	}
	return m.appenddetails, true
}

// ClearDetails clears the value of the "details" field.
func (m *SessionResultMutation) ClearDetails() {
	m.details = nil
	m.appenddetails = nil
	m.clearedFields[sessionresult.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *SessionResultMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[sessionresult.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *SessionResultMutation) ResetDetails() {
	m.details = nil
	m.appenddetails = nil
	delete(m.clearedFields, sessionresult.FieldDetails)
}

// Where appends a list predicates to the SessionResultMutation builder.
func (m *SessionResultMutation) Where(ps ...predicate.SessionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionResult).
func (m *SessionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionResultMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, sessionresult.FieldLearnerID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionresult.FieldSessionID)
	}
	if m.session_date != nil {
		fields = append(fields, sessionresult.FieldSessionDate)
	}
	if m.total_exercises != nil {
		fields = append(fields, sessionresult.FieldTotalExercises)
	}
	if m.correct != nil {
		fields = append(fields, sessionresult.FieldCorrect)
	}
	if m.best_run != nil {
		fields = append(fields, sessionresult.FieldBestRun)
	}
	if m.xp_awarded != nil {
		fields = append(fields, sessionresult.FieldXpAwarded)
	}
	if m.details != nil {
		fields = append(fields, sessionresult.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionresult.FieldLearnerID:
		return m.LearnerID()
	case sessionresult.FieldSessionID:
		return m.SessionID()
	case sessionresult.FieldSessionDate:
		return m.SessionDate()
	case sessionresult.FieldTotalExercises:
		return m.TotalExercises()
	case sessionresult.FieldCorrect:
		return m.Correct()
	case sessionresult.FieldBestRun:
		return m.BestRun()
	case sessionresult.FieldXpAwarded:
		return m.XpAwarded()
	case sessionresult.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionresult.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionresult.FieldSessionDate:
		return m.OldSessionDate(ctx)
	case sessionresult.FieldTotalExercises:
		return m.OldTotalExercises(ctx)
	case sessionresult.FieldCorrect:
		return m.OldCorrect(ctx)
	case sessionresult.FieldBestRun:
		return m.OldBestRun(ctx)
	case sessionresult.FieldXpAwarded:
		return m.OldXpAwarded(ctx)
	case sessionresult.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown SessionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionresult.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionresult.FieldSessionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDate(v)
		return nil
	case sessionresult.FieldTotalExercises:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExercises(v)
		return nil
	case sessionresult.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case sessionresult.FieldBestRun:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestRun(v)
		return nil
	case sessionresult.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpAwarded(v)
		return nil
	case sessionresult.FieldDetails:
		v, ok := value.([]schema.ExerciseDetail)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown SessionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_exercises != nil {
		fields = append(fields, sessionresult.FieldTotalExercises)
	}
	if m.addcorrect != nil {
		fields = append(fields, sessionresult.FieldCorrect)
	}
	if m.addbest_run != nil {
		fields = append(fields, sessionresult.FieldBestRun)
	}
	if m.addxp_awarded != nil {
		fields = append(fields, sessionresult.FieldXpAwarded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionresult.FieldTotalExercises:
		return m.AddedTotalExercises()
	case sessionresult.FieldCorrect:
		return m.AddedCorrect()
	case sessionresult.FieldBestRun:
		return m.AddedBestRun()
	case sessionresult.FieldXpAwarded:
		return m.AddedXpAwarded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionresult.FieldTotalExercises:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExercises(v)
		return nil
	case sessionresult.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case sessionresult.FieldBestRun:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestRun(v)
		return nil
	case sessionresult.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpAwarded(v)
		return nil
	}
	return fmt.Errorf("unknown SessionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionresult.FieldDetails) {
		fields = append(fields, sessionresult.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionResultMutation) ClearField(name string) error {
	switch name {
	case sessionresult.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown SessionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionResultMutation) ResetField(name string) error {
	switch name {
	case sessionresult.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionresult.FieldSessionDate:
		m.ResetSessionDate()
		return nil
	case sessionresult.FieldTotalExercises:
		m.ResetTotalExercises()
		return nil
	case sessionresult.FieldCorrect:
		m.ResetCorrect()
		return nil
	case sessionresult.FieldBestRun:
		m.ResetBestRun()
		return nil
	case sessionresult.FieldXpAwarded:
		m.ResetXpAwarded()
		return nil
	case sessionresult.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown SessionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionResult edge %s", name)
}

// TopicMasteryMutation represents an operation that mutates the TopicMastery nodes in the graph.
type TopicMasteryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	learner_id          *string
	topic_key           *string
	total_attempts      *int
	addtotal_attempts   *int
	correct_attempts    *int
	addcorrect_attempts *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TopicMastery, error)
	predicates          []predicate.TopicMastery
}

var _ ent.Mutation = (*TopicMasteryMutation)(nil)

// topicmasteryOption allows management of the mutation configuration using functional options.
type topicmasteryOption func(*TopicMasteryMutation)

// newTopicMasteryMutation creates new mutation for the TopicMastery entity.
func newTopicMasteryMutation(c config, op Op, opts ...topicmasteryOption) *TopicMasteryMutation {
	m := &TopicMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicMasteryID sets the ID field of the mutation.
func withTopicMasteryID(id int) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicMastery
		)
		m.oldValue = func(ctx context.Context) (*TopicMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicMastery sets the old TopicMastery of the mutation.
func withTopicMastery(node *TopicMastery) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		m.oldValue = func(context.Context) (*TopicMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *TopicMasteryMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *TopicMasteryMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *TopicMasteryMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTopicKey sets the "topic_key" field.
func (m *TopicMasteryMutation) SetTopicKey(s string) {
	m.topic_key = &s
}

// TopicKey returns the value of the "topic_key" field in the mutation.
func (m *TopicMasteryMutation) TopicKey() (r string, exists bool) {
	v := m.topic_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicKey returns the old "topic_key" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTopicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicKey: %w", err)
	}
	return oldValue.TopicKey, nil
}

// ResetTopicKey resets all changes to the "topic_key" field.
func (m *TopicMasteryMutation) ResetTopicKey() {
	m.topic_key = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *TopicMasteryMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *TopicMasteryMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *TopicMasteryMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *TopicMasteryMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *TopicMasteryMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (m *TopicMasteryMutation) SetCorrectAttempts(i int) {
	m.correct_attempts = &i
	m.addcorrect_attempts = nil
}

// CorrectAttempts returns the value of the "correct_attempts" field in the mutation.
func (m *TopicMasteryMutation) CorrectAttempts() (r int, exists bool) {
	v := m.correct_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAttempts returns the old "correct_attempts" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldCorrectAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAttempts: %w", err)
	}
	return oldValue.CorrectAttempts, nil
}

// AddCorrectAttempts adds i to the "correct_attempts" field.
func (m *TopicMasteryMutation) AddCorrectAttempts(i int) {
	if m.addcorrect_attempts != nil {
		*m.addcorrect_attempts += i
	} else {
		m.addcorrect_attempts = &i
	}
}

// AddedCorrectAttempts returns the value that was added to the "correct_attempts" field in this mutation.
func (m *TopicMasteryMutation) AddedCorrectAttempts() (r int, exists bool) {
	v := m.addcorrect_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAttempts resets all changes to the "correct_attempts" field.
func (m *TopicMasteryMutation) ResetCorrectAttempts() {
	m.correct_attempts = nil
	m.addcorrect_attempts = nil
}

// Where appends a list predicates to the TopicMasteryMutation builder.
func (m *TopicMasteryMutation) Where(ps ...predicate.TopicMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicMastery).
func (m *TopicMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMasteryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner_id != nil {
		fields = append(fields, topicmastery.FieldLearnerID)
	}
	if m.topic_key != nil {
		fields = append(fields, topicmastery.FieldTopicKey)
	}
	if m.total_attempts != nil {
		fields = append(fields, topicmastery.FieldTotalAttempts)
	}
	if m.correct_attempts != nil {
		fields = append(fields, topicmastery.FieldCorrectAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldLearnerID:
		return m.LearnerID()
	case topicmastery.FieldTopicKey:
		return m.TopicKey()
	case topicmastery.FieldTotalAttempts:
		return m.TotalAttempts()
	case topicmastery.FieldCorrectAttempts:
		return m.CorrectAttempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicmastery.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case topicmastery.FieldTopicKey:
		return m.OldTopicKey(ctx)
	case topicmastery.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case topicmastery.FieldCorrectAttempts:
		return m.OldCorrectAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown TopicMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case topicmastery.FieldTopicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicKey(v)
		return nil
	case topicmastery.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case topicmastery.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_attempts != nil {
		fields = append(fields, topicmastery.FieldTotalAttempts)
	}
	if m.addcorrect_attempts != nil {
		fields = append(fields, topicmastery.FieldCorrectAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case topicmastery.FieldCorrectAttempts:
		return m.AddedCorrectAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case topicmastery.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ResetField(name string) error {
	switch name {
	case topicmastery.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case topicmastery.FieldTopicKey:
		m.ResetTopicKey()
		return nil
	case topicmastery.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case topicmastery.FieldCorrectAttempts:
		m.ResetCorrectAttempts()
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery edge %s", name)
}
