// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vincentb/aurelie/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/achievement"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/ent/reviewitem"
	"github.com/vincentb/aurelie/ent/sessionresult"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// EngagementState is the client for interacting with the EngagementState builders.
	EngagementState *EngagementStateClient
	// ErrorPattern is the client for interacting with the ErrorPattern builders.
	ErrorPattern *ErrorPatternClient
	// ReviewItem is the client for interacting with the ReviewItem builders.
	ReviewItem *ReviewItemClient
	// SessionResult is the client for interacting with the SessionResult builders.
	SessionResult *SessionResultClient
	// TopicMastery is the client for interacting with the TopicMastery builders.
	TopicMastery *TopicMasteryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.EngagementState = NewEngagementStateClient(c.config)
	c.ErrorPattern = NewErrorPatternClient(c.config)
	c.ReviewItem = NewReviewItemClient(c.config)
	c.SessionResult = NewSessionResultClient(c.config)
	c.TopicMastery = NewTopicMasteryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		EngagementState: NewEngagementStateClient(cfg),
		ErrorPattern:    NewErrorPatternClient(cfg),
		ReviewItem:      NewReviewItemClient(cfg),
		SessionResult:   NewSessionResultClient(cfg),
		TopicMastery:    NewTopicMasteryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		EngagementState: NewEngagementStateClient(cfg),
		ErrorPattern:    NewErrorPatternClient(cfg),
		ReviewItem:      NewReviewItemClient(cfg),
		SessionResult:   NewSessionResultClient(cfg),
		TopicMastery:    NewTopicMasteryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Achievement, c.EngagementState, c.ErrorPattern, c.ReviewItem, c.SessionResult,
		c.TopicMastery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Achievement, c.EngagementState, c.ErrorPattern, c.ReviewItem, c.SessionResult,
		c.TopicMastery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *EngagementStateMutation:
		return c.EngagementState.mutate(ctx, m)
	case *ErrorPatternMutation:
		return c.ErrorPattern.mutate(ctx, m)
	case *ReviewItemMutation:
		return c.ReviewItem.mutate(ctx, m)
	case *SessionResultMutation:
		return c.SessionResult.mutate(ctx, m)
	case *TopicMasteryMutation:
		return c.TopicMastery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// EngagementStateClient is a client for the EngagementState schema.
type EngagementStateClient struct {
	config
}

// NewEngagementStateClient returns a client for the EngagementState from the given config.
func NewEngagementStateClient(c config) *EngagementStateClient {
	return &EngagementStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `engagementstate.Hooks(f(g(h())))`.
func (c *EngagementStateClient) Use(hooks ...Hook) {
	c.hooks.EngagementState = append(c.hooks.EngagementState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `engagementstate.Intercept(f(g(h())))`.
func (c *EngagementStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EngagementState = append(c.inters.EngagementState, interceptors...)
}

// Create returns a builder for creating a EngagementState entity.
func (c *EngagementStateClient) Create() *EngagementStateCreate {
	mutation := newEngagementStateMutation(c.config, OpCreate)
	return &EngagementStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EngagementState entities.
func (c *EngagementStateClient) CreateBulk(builders ...*EngagementStateCreate) *EngagementStateCreateBulk {
	return &EngagementStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EngagementStateClient) MapCreateBulk(slice any, setFunc func(*EngagementStateCreate, int)) *EngagementStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EngagementStateCreateBulk{err: fmt.Errorf("calling to EngagementStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EngagementStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EngagementStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EngagementState.
func (c *EngagementStateClient) Update() *EngagementStateUpdate {
	mutation := newEngagementStateMutation(c.config, OpUpdate)
	return &EngagementStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EngagementStateClient) UpdateOne(_m *EngagementState) *EngagementStateUpdateOne {
	mutation := newEngagementStateMutation(c.config, OpUpdateOne, withEngagementState(_m))
	return &EngagementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EngagementStateClient) UpdateOneID(id int) *EngagementStateUpdateOne {
	mutation := newEngagementStateMutation(c.config, OpUpdateOne, withEngagementStateID(id))
	return &EngagementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EngagementState.
func (c *EngagementStateClient) Delete() *EngagementStateDelete {
	mutation := newEngagementStateMutation(c.config, OpDelete)
	return &EngagementStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EngagementStateClient) DeleteOne(_m *EngagementState) *EngagementStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EngagementStateClient) DeleteOneID(id int) *EngagementStateDeleteOne {
	builder := c.Delete().Where(engagementstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EngagementStateDeleteOne{builder}
}

// Query returns a query builder for EngagementState.
func (c *EngagementStateClient) Query() *EngagementStateQuery {
	return &EngagementStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEngagementState},
		inters: c.Interceptors(),
	}
}

// Get returns a EngagementState entity by its id.
func (c *EngagementStateClient) Get(ctx context.Context, id int) (*EngagementState, error) {
	return c.Query().Where(engagementstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EngagementStateClient) GetX(ctx context.Context, id int) *EngagementState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EngagementStateClient) Hooks() []Hook {
	return c.hooks.EngagementState
}

// Interceptors returns the client interceptors.
func (c *EngagementStateClient) Interceptors() []Interceptor {
	return c.inters.EngagementState
}

func (c *EngagementStateClient) mutate(ctx context.Context, m *EngagementStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EngagementStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EngagementStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EngagementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EngagementStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EngagementState mutation op: %q", m.Op())
	}
}

// ErrorPatternClient is a client for the ErrorPattern schema.
type ErrorPatternClient struct {
	config
}

// NewErrorPatternClient returns a client for the ErrorPattern from the given config.
func NewErrorPatternClient(c config) *ErrorPatternClient {
	return &ErrorPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorpattern.Hooks(f(g(h())))`.
func (c *ErrorPatternClient) Use(hooks ...Hook) {
	c.hooks.ErrorPattern = append(c.hooks.ErrorPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorpattern.Intercept(f(g(h())))`.
func (c *ErrorPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorPattern = append(c.inters.ErrorPattern, interceptors...)
}

// Create returns a builder for creating a ErrorPattern entity.
func (c *ErrorPatternClient) Create() *ErrorPatternCreate {
	mutation := newErrorPatternMutation(c.config, OpCreate)
	return &ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorPattern entities.
func (c *ErrorPatternClient) CreateBulk(builders ...*ErrorPatternCreate) *ErrorPatternCreateBulk {
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorPatternClient) MapCreateBulk(slice any, setFunc func(*ErrorPatternCreate, int)) *ErrorPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorPatternCreateBulk{err: fmt.Errorf("calling to ErrorPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorPattern.
func (c *ErrorPatternClient) Update() *ErrorPatternUpdate {
	mutation := newErrorPatternMutation(c.config, OpUpdate)
	return &ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorPatternClient) UpdateOne(_m *ErrorPattern) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPattern(_m))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorPatternClient) UpdateOneID(id int) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPatternID(id))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorPattern.
func (c *ErrorPatternClient) Delete() *ErrorPatternDelete {
	mutation := newErrorPatternMutation(c.config, OpDelete)
	return &ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorPatternClient) DeleteOne(_m *ErrorPattern) *ErrorPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorPatternClient) DeleteOneID(id int) *ErrorPatternDeleteOne {
	builder := c.Delete().Where(errorpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorPatternDeleteOne{builder}
}

// Query returns a query builder for ErrorPattern.
func (c *ErrorPatternClient) Query() *ErrorPatternQuery {
	return &ErrorPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorPattern entity by its id.
func (c *ErrorPatternClient) Get(ctx context.Context, id int) (*ErrorPattern, error) {
	return c.Query().Where(errorpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorPatternClient) GetX(ctx context.Context, id int) *ErrorPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ErrorPatternClient) Hooks() []Hook {
	return c.hooks.ErrorPattern
}

// Interceptors returns the client interceptors.
func (c *ErrorPatternClient) Interceptors() []Interceptor {
	return c.inters.ErrorPattern
}

func (c *ErrorPatternClient) mutate(ctx context.Context, m *ErrorPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorPattern mutation op: %q", m.Op())
	}
}

// ReviewItemClient is a client for the ReviewItem schema.
type ReviewItemClient struct {
	config
}

// NewReviewItemClient returns a client for the ReviewItem from the given config.
func NewReviewItemClient(c config) *ReviewItemClient {
	return &ReviewItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewitem.Hooks(f(g(h())))`.
func (c *ReviewItemClient) Use(hooks ...Hook) {
	c.hooks.ReviewItem = append(c.hooks.ReviewItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewitem.Intercept(f(g(h())))`.
func (c *ReviewItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewItem = append(c.inters.ReviewItem, interceptors...)
}

// Create returns a builder for creating a ReviewItem entity.
func (c *ReviewItemClient) Create() *ReviewItemCreate {
	mutation := newReviewItemMutation(c.config, OpCreate)
	return &ReviewItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewItem entities.
func (c *ReviewItemClient) CreateBulk(builders ...*ReviewItemCreate) *ReviewItemCreateBulk {
	return &ReviewItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewItemClient) MapCreateBulk(slice any, setFunc func(*ReviewItemCreate, int)) *ReviewItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewItemCreateBulk{err: fmt.Errorf("calling to ReviewItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewItem.
func (c *ReviewItemClient) Update() *ReviewItemUpdate {
	mutation := newReviewItemMutation(c.config, OpUpdate)
	return &ReviewItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewItemClient) UpdateOne(_m *ReviewItem) *ReviewItemUpdateOne {
	mutation := newReviewItemMutation(c.config, OpUpdateOne, withReviewItem(_m))
	return &ReviewItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewItemClient) UpdateOneID(id int) *ReviewItemUpdateOne {
	mutation := newReviewItemMutation(c.config, OpUpdateOne, withReviewItemID(id))
	return &ReviewItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewItem.
func (c *ReviewItemClient) Delete() *ReviewItemDelete {
	mutation := newReviewItemMutation(c.config, OpDelete)
	return &ReviewItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewItemClient) DeleteOne(_m *ReviewItem) *ReviewItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewItemClient) DeleteOneID(id int) *ReviewItemDeleteOne {
	builder := c.Delete().Where(reviewitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewItemDeleteOne{builder}
}

// Query returns a query builder for ReviewItem.
func (c *ReviewItemClient) Query() *ReviewItemQuery {
	return &ReviewItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewItem entity by its id.
func (c *ReviewItemClient) Get(ctx context.Context, id int) (*ReviewItem, error) {
	return c.Query().Where(reviewitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewItemClient) GetX(ctx context.Context, id int) *ReviewItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewItemClient) Hooks() []Hook {
	return c.hooks.ReviewItem
}

// Interceptors returns the client interceptors.
func (c *ReviewItemClient) Interceptors() []Interceptor {
	return c.inters.ReviewItem
}

func (c *ReviewItemClient) mutate(ctx context.Context, m *ReviewItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewItem mutation op: %q", m.Op())
	}
}

// SessionResultClient is a client for the SessionResult schema.
type SessionResultClient struct {
	config
}

// NewSessionResultClient returns a client for the SessionResult from the given config.
func NewSessionResultClient(c config) *SessionResultClient {
	return &SessionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionresult.Hooks(f(g(h())))`.
func (c *SessionResultClient) Use(hooks ...Hook) {
	c.hooks.SessionResult = append(c.hooks.SessionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionresult.Intercept(f(g(h())))`.
func (c *SessionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionResult = append(c.inters.SessionResult, interceptors...)
}

// Create returns a builder for creating a SessionResult entity.
func (c *SessionResultClient) Create() *SessionResultCreate {
	mutation := newSessionResultMutation(c.config, OpCreate)
	return &SessionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionResult entities.
func (c *SessionResultClient) CreateBulk(builders ...*SessionResultCreate) *SessionResultCreateBulk {
	return &SessionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionResultClient) MapCreateBulk(slice any, setFunc func(*SessionResultCreate, int)) *SessionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionResultCreateBulk{err: fmt.Errorf("calling to SessionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionResult.
func (c *SessionResultClient) Update() *SessionResultUpdate {
	mutation := newSessionResultMutation(c.config, OpUpdate)
	return &SessionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionResultClient) UpdateOne(_m *SessionResult) *SessionResultUpdateOne {
	mutation := newSessionResultMutation(c.config, OpUpdateOne, withSessionResult(_m))
	return &SessionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionResultClient) UpdateOneID(id int) *SessionResultUpdateOne {
	mutation := newSessionResultMutation(c.config, OpUpdateOne, withSessionResultID(id))
	return &SessionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionResult.
func (c *SessionResultClient) Delete() *SessionResultDelete {
	mutation := newSessionResultMutation(c.config, OpDelete)
	return &SessionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionResultClient) DeleteOne(_m *SessionResult) *SessionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionResultClient) DeleteOneID(id int) *SessionResultDeleteOne {
	builder := c.Delete().Where(sessionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionResultDeleteOne{builder}
}

// Query returns a query builder for SessionResult.
func (c *SessionResultClient) Query() *SessionResultQuery {
	return &SessionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionResult entity by its id.
func (c *SessionResultClient) Get(ctx context.Context, id int) (*SessionResult, error) {
	return c.Query().Where(sessionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionResultClient) GetX(ctx context.Context, id int) *SessionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionResultClient) Hooks() []Hook {
	return c.hooks.SessionResult
}

// Interceptors returns the client interceptors.
func (c *SessionResultClient) Interceptors() []Interceptor {
	return c.inters.SessionResult
}

func (c *SessionResultClient) mutate(ctx context.Context, m *SessionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionResult mutation op: %q", m.Op())
	}
}

// TopicMasteryClient is a client for the TopicMastery schema.
type TopicMasteryClient struct {
	config
}

// NewTopicMasteryClient returns a client for the TopicMastery from the given config.
func NewTopicMasteryClient(c config) *TopicMasteryClient {
	return &TopicMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicmastery.Hooks(f(g(h())))`.
func (c *TopicMasteryClient) Use(hooks ...Hook) {
	c.hooks.TopicMastery = append(c.hooks.TopicMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicmastery.Intercept(f(g(h())))`.
func (c *TopicMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicMastery = append(c.inters.TopicMastery, interceptors...)
}

// Create returns a builder for creating a TopicMastery entity.
func (c *TopicMasteryClient) Create() *TopicMasteryCreate {
	mutation := newTopicMasteryMutation(c.config, OpCreate)
	return &TopicMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicMastery entities.
func (c *TopicMasteryClient) CreateBulk(builders ...*TopicMasteryCreate) *TopicMasteryCreateBulk {
	return &TopicMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicMasteryClient) MapCreateBulk(slice any, setFunc func(*TopicMasteryCreate, int)) *TopicMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicMasteryCreateBulk{err: fmt.Errorf("calling to TopicMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicMastery.
func (c *TopicMasteryClient) Update() *TopicMasteryUpdate {
	mutation := newTopicMasteryMutation(c.config, OpUpdate)
	return &TopicMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicMasteryClient) UpdateOne(_m *TopicMastery) *TopicMasteryUpdateOne {
	mutation := newTopicMasteryMutation(c.config, OpUpdateOne, withTopicMastery(_m))
	return &TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicMasteryClient) UpdateOneID(id int) *TopicMasteryUpdateOne {
	mutation := newTopicMasteryMutation(c.config, OpUpdateOne, withTopicMasteryID(id))
	return &TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicMastery.
func (c *TopicMasteryClient) Delete() *TopicMasteryDelete {
	mutation := newTopicMasteryMutation(c.config, OpDelete)
	return &TopicMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicMasteryClient) DeleteOne(_m *TopicMastery) *TopicMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicMasteryClient) DeleteOneID(id int) *TopicMasteryDeleteOne {
	builder := c.Delete().Where(topicmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicMasteryDeleteOne{builder}
}

// Query returns a query builder for TopicMastery.
func (c *TopicMasteryClient) Query() *TopicMasteryQuery {
	return &TopicMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicMastery entity by its id.
func (c *TopicMasteryClient) Get(ctx context.Context, id int) (*TopicMastery, error) {
	return c.Query().Where(topicmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicMasteryClient) GetX(ctx context.Context, id int) *TopicMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicMasteryClient) Hooks() []Hook {
	return c.hooks.TopicMastery
}

// Interceptors returns the client interceptors.
func (c *TopicMasteryClient) Interceptors() []Interceptor {
	return c.inters.TopicMastery
}

func (c *TopicMasteryClient) mutate(ctx context.Context, m *TopicMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicMastery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, EngagementState, ErrorPattern, ReviewItem, SessionResult,
		TopicMastery []ent.Hook
	}
	inters struct {
		Achievement, EngagementState, ErrorPattern, ReviewItem, SessionResult,
		TopicMastery []ent.Interceptor
	}
)
