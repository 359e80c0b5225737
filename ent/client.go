// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/prepwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/doubtmessage"
	"github.com/abhisek/prepwise/ent/llmrequestevent"
	"github.com/abhisek/prepwise/ent/materialentry"
	"github.com/abhisek/prepwise/ent/quizevent"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DoubtMessage is the client for interacting with the DoubtMessage builders.
	DoubtMessage *DoubtMessageClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MaterialEntry is the client for interacting with the MaterialEntry builders.
	MaterialEntry *MaterialEntryClient
	// QuizEvent is the client for interacting with the QuizEvent builders.
	QuizEvent *QuizEventClient
	// StudyPlan is the client for interacting with the StudyPlan builders.
	StudyPlan *StudyPlanClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DoubtMessage = NewDoubtMessageClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MaterialEntry = NewMaterialEntryClient(c.config)
	c.QuizEvent = NewQuizEventClient(c.config)
	c.StudyPlan = NewStudyPlanClient(c.config)
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
		DoubtMessage:    NewDoubtMessageClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MaterialEntry:   NewMaterialEntryClient(cfg),
		QuizEvent:       NewQuizEventClient(cfg),
		StudyPlan:       NewStudyPlanClient(cfg),
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
		DoubtMessage:    NewDoubtMessageClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MaterialEntry:   NewMaterialEntryClient(cfg),
		QuizEvent:       NewQuizEventClient(cfg),
		StudyPlan:       NewStudyPlanClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DoubtMessage.
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
	c.DoubtMessage.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.MaterialEntry.Use(hooks...)
	c.QuizEvent.Use(hooks...)
	c.StudyPlan.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DoubtMessage.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MaterialEntry.Intercept(interceptors...)
	c.QuizEvent.Intercept(interceptors...)
	c.StudyPlan.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DoubtMessageMutation:
		return c.DoubtMessage.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MaterialEntryMutation:
		return c.MaterialEntry.mutate(ctx, m)
	case *QuizEventMutation:
		return c.QuizEvent.mutate(ctx, m)
	case *StudyPlanMutation:
		return c.StudyPlan.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DoubtMessageClient is a client for the DoubtMessage schema.
type DoubtMessageClient struct {
	config
}

// NewDoubtMessageClient returns a client for the DoubtMessage from the given config.
func NewDoubtMessageClient(c config) *DoubtMessageClient {
	return &DoubtMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doubtmessage.Hooks(f(g(h())))`.
func (c *DoubtMessageClient) Use(hooks ...Hook) {
	c.hooks.DoubtMessage = append(c.hooks.DoubtMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doubtmessage.Intercept(f(g(h())))`.
func (c *DoubtMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoubtMessage = append(c.inters.DoubtMessage, interceptors...)
}

// Create returns a builder for creating a DoubtMessage entity.
func (c *DoubtMessageClient) Create() *DoubtMessageCreate {
	mutation := newDoubtMessageMutation(c.config, OpCreate)
	return &DoubtMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoubtMessage entities.
func (c *DoubtMessageClient) CreateBulk(builders ...*DoubtMessageCreate) *DoubtMessageCreateBulk {
	return &DoubtMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoubtMessageClient) MapCreateBulk(slice any, setFunc func(*DoubtMessageCreate, int)) *DoubtMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoubtMessageCreateBulk{err: fmt.Errorf("calling to DoubtMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoubtMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoubtMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoubtMessage.
func (c *DoubtMessageClient) Update() *DoubtMessageUpdate {
	mutation := newDoubtMessageMutation(c.config, OpUpdate)
	return &DoubtMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoubtMessageClient) UpdateOne(_m *DoubtMessage) *DoubtMessageUpdateOne {
	mutation := newDoubtMessageMutation(c.config, OpUpdateOne, withDoubtMessage(_m))
	return &DoubtMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoubtMessageClient) UpdateOneID(id int) *DoubtMessageUpdateOne {
	mutation := newDoubtMessageMutation(c.config, OpUpdateOne, withDoubtMessageID(id))
	return &DoubtMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoubtMessage.
func (c *DoubtMessageClient) Delete() *DoubtMessageDelete {
	mutation := newDoubtMessageMutation(c.config, OpDelete)
	return &DoubtMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoubtMessageClient) DeleteOne(_m *DoubtMessage) *DoubtMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoubtMessageClient) DeleteOneID(id int) *DoubtMessageDeleteOne {
	builder := c.Delete().Where(doubtmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoubtMessageDeleteOne{builder}
}

// Query returns a query builder for DoubtMessage.
func (c *DoubtMessageClient) Query() *DoubtMessageQuery {
	return &DoubtMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoubtMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a DoubtMessage entity by its id.
func (c *DoubtMessageClient) Get(ctx context.Context, id int) (*DoubtMessage, error) {
	return c.Query().Where(doubtmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoubtMessageClient) GetX(ctx context.Context, id int) *DoubtMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoubtMessageClient) Hooks() []Hook {
	return c.hooks.DoubtMessage
}

// Interceptors returns the client interceptors.
func (c *DoubtMessageClient) Interceptors() []Interceptor {
	return c.inters.DoubtMessage
}

func (c *DoubtMessageClient) mutate(ctx context.Context, m *DoubtMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoubtMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoubtMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoubtMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoubtMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DoubtMessage mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MaterialEntryClient is a client for the MaterialEntry schema.
type MaterialEntryClient struct {
	config
}

// NewMaterialEntryClient returns a client for the MaterialEntry from the given config.
func NewMaterialEntryClient(c config) *MaterialEntryClient {
	return &MaterialEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `materialentry.Hooks(f(g(h())))`.
func (c *MaterialEntryClient) Use(hooks ...Hook) {
	c.hooks.MaterialEntry = append(c.hooks.MaterialEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `materialentry.Intercept(f(g(h())))`.
func (c *MaterialEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MaterialEntry = append(c.inters.MaterialEntry, interceptors...)
}

// Create returns a builder for creating a MaterialEntry entity.
func (c *MaterialEntryClient) Create() *MaterialEntryCreate {
	mutation := newMaterialEntryMutation(c.config, OpCreate)
	return &MaterialEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MaterialEntry entities.
func (c *MaterialEntryClient) CreateBulk(builders ...*MaterialEntryCreate) *MaterialEntryCreateBulk {
	return &MaterialEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaterialEntryClient) MapCreateBulk(slice any, setFunc func(*MaterialEntryCreate, int)) *MaterialEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaterialEntryCreateBulk{err: fmt.Errorf("calling to MaterialEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaterialEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaterialEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MaterialEntry.
func (c *MaterialEntryClient) Update() *MaterialEntryUpdate {
	mutation := newMaterialEntryMutation(c.config, OpUpdate)
	return &MaterialEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaterialEntryClient) UpdateOne(_m *MaterialEntry) *MaterialEntryUpdateOne {
	mutation := newMaterialEntryMutation(c.config, OpUpdateOne, withMaterialEntry(_m))
	return &MaterialEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaterialEntryClient) UpdateOneID(id int) *MaterialEntryUpdateOne {
	mutation := newMaterialEntryMutation(c.config, OpUpdateOne, withMaterialEntryID(id))
	return &MaterialEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MaterialEntry.
func (c *MaterialEntryClient) Delete() *MaterialEntryDelete {
	mutation := newMaterialEntryMutation(c.config, OpDelete)
	return &MaterialEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaterialEntryClient) DeleteOne(_m *MaterialEntry) *MaterialEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaterialEntryClient) DeleteOneID(id int) *MaterialEntryDeleteOne {
	builder := c.Delete().Where(materialentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaterialEntryDeleteOne{builder}
}

// Query returns a query builder for MaterialEntry.
func (c *MaterialEntryClient) Query() *MaterialEntryQuery {
	return &MaterialEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaterialEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MaterialEntry entity by its id.
func (c *MaterialEntryClient) Get(ctx context.Context, id int) (*MaterialEntry, error) {
	return c.Query().Where(materialentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaterialEntryClient) GetX(ctx context.Context, id int) *MaterialEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MaterialEntryClient) Hooks() []Hook {
	return c.hooks.MaterialEntry
}

// Interceptors returns the client interceptors.
func (c *MaterialEntryClient) Interceptors() []Interceptor {
	return c.inters.MaterialEntry
}

func (c *MaterialEntryClient) mutate(ctx context.Context, m *MaterialEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaterialEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaterialEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaterialEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaterialEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MaterialEntry mutation op: %q", m.Op())
	}
}

// QuizEventClient is a client for the QuizEvent schema.
type QuizEventClient struct {
	config
}

// NewQuizEventClient returns a client for the QuizEvent from the given config.
func NewQuizEventClient(c config) *QuizEventClient {
	return &QuizEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizevent.Hooks(f(g(h())))`.
func (c *QuizEventClient) Use(hooks ...Hook) {
	c.hooks.QuizEvent = append(c.hooks.QuizEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizevent.Intercept(f(g(h())))`.
func (c *QuizEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizEvent = append(c.inters.QuizEvent, interceptors...)
}

// Create returns a builder for creating a QuizEvent entity.
func (c *QuizEventClient) Create() *QuizEventCreate {
	mutation := newQuizEventMutation(c.config, OpCreate)
	return &QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizEvent entities.
func (c *QuizEventClient) CreateBulk(builders ...*QuizEventCreate) *QuizEventCreateBulk {
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizEventClient) MapCreateBulk(slice any, setFunc func(*QuizEventCreate, int)) *QuizEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizEventCreateBulk{err: fmt.Errorf("calling to QuizEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizEvent.
func (c *QuizEventClient) Update() *QuizEventUpdate {
	mutation := newQuizEventMutation(c.config, OpUpdate)
	return &QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizEventClient) UpdateOne(_m *QuizEvent) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEvent(_m))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizEventClient) UpdateOneID(id int) *QuizEventUpdateOne {
	mutation := newQuizEventMutation(c.config, OpUpdateOne, withQuizEventID(id))
	return &QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizEvent.
func (c *QuizEventClient) Delete() *QuizEventDelete {
	mutation := newQuizEventMutation(c.config, OpDelete)
	return &QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizEventClient) DeleteOne(_m *QuizEvent) *QuizEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizEventClient) DeleteOneID(id int) *QuizEventDeleteOne {
	builder := c.Delete().Where(quizevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizEventDeleteOne{builder}
}

// Query returns a query builder for QuizEvent.
func (c *QuizEventClient) Query() *QuizEventQuery {
	return &QuizEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizEvent entity by its id.
func (c *QuizEventClient) Get(ctx context.Context, id int) (*QuizEvent, error) {
	return c.Query().Where(quizevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizEventClient) GetX(ctx context.Context, id int) *QuizEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizEventClient) Hooks() []Hook {
	return c.hooks.QuizEvent
}

// Interceptors returns the client interceptors.
func (c *QuizEventClient) Interceptors() []Interceptor {
	return c.inters.QuizEvent
}

func (c *QuizEventClient) mutate(ctx context.Context, m *QuizEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizEvent mutation op: %q", m.Op())
	}
}

// StudyPlanClient is a client for the StudyPlan schema.
type StudyPlanClient struct {
	config
}

// NewStudyPlanClient returns a client for the StudyPlan from the given config.
func NewStudyPlanClient(c config) *StudyPlanClient {
	return &StudyPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyplan.Hooks(f(g(h())))`.
func (c *StudyPlanClient) Use(hooks ...Hook) {
	c.hooks.StudyPlan = append(c.hooks.StudyPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyplan.Intercept(f(g(h())))`.
func (c *StudyPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyPlan = append(c.inters.StudyPlan, interceptors...)
}

// Create returns a builder for creating a StudyPlan entity.
func (c *StudyPlanClient) Create() *StudyPlanCreate {
	mutation := newStudyPlanMutation(c.config, OpCreate)
	return &StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyPlan entities.
func (c *StudyPlanClient) CreateBulk(builders ...*StudyPlanCreate) *StudyPlanCreateBulk {
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyPlanClient) MapCreateBulk(slice any, setFunc func(*StudyPlanCreate, int)) *StudyPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyPlanCreateBulk{err: fmt.Errorf("calling to StudyPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyPlan.
func (c *StudyPlanClient) Update() *StudyPlanUpdate {
	mutation := newStudyPlanMutation(c.config, OpUpdate)
	return &StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyPlanClient) UpdateOne(_m *StudyPlan) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlan(_m))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyPlanClient) UpdateOneID(id int) *StudyPlanUpdateOne {
	mutation := newStudyPlanMutation(c.config, OpUpdateOne, withStudyPlanID(id))
	return &StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyPlan.
func (c *StudyPlanClient) Delete() *StudyPlanDelete {
	mutation := newStudyPlanMutation(c.config, OpDelete)
	return &StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyPlanClient) DeleteOne(_m *StudyPlan) *StudyPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyPlanClient) DeleteOneID(id int) *StudyPlanDeleteOne {
	builder := c.Delete().Where(studyplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyPlanDeleteOne{builder}
}

// Query returns a query builder for StudyPlan.
func (c *StudyPlanClient) Query() *StudyPlanQuery {
	return &StudyPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyPlan entity by its id.
func (c *StudyPlanClient) Get(ctx context.Context, id int) (*StudyPlan, error) {
	return c.Query().Where(studyplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyPlanClient) GetX(ctx context.Context, id int) *StudyPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyPlanClient) Hooks() []Hook {
	return c.hooks.StudyPlan
}

// Interceptors returns the client interceptors.
func (c *StudyPlanClient) Interceptors() []Interceptor {
	return c.inters.StudyPlan
}

func (c *StudyPlanClient) mutate(ctx context.Context, m *StudyPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyPlan mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DoubtMessage, LLMRequestEvent, MaterialEntry, QuizEvent, StudyPlan []ent.Hook
	}
	inters struct {
		DoubtMessage, LLMRequestEvent, MaterialEntry, QuizEvent,
		StudyPlan []ent.Interceptor
	}
)
