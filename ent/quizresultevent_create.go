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
	"github.com/abhisek/quizclash/ent/quizresultevent"
)

// QuizResultEventCreate is the builder for creating a QuizResultEvent entity.
type QuizResultEventCreate struct {
	config
	mutation *QuizResultEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *QuizResultEventCreate) SetSequence(v int64) *QuizResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizResultEventCreate) SetTimestamp(v time.Time) *QuizResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizResultEventCreate) SetNillableTimestamp(v *time.Time) *QuizResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizResultEventCreate) SetSessionID(v string) *QuizResultEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *QuizResultEventCreate) SetCategoryID(v string) *QuizResultEventCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *QuizResultEventCreate) SetTopicID(v string) *QuizResultEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultEventCreate) SetScore(v int) *QuizResultEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAiScore sets the "ai_score" field.
func (_c *QuizResultEventCreate) SetAiScore(v int) *QuizResultEventCreate {
	_c.mutation.SetAiScore(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizResultEventCreate) SetDifficulty(v string) *QuizResultEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_c *QuizResultEventCreate) Mutation() *QuizResultEventMutation {
	return _c.mutation
}

// Save creates the QuizResultEvent in the database.
func (_c *QuizResultEventCreate) Save(ctx context.Context) (*QuizResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultEventCreate) SaveX(ctx context.Context) *QuizResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizresultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizResultEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "QuizResultEvent.category_id"`)}
	}
	if v, ok := _c.mutation.CategoryID(); ok {
		if err := quizresultevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.category_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "QuizResultEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := quizresultevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResultEvent.score"`)}
	}
	if _, ok := _c.mutation.AiScore(); !ok {
		return &ValidationError{Name: "ai_score", err: errors.New(`ent: missing required field "QuizResultEvent.ai_score"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizResultEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := quizresultevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_c *QuizResultEventCreate) sqlSave(ctx context.Context) (*QuizResultEvent, error) {
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

func (_c *QuizResultEventCreate) createSpec() (*QuizResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresultevent.Table, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizresultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizresultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(quizresultevent.FieldCategoryID, field.TypeString, value)
		_node.CategoryID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(quizresultevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.AiScore(); ok {
		_spec.SetField(quizresultevent.FieldAiScore, field.TypeInt, value)
		_node.AiScore = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizResultEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizResultEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizResultEventCreate) OnConflict(opts ...sql.ConflictOption) *QuizResultEventUpsertOne {
	_c.conflict = opts
	return &QuizResultEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizResultEventCreate) OnConflictColumns(columns ...string) *QuizResultEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizResultEventUpsertOne{
		create: _c,
	}
}

type (
	// QuizResultEventUpsertOne is the builder for "upsert"-ing
	//  one QuizResultEvent node.
	QuizResultEventUpsertOne struct {
		create *QuizResultEventCreate
	}

	// QuizResultEventUpsert is the "OnConflict" setter.
	QuizResultEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *QuizResultEventUpsert) SetSessionID(v string) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateSessionID() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldSessionID)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *QuizResultEventUpsert) SetCategoryID(v string) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateCategoryID() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldCategoryID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *QuizResultEventUpsert) SetTopicID(v string) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateTopicID() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldTopicID)
	return u
}

// SetScore sets the "score" field.
func (u *QuizResultEventUpsert) SetScore(v int) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateScore() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *QuizResultEventUpsert) AddScore(v int) *QuizResultEventUpsert {
	u.Add(quizresultevent.FieldScore, v)
	return u
}

// SetAiScore sets the "ai_score" field.
func (u *QuizResultEventUpsert) SetAiScore(v int) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldAiScore, v)
	return u
}

// UpdateAiScore sets the "ai_score" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateAiScore() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldAiScore)
	return u
}

// AddAiScore adds v to the "ai_score" field.
func (u *QuizResultEventUpsert) AddAiScore(v int) *QuizResultEventUpsert {
	u.Add(quizresultevent.FieldAiScore, v)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuizResultEventUpsert) SetDifficulty(v string) *QuizResultEventUpsert {
	u.Set(quizresultevent.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuizResultEventUpsert) UpdateDifficulty() *QuizResultEventUpsert {
	u.SetExcluded(quizresultevent.FieldDifficulty)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizResultEventUpsertOne) UpdateNewValues() *QuizResultEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(quizresultevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(quizresultevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuizResultEventUpsertOne) Ignore() *QuizResultEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizResultEventUpsertOne) DoNothing() *QuizResultEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizResultEventCreate.OnConflict
// documentation for more info.
func (u *QuizResultEventUpsertOne) Update(set func(*QuizResultEventUpsert)) *QuizResultEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizResultEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuizResultEventUpsertOne) SetSessionID(v string) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateSessionID() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *QuizResultEventUpsertOne) SetCategoryID(v string) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateCategoryID() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateCategoryID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *QuizResultEventUpsertOne) SetTopicID(v string) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateTopicID() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateTopicID()
	})
}

// SetScore sets the "score" field.
func (u *QuizResultEventUpsertOne) SetScore(v int) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuizResultEventUpsertOne) AddScore(v int) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateScore() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateScore()
	})
}

// SetAiScore sets the "ai_score" field.
func (u *QuizResultEventUpsertOne) SetAiScore(v int) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetAiScore(v)
	})
}

// AddAiScore adds v to the "ai_score" field.
func (u *QuizResultEventUpsertOne) AddAiScore(v int) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.AddAiScore(v)
	})
}

// UpdateAiScore sets the "ai_score" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateAiScore() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateAiScore()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuizResultEventUpsertOne) SetDifficulty(v string) *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuizResultEventUpsertOne) UpdateDifficulty() *QuizResultEventUpsertOne {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateDifficulty()
	})
}

// Exec executes the query.
func (u *QuizResultEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizResultEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizResultEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuizResultEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuizResultEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuizResultEventCreateBulk is the builder for creating many QuizResultEvent entities in bulk.
type QuizResultEventCreateBulk struct {
	config
	err      error
	builders []*QuizResultEventCreate
	conflict []sql.ConflictOption
}

// Save creates the QuizResultEvent entities in the database.
func (_c *QuizResultEventCreateBulk) Save(ctx context.Context) ([]*QuizResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *QuizResultEventCreateBulk) SaveX(ctx context.Context) []*QuizResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizResultEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizResultEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizResultEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuizResultEventUpsertBulk {
	_c.conflict = opts
	return &QuizResultEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizResultEventCreateBulk) OnConflictColumns(columns ...string) *QuizResultEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizResultEventUpsertBulk{
		create: _c,
	}
}

// QuizResultEventUpsertBulk is the builder for "upsert"-ing
// a bulk of QuizResultEvent nodes.
type QuizResultEventUpsertBulk struct {
	create *QuizResultEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizResultEventUpsertBulk) UpdateNewValues() *QuizResultEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(quizresultevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(quizresultevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizResultEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuizResultEventUpsertBulk) Ignore() *QuizResultEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizResultEventUpsertBulk) DoNothing() *QuizResultEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizResultEventCreateBulk.OnConflict
// documentation for more info.
func (u *QuizResultEventUpsertBulk) Update(set func(*QuizResultEventUpsert)) *QuizResultEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizResultEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *QuizResultEventUpsertBulk) SetSessionID(v string) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateSessionID() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *QuizResultEventUpsertBulk) SetCategoryID(v string) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateCategoryID() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateCategoryID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *QuizResultEventUpsertBulk) SetTopicID(v string) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateTopicID() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateTopicID()
	})
}

// SetScore sets the "score" field.
func (u *QuizResultEventUpsertBulk) SetScore(v int) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *QuizResultEventUpsertBulk) AddScore(v int) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateScore() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateScore()
	})
}

// SetAiScore sets the "ai_score" field.
func (u *QuizResultEventUpsertBulk) SetAiScore(v int) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetAiScore(v)
	})
}

// AddAiScore adds v to the "ai_score" field.
func (u *QuizResultEventUpsertBulk) AddAiScore(v int) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.AddAiScore(v)
	})
}

// UpdateAiScore sets the "ai_score" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateAiScore() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateAiScore()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuizResultEventUpsertBulk) SetDifficulty(v string) *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuizResultEventUpsertBulk) UpdateDifficulty() *QuizResultEventUpsertBulk {
	return u.Update(func(s *QuizResultEventUpsert) {
		s.UpdateDifficulty()
	})
}

// Exec executes the query.
func (u *QuizResultEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuizResultEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizResultEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizResultEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
