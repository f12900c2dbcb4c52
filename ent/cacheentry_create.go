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
	"github.com/abhisek/quizclash/ent/cacheentry"
)

// CacheEntryCreate is the builder for creating a CacheEntry entity.
type CacheEntryCreate struct {
	config
	mutation *CacheEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *CacheEntryCreate) SetKey(v string) *CacheEntryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CacheEntryCreate) SetPayload(v string) *CacheEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CacheEntryCreate) SetUpdatedAt(v time.Time) *CacheEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableUpdatedAt(v *time.Time) *CacheEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_c *CacheEntryCreate) Mutation() *CacheEntryMutation {
	return _c.mutation
}

// Save creates the CacheEntry in the database.
func (_c *CacheEntryCreate) Save(ctx context.Context) (*CacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CacheEntryCreate) SaveX(ctx context.Context) *CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CacheEntryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cacheentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CacheEntryCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "CacheEntry.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := cacheentry.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "CacheEntry.payload"`)}
	}
	if v, ok := _c.mutation.Payload(); ok {
		if err := cacheentry.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.payload": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CacheEntry.updated_at"`)}
	}
	return nil
}

func (_c *CacheEntryCreate) sqlSave(ctx context.Context) (*CacheEntry, error) {
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

func (_c *CacheEntryCreate) createSpec() (*CacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cacheentry.Table, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(cacheentry.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(cacheentry.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cacheentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheEntry.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheEntryUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheEntryCreate) OnConflict(opts ...sql.ConflictOption) *CacheEntryUpsertOne {
	_c.conflict = opts
	return &CacheEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheEntryCreate) OnConflictColumns(columns ...string) *CacheEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheEntryUpsertOne{
		create: _c,
	}
}

type (
	// CacheEntryUpsertOne is the builder for "upsert"-ing
	//  one CacheEntry node.
	CacheEntryUpsertOne struct {
		create *CacheEntryCreate
	}

	// CacheEntryUpsert is the "OnConflict" setter.
	CacheEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *CacheEntryUpsert) SetKey(v string) *CacheEntryUpsert {
	u.Set(cacheentry.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateKey() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldKey)
	return u
}

// SetPayload sets the "payload" field.
func (u *CacheEntryUpsert) SetPayload(v string) *CacheEntryUpsert {
	u.Set(cacheentry.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdatePayload() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CacheEntryUpsert) SetUpdatedAt(v time.Time) *CacheEntryUpsert {
	u.Set(cacheentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CacheEntryUpsert) UpdateUpdatedAt() *CacheEntryUpsert {
	u.SetExcluded(cacheentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CacheEntryUpsertOne) UpdateNewValues() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CacheEntryUpsertOne) Ignore() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheEntryUpsertOne) DoNothing() *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheEntryCreate.OnConflict
// documentation for more info.
func (u *CacheEntryUpsertOne) Update(set func(*CacheEntryUpsert)) *CacheEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *CacheEntryUpsertOne) SetKey(v string) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateKey() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateKey()
	})
}

// SetPayload sets the "payload" field.
func (u *CacheEntryUpsertOne) SetPayload(v string) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdatePayload() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CacheEntryUpsertOne) SetUpdatedAt(v time.Time) *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CacheEntryUpsertOne) UpdateUpdatedAt() *CacheEntryUpsertOne {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CacheEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CacheEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CacheEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CacheEntryCreateBulk is the builder for creating many CacheEntry entities in bulk.
type CacheEntryCreateBulk struct {
	config
	err      error
	builders []*CacheEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CacheEntry entities in the database.
func (_c *CacheEntryCreateBulk) Save(ctx context.Context) ([]*CacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CacheEntryMutation)
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
func (_c *CacheEntryCreateBulk) SaveX(ctx context.Context) []*CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheEntryUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CacheEntryUpsertBulk {
	_c.conflict = opts
	return &CacheEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheEntryCreateBulk) OnConflictColumns(columns ...string) *CacheEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheEntryUpsertBulk{
		create: _c,
	}
}

// CacheEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CacheEntry nodes.
type CacheEntryUpsertBulk struct {
	create *CacheEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CacheEntryUpsertBulk) UpdateNewValues() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CacheEntryUpsertBulk) Ignore() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheEntryUpsertBulk) DoNothing() *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CacheEntryUpsertBulk) Update(set func(*CacheEntryUpsert)) *CacheEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *CacheEntryUpsertBulk) SetKey(v string) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateKey() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateKey()
	})
}

// SetPayload sets the "payload" field.
func (u *CacheEntryUpsertBulk) SetPayload(v string) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdatePayload() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CacheEntryUpsertBulk) SetUpdatedAt(v time.Time) *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CacheEntryUpsertBulk) UpdateUpdatedAt() *CacheEntryUpsertBulk {
	return u.Update(func(s *CacheEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CacheEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CacheEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
