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
	"github.com/abhisek/quizclash/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGender sets the "gender" field.
func (_c *ProfileCreate) SetGender(v string) *ProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableGender(v *string) *ProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetAgeGroup sets the "age_group" field.
func (_c *ProfileCreate) SetAgeGroup(v string) *ProfileCreate {
	_c.mutation.SetAgeGroup(v)
	return _c
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAgeGroup(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAgeGroup(*v)
	}
	return _c
}

// SetNationality sets the "nationality" field.
func (_c *ProfileCreate) SetNationality(v string) *ProfileCreate {
	_c.mutation.SetNationality(v)
	return _c
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableNationality(v *string) *ProfileCreate {
	if v != nil {
		_c.SetNationality(*v)
	}
	return _c
}

// SetRatings sets the "ratings" field.
func (_c *ProfileCreate) SetRatings(v map[string]int) *ProfileCreate {
	_c.mutation.SetRatings(v)
	return _c
}

// SetSeenQuestions sets the "seen_questions" field.
func (_c *ProfileCreate) SetSeenQuestions(v []int) *ProfileCreate {
	_c.mutation.SetSeenQuestions(v)
	return _c
}

// SetHighScores sets the "high_scores" field.
func (_c *ProfileCreate) SetHighScores(v map[string]int) *ProfileCreate {
	_c.mutation.SetHighScores(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Gender(); !ok {
		v := profile.DefaultGender
		_c.mutation.SetGender(v)
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		v := profile.DefaultAgeGroup
		_c.mutation.SetAgeGroup(v)
	}
	if _, ok := _c.mutation.Nationality(); !ok {
		v := profile.DefaultNationality
		_c.mutation.SetNationality(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Profile.gender"`)}
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		return &ValidationError{Name: "age_group", err: errors.New(`ent: missing required field "Profile.age_group"`)}
	}
	if _, ok := _c.mutation.Nationality(); !ok {
		return &ValidationError{Name: "nationality", err: errors.New(`ent: missing required field "Profile.nationality"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
		_node.AgeGroup = value
	}
	if value, ok := _c.mutation.Nationality(); ok {
		_spec.SetField(profile.FieldNationality, field.TypeString, value)
		_node.Nationality = value
	}
	if value, ok := _c.mutation.Ratings(); ok {
		_spec.SetField(profile.FieldRatings, field.TypeJSON, value)
		_node.Ratings = value
	}
	if value, ok := _c.mutation.SeenQuestions(); ok {
		_spec.SetField(profile.FieldSeenQuestions, field.TypeJSON, value)
		_node.SeenQuestions = value
	}
	if value, ok := _c.mutation.HighScores(); ok {
		_spec.SetField(profile.FieldHighScores, field.TypeJSON, value)
		_node.HighScores = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetGender(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetGender(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetGender sets the "gender" field.
func (u *ProfileUpsert) SetGender(v string) *ProfileUpsert {
	u.Set(profile.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateGender() *ProfileUpsert {
	u.SetExcluded(profile.FieldGender)
	return u
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsert) SetAgeGroup(v string) *ProfileUpsert {
	u.Set(profile.FieldAgeGroup, v)
	return u
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAgeGroup() *ProfileUpsert {
	u.SetExcluded(profile.FieldAgeGroup)
	return u
}

// SetNationality sets the "nationality" field.
func (u *ProfileUpsert) SetNationality(v string) *ProfileUpsert {
	u.Set(profile.FieldNationality, v)
	return u
}

// UpdateNationality sets the "nationality" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateNationality() *ProfileUpsert {
	u.SetExcluded(profile.FieldNationality)
	return u
}

// SetRatings sets the "ratings" field.
func (u *ProfileUpsert) SetRatings(v map[string]int) *ProfileUpsert {
	u.Set(profile.FieldRatings, v)
	return u
}

// UpdateRatings sets the "ratings" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateRatings() *ProfileUpsert {
	u.SetExcluded(profile.FieldRatings)
	return u
}

// ClearRatings clears the value of the "ratings" field.
func (u *ProfileUpsert) ClearRatings() *ProfileUpsert {
	u.SetNull(profile.FieldRatings)
	return u
}

// SetSeenQuestions sets the "seen_questions" field.
func (u *ProfileUpsert) SetSeenQuestions(v []int) *ProfileUpsert {
	u.Set(profile.FieldSeenQuestions, v)
	return u
}

// UpdateSeenQuestions sets the "seen_questions" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateSeenQuestions() *ProfileUpsert {
	u.SetExcluded(profile.FieldSeenQuestions)
	return u
}

// ClearSeenQuestions clears the value of the "seen_questions" field.
func (u *ProfileUpsert) ClearSeenQuestions() *ProfileUpsert {
	u.SetNull(profile.FieldSeenQuestions)
	return u
}

// SetHighScores sets the "high_scores" field.
func (u *ProfileUpsert) SetHighScores(v map[string]int) *ProfileUpsert {
	u.Set(profile.FieldHighScores, v)
	return u
}

// UpdateHighScores sets the "high_scores" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateHighScores() *ProfileUpsert {
	u.SetExcluded(profile.FieldHighScores)
	return u
}

// ClearHighScores clears the value of the "high_scores" field.
func (u *ProfileUpsert) ClearHighScores() *ProfileUpsert {
	u.SetNull(profile.FieldHighScores)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetGender sets the "gender" field.
func (u *ProfileUpsertOne) SetGender(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateGender() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGender()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsertOne) SetAgeGroup(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAgeGroup() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetNationality sets the "nationality" field.
func (u *ProfileUpsertOne) SetNationality(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetNationality(v)
	})
}

// UpdateNationality sets the "nationality" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateNationality() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateNationality()
	})
}

// SetRatings sets the "ratings" field.
func (u *ProfileUpsertOne) SetRatings(v map[string]int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetRatings(v)
	})
}

// UpdateRatings sets the "ratings" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateRatings() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateRatings()
	})
}

// ClearRatings clears the value of the "ratings" field.
func (u *ProfileUpsertOne) ClearRatings() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearRatings()
	})
}

// SetSeenQuestions sets the "seen_questions" field.
func (u *ProfileUpsertOne) SetSeenQuestions(v []int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSeenQuestions(v)
	})
}

// UpdateSeenQuestions sets the "seen_questions" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateSeenQuestions() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSeenQuestions()
	})
}

// ClearSeenQuestions clears the value of the "seen_questions" field.
func (u *ProfileUpsertOne) ClearSeenQuestions() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearSeenQuestions()
	})
}

// SetHighScores sets the "high_scores" field.
func (u *ProfileUpsertOne) SetHighScores(v map[string]int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetHighScores(v)
	})
}

// UpdateHighScores sets the "high_scores" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateHighScores() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateHighScores()
	})
}

// ClearHighScores clears the value of the "high_scores" field.
func (u *ProfileUpsertOne) ClearHighScores() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearHighScores()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetGender(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetGender sets the "gender" field.
func (u *ProfileUpsertBulk) SetGender(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateGender() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateGender()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsertBulk) SetAgeGroup(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAgeGroup() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetNationality sets the "nationality" field.
func (u *ProfileUpsertBulk) SetNationality(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetNationality(v)
	})
}

// UpdateNationality sets the "nationality" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateNationality() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateNationality()
	})
}

// SetRatings sets the "ratings" field.
func (u *ProfileUpsertBulk) SetRatings(v map[string]int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetRatings(v)
	})
}

// UpdateRatings sets the "ratings" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateRatings() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateRatings()
	})
}

// ClearRatings clears the value of the "ratings" field.
func (u *ProfileUpsertBulk) ClearRatings() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearRatings()
	})
}

// SetSeenQuestions sets the "seen_questions" field.
func (u *ProfileUpsertBulk) SetSeenQuestions(v []int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSeenQuestions(v)
	})
}

// UpdateSeenQuestions sets the "seen_questions" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateSeenQuestions() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSeenQuestions()
	})
}

// ClearSeenQuestions clears the value of the "seen_questions" field.
func (u *ProfileUpsertBulk) ClearSeenQuestions() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearSeenQuestions()
	})
}

// SetHighScores sets the "high_scores" field.
func (u *ProfileUpsertBulk) SetHighScores(v map[string]int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetHighScores(v)
	})
}

// UpdateHighScores sets the "high_scores" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateHighScores() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateHighScores()
	})
}

// ClearHighScores clears the value of the "high_scores" field.
func (u *ProfileUpsertBulk) ClearHighScores() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearHighScores()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
