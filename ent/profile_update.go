// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizclash/ent/predicate"
	"github.com/abhisek/quizclash/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGender sets the "gender" field.
func (_u *ProfileUpdate) SetGender(v string) *ProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGender(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *ProfileUpdate) SetAgeGroup(v string) *ProfileUpdate {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAgeGroup(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *ProfileUpdate) SetNationality(v string) *ProfileUpdate {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableNationality(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// SetRatings sets the "ratings" field.
func (_u *ProfileUpdate) SetRatings(v map[string]int) *ProfileUpdate {
	_u.mutation.SetRatings(v)
	return _u
}

// ClearRatings clears the value of the "ratings" field.
func (_u *ProfileUpdate) ClearRatings() *ProfileUpdate {
	_u.mutation.ClearRatings()
	return _u
}

// SetSeenQuestions sets the "seen_questions" field.
func (_u *ProfileUpdate) SetSeenQuestions(v []int) *ProfileUpdate {
	_u.mutation.SetSeenQuestions(v)
	return _u
}

// AppendSeenQuestions appends value to the "seen_questions" field.
func (_u *ProfileUpdate) AppendSeenQuestions(v []int) *ProfileUpdate {
	_u.mutation.AppendSeenQuestions(v)
	return _u
}

// ClearSeenQuestions clears the value of the "seen_questions" field.
func (_u *ProfileUpdate) ClearSeenQuestions() *ProfileUpdate {
	_u.mutation.ClearSeenQuestions()
	return _u
}

// SetHighScores sets the "high_scores" field.
func (_u *ProfileUpdate) SetHighScores(v map[string]int) *ProfileUpdate {
	_u.mutation.SetHighScores(v)
	return _u
}

// ClearHighScores clears the value of the "high_scores" field.
func (_u *ProfileUpdate) ClearHighScores() *ProfileUpdate {
	_u.mutation.ClearHighScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(profile.FieldNationality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ratings(); ok {
		_spec.SetField(profile.FieldRatings, field.TypeJSON, value)
	}
	if _u.mutation.RatingsCleared() {
		_spec.ClearField(profile.FieldRatings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeenQuestions(); ok {
		_spec.SetField(profile.FieldSeenQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeenQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSeenQuestions, value)
		})
	}
	if _u.mutation.SeenQuestionsCleared() {
		_spec.ClearField(profile.FieldSeenQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighScores(); ok {
		_spec.SetField(profile.FieldHighScores, field.TypeJSON, value)
	}
	if _u.mutation.HighScoresCleared() {
		_spec.ClearField(profile.FieldHighScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetGender sets the "gender" field.
func (_u *ProfileUpdateOne) SetGender(v string) *ProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGender(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *ProfileUpdateOne) SetAgeGroup(v string) *ProfileUpdateOne {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAgeGroup(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *ProfileUpdateOne) SetNationality(v string) *ProfileUpdateOne {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableNationality(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// SetRatings sets the "ratings" field.
func (_u *ProfileUpdateOne) SetRatings(v map[string]int) *ProfileUpdateOne {
	_u.mutation.SetRatings(v)
	return _u
}

// ClearRatings clears the value of the "ratings" field.
func (_u *ProfileUpdateOne) ClearRatings() *ProfileUpdateOne {
	_u.mutation.ClearRatings()
	return _u
}

// SetSeenQuestions sets the "seen_questions" field.
func (_u *ProfileUpdateOne) SetSeenQuestions(v []int) *ProfileUpdateOne {
	_u.mutation.SetSeenQuestions(v)
	return _u
}

// AppendSeenQuestions appends value to the "seen_questions" field.
func (_u *ProfileUpdateOne) AppendSeenQuestions(v []int) *ProfileUpdateOne {
	_u.mutation.AppendSeenQuestions(v)
	return _u
}

// ClearSeenQuestions clears the value of the "seen_questions" field.
func (_u *ProfileUpdateOne) ClearSeenQuestions() *ProfileUpdateOne {
	_u.mutation.ClearSeenQuestions()
	return _u
}

// SetHighScores sets the "high_scores" field.
func (_u *ProfileUpdateOne) SetHighScores(v map[string]int) *ProfileUpdateOne {
	_u.mutation.SetHighScores(v)
	return _u
}

// ClearHighScores clears the value of the "high_scores" field.
func (_u *ProfileUpdateOne) ClearHighScores() *ProfileUpdateOne {
	_u.mutation.ClearHighScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(profile.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(profile.FieldNationality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ratings(); ok {
		_spec.SetField(profile.FieldRatings, field.TypeJSON, value)
	}
	if _u.mutation.RatingsCleared() {
		_spec.ClearField(profile.FieldRatings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SeenQuestions(); ok {
		_spec.SetField(profile.FieldSeenQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeenQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSeenQuestions, value)
		})
	}
	if _u.mutation.SeenQuestionsCleared() {
		_spec.ClearField(profile.FieldSeenQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.HighScores(); ok {
		_spec.SetField(profile.FieldHighScores, field.TypeJSON, value)
	}
	if _u.mutation.HighScoresCleared() {
		_spec.ClearField(profile.FieldHighScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
