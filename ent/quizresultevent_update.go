// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizclash/ent/predicate"
	"github.com/abhisek/quizclash/ent/quizresultevent"
)

// QuizResultEventUpdate is the builder for updating QuizResultEvent entities.
type QuizResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdate) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultEventUpdate) SetSessionID(v string) *QuizResultEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableSessionID(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *QuizResultEventUpdate) SetCategoryID(v string) *QuizResultEventUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableCategoryID(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizResultEventUpdate) SetTopicID(v string) *QuizResultEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableTopicID(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultEventUpdate) SetScore(v int) *QuizResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableScore(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultEventUpdate) AddScore(v int) *QuizResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *QuizResultEventUpdate) SetAiScore(v int) *QuizResultEventUpdate {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableAiScore(v *int) *QuizResultEventUpdate {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *QuizResultEventUpdate) AddAiScore(v int) *QuizResultEventUpdate {
	_u.mutation.AddAiScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResultEventUpdate) SetDifficulty(v string) *QuizResultEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResultEventUpdate) SetNillableDifficulty(v *string) *QuizResultEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdate) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := quizresultevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizresultevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresultevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(quizresultevent.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizresultevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(quizresultevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(quizresultevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultEventUpdateOne is the builder for updating a single QuizResultEvent entity.
type QuizResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultEventUpdateOne) SetSessionID(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableSessionID(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *QuizResultEventUpdateOne) SetCategoryID(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableCategoryID(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuizResultEventUpdateOne) SetTopicID(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableTopicID(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultEventUpdateOne) SetScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableScore(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultEventUpdateOne) AddScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAiScore sets the "ai_score" field.
func (_u *QuizResultEventUpdateOne) SetAiScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.ResetAiScore()
	_u.mutation.SetAiScore(v)
	return _u
}

// SetNillableAiScore sets the "ai_score" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableAiScore(v *int) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetAiScore(*v)
	}
	return _u
}

// AddAiScore adds value to the "ai_score" field.
func (_u *QuizResultEventUpdateOne) AddAiScore(v int) *QuizResultEventUpdateOne {
	_u.mutation.AddAiScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResultEventUpdateOne) SetDifficulty(v string) *QuizResultEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResultEventUpdateOne) SetNillableDifficulty(v *string) *QuizResultEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// Mutation returns the QuizResultEventMutation object of the builder.
func (_u *QuizResultEventUpdateOne) Mutation() *QuizResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultEventUpdate builder.
func (_u *QuizResultEventUpdateOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultEventUpdateOne) Select(field string, fields ...string) *QuizResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResultEvent entity.
func (_u *QuizResultEventUpdateOne) Save(ctx context.Context) (*QuizResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) SaveX(ctx context.Context) *QuizResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryID(); ok {
		if err := quizresultevent.CategoryIDValidator(v); err != nil {
			return &ValidationError{Name: "category_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.category_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := quizresultevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresultevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResultEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresultevent.Table, quizresultevent.Columns, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresultevent.FieldID)
		for _, f := range fields {
			if !quizresultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresultevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(quizresultevent.FieldCategoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(quizresultevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiScore(); ok {
		_spec.SetField(quizresultevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAiScore(); ok {
		_spec.AddField(quizresultevent.FieldAiScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresultevent.FieldDifficulty, field.TypeString, value)
	}
	_node = &QuizResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
