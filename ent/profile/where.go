// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizclash/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldGender, v))
}

// AgeGroup applies equality check predicate on the "age_group" field. It's identical to AgeGroupEQ.
func AgeGroup(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAgeGroup, v))
}

// Nationality applies equality check predicate on the "nationality" field. It's identical to NationalityEQ.
func Nationality(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldNationality, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldGender, v))
}

// AgeGroupEQ applies the EQ predicate on the "age_group" field.
func AgeGroupEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAgeGroup, v))
}

// AgeGroupNEQ applies the NEQ predicate on the "age_group" field.
func AgeGroupNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAgeGroup, v))
}

// AgeGroupIn applies the In predicate on the "age_group" field.
func AgeGroupIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAgeGroup, vs...))
}

// AgeGroupNotIn applies the NotIn predicate on the "age_group" field.
func AgeGroupNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAgeGroup, vs...))
}

// AgeGroupGT applies the GT predicate on the "age_group" field.
func AgeGroupGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAgeGroup, v))
}

// AgeGroupGTE applies the GTE predicate on the "age_group" field.
func AgeGroupGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAgeGroup, v))
}

// AgeGroupLT applies the LT predicate on the "age_group" field.
func AgeGroupLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAgeGroup, v))
}

// AgeGroupLTE applies the LTE predicate on the "age_group" field.
func AgeGroupLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAgeGroup, v))
}

// AgeGroupContains applies the Contains predicate on the "age_group" field.
func AgeGroupContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAgeGroup, v))
}

// AgeGroupHasPrefix applies the HasPrefix predicate on the "age_group" field.
func AgeGroupHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAgeGroup, v))
}

// AgeGroupHasSuffix applies the HasSuffix predicate on the "age_group" field.
func AgeGroupHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAgeGroup, v))
}

// AgeGroupEqualFold applies the EqualFold predicate on the "age_group" field.
func AgeGroupEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAgeGroup, v))
}

// AgeGroupContainsFold applies the ContainsFold predicate on the "age_group" field.
func AgeGroupContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAgeGroup, v))
}

// NationalityEQ applies the EQ predicate on the "nationality" field.
func NationalityEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldNationality, v))
}

// NationalityNEQ applies the NEQ predicate on the "nationality" field.
func NationalityNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldNationality, v))
}

// NationalityIn applies the In predicate on the "nationality" field.
func NationalityIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldNationality, vs...))
}

// NationalityNotIn applies the NotIn predicate on the "nationality" field.
func NationalityNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldNationality, vs...))
}

// NationalityGT applies the GT predicate on the "nationality" field.
func NationalityGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldNationality, v))
}

// NationalityGTE applies the GTE predicate on the "nationality" field.
func NationalityGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldNationality, v))
}

// NationalityLT applies the LT predicate on the "nationality" field.
func NationalityLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldNationality, v))
}

// NationalityLTE applies the LTE predicate on the "nationality" field.
func NationalityLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldNationality, v))
}

// NationalityContains applies the Contains predicate on the "nationality" field.
func NationalityContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldNationality, v))
}

// NationalityHasPrefix applies the HasPrefix predicate on the "nationality" field.
func NationalityHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldNationality, v))
}

// NationalityHasSuffix applies the HasSuffix predicate on the "nationality" field.
func NationalityHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldNationality, v))
}

// NationalityEqualFold applies the EqualFold predicate on the "nationality" field.
func NationalityEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldNationality, v))
}

// NationalityContainsFold applies the ContainsFold predicate on the "nationality" field.
func NationalityContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldNationality, v))
}

// RatingsIsNil applies the IsNil predicate on the "ratings" field.
func RatingsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldRatings))
}

// RatingsNotNil applies the NotNil predicate on the "ratings" field.
func RatingsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldRatings))
}

// SeenQuestionsIsNil applies the IsNil predicate on the "seen_questions" field.
func SeenQuestionsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSeenQuestions))
}

// SeenQuestionsNotNil applies the NotNil predicate on the "seen_questions" field.
func SeenQuestionsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSeenQuestions))
}

// HighScoresIsNil applies the IsNil predicate on the "high_scores" field.
func HighScoresIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldHighScores))
}

// HighScoresNotNil applies the NotNil predicate on the "high_scores" field.
func HighScoresNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldHighScores))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
