// Package topics maps player-facing topic labels to stable,
// language-invariant topic identities used as storage keys.
package topics

import "github.com/abhisek/quizclash/internal/quiz"

// Resolve maps a display label shown in lang to its stable identity.
// Resolution never fails: a label unknown in both the language table and
// the master table degrades to the General category with the label used
// verbatim as stable id.
func Resolve(label string, lang quiz.Language) quiz.TopicRequest {
	// Localized table first: index position carries over to the master list.
	if table, ok := localizedSubtopics[lang]; ok {
		for catID, labels := range table {
			for i, l := range labels {
				if l == label {
					return quiz.TopicRequest{
						DisplayLabel: label,
						StableID:     masterSubtopics[catID][i],
						CategoryID:   catID,
					}
				}
			}
		}
	}

	// The label may already be in canonical form (cache keys, internal
	// calls, or languages that ship English labels).
	for catID, labels := range masterSubtopics {
		for _, l := range labels {
			if l == label {
				return quiz.TopicRequest{
					DisplayLabel: label,
					StableID:     label,
					CategoryID:   catID,
				}
			}
		}
	}

	// Degraded path: unknown label, still playable.
	return quiz.TopicRequest{
		DisplayLabel: label,
		StableID:     label,
		CategoryID:   CategoryGeneral,
	}
}

// ResolveAll resolves a list of labels, preserving order.
func ResolveAll(labels []string, lang quiz.Language) []quiz.TopicRequest {
	out := make([]quiz.TopicRequest, len(labels))
	for i, l := range labels {
		out[i] = Resolve(l, lang)
	}
	return out
}
