package topics

import (
	"testing"

	"github.com/abhisek/quizclash/internal/quiz"
)

func TestResolveLocalizedLabel(t *testing.T) {
	req := Resolve("양자 역학", quiz.LangKorean)
	if req.StableID != "Quantum Physics" {
		t.Errorf("stable id = %q, want Quantum Physics", req.StableID)
	}
	if req.CategoryID != CategoryScience {
		t.Errorf("category = %q, want Science", req.CategoryID)
	}
	if req.DisplayLabel != "양자 역학" {
		t.Errorf("display label = %q", req.DisplayLabel)
	}
}

func TestResolveCanonicalLabel(t *testing.T) {
	req := Resolve("World War II", quiz.LangEnglish)
	if req.StableID != "World War II" || req.CategoryID != CategoryHistory {
		t.Errorf("got %+v", req)
	}
}

func TestResolveCanonicalLabelInOtherLanguage(t *testing.T) {
	// A canonical label passed while playing in Korean still resolves
	// (cache round-trips hand back stable ids).
	req := Resolve("Quantum Physics", quiz.LangKorean)
	if req.StableID != "Quantum Physics" || req.CategoryID != CategoryScience {
		t.Errorf("got %+v", req)
	}
}

func TestResolveUnknownLabelDegrades(t *testing.T) {
	req := Resolve("Obscure Trivia", quiz.LangEnglish)
	if req.StableID != "Obscure Trivia" {
		t.Errorf("stable id = %q, want verbatim label", req.StableID)
	}
	if req.CategoryID != CategoryGeneral {
		t.Errorf("category = %q, want General", req.CategoryID)
	}
}

func TestResolveAllPreservesOrder(t *testing.T) {
	labels := []string{"냉전", "양자 역학", "Mystery Topic"}
	reqs := ResolveAll(labels, quiz.LangKorean)
	want := []string{"Cold War", "Quantum Physics", "Mystery Topic"}
	for i, w := range want {
		if reqs[i].StableID != w {
			t.Errorf("reqs[%d].StableID = %q, want %q", i, reqs[i].StableID, w)
		}
		if reqs[i].DisplayLabel != labels[i] {
			t.Errorf("reqs[%d].DisplayLabel = %q, want %q", i, reqs[i].DisplayLabel, labels[i])
		}
	}
}

func TestTablesAreIndexParallel(t *testing.T) {
	for lang, table := range localizedSubtopics {
		for catID, labels := range table {
			master, ok := masterSubtopics[catID]
			if !ok {
				t.Errorf("%s: category %q missing from master table", lang, catID)
				continue
			}
			if len(labels) != len(master) {
				t.Errorf("%s/%s: %d labels, master has %d", lang, catID, len(labels), len(master))
			}
		}
	}
}

func TestSubtopicsFallsBackToMaster(t *testing.T) {
	es := Subtopics(CategoryScience, quiz.LangSpanish)
	if es[0] != "Quantum Physics" {
		t.Errorf("expected master labels for es, got %q", es[0])
	}
}
