package quizgen

import "github.com/abhisek/quizclash/internal/quiz"

// fallbackSet is the emergency question set served when generation
// fails outright. English only; better a playable round than an error.
var fallbackSet = []quiz.QuestionRecord{
	{
		ID:            1,
		Prompt:        "Which is not a characteristic of Human Intelligence?",
		Options:       []string{"Emotional Intuition", "Pattern Recognition", "Finite Biological Memory", "Infinite Electricity Consumption"},
		CorrectOption: "Infinite Electricity Consumption",
		Explanation:   "AI uses vast amounts of electricity compared to the human brain.",
	},
	{
		ID:            2,
		Prompt:        "What is the Turing Test designed to determine?",
		Options:       []string{"CPU Speed", "AI's ability to exhibit human-like behavior", "Battery life", "Internet connectivity"},
		CorrectOption: "AI's ability to exhibit human-like behavior",
	},
	{
		ID:            3,
		Prompt:        "Which contest does this quiz put you in?",
		Options:       []string{"Weightlifting", "Battle of Wits vs AI", "Cooking speed", "Running endurance"},
		CorrectOption: "Battle of Wits vs AI",
	},
	{
		ID:            4,
		Prompt:        "In AI terminology, what does 'LLM' stand for?",
		Options:       []string{"Light Level Monitor", "Large Language Model", "Long Logic Mode", "Lunar Landing Module"},
		CorrectOption: "Large Language Model",
	},
	{
		ID:            5,
		Prompt:        "Who is often called the father of Computer Science?",
		Options:       []string{"Alan Turing", "Steve Jobs", "Elon Musk", "Thomas Edison"},
		CorrectOption: "Alan Turing",
	},
}

// FallbackSet returns a copy of the emergency question set.
func FallbackSet() []quiz.QuestionRecord {
	out := make([]quiz.QuestionRecord, len(fallbackSet))
	copy(out, fallbackSet)
	return out
}
