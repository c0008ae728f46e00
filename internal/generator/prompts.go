package generator

import (
	"fmt"
	"strings"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

const quizSystemPrompt = `You are a quiz author. You write clear, factually accurate multiple-choice questions.
Reply with the JSON array only. Do not add commentary before or after it.`

// SystemPrompt is sent alongside every quiz request.
func SystemPrompt() string {
	return quizSystemPrompt
}

// BuildQuizPrompt asks for exactly numQuestions items in the JSON shape that
// ParseQuizReply expects.
func BuildQuizPrompt(topic string, difficulty models.Difficulty, numQuestions int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d multiple-choice questions about %s with a %s difficulty level.\n", numQuestions, topic, difficulty)
	fmt.Fprintf(&b, "- Each question should have four options labeled %s.\n", strings.Join(models.OptionLabels, ", "))
	b.WriteString("- Clearly specify the correct answer.\n")
	b.WriteString("- Provide a short explanation for why the correct answer is right.\n")
	fmt.Fprintf(&b, "- Ensure the difficulty level aligns with %s (%s, %s, or %s).\n",
		difficulty, models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard)
	b.WriteString("- Format the response as JSON:\n")
	b.WriteString(`  [
    {"question": "Q", "options": {"A": "Opt1", "B": "Opt2", "C": "Opt3", "D": "Opt4"}, "correct_answer": "A", "explanation": "Exp"}
  ]`)
	b.WriteString("\n")

	return b.String()
}
