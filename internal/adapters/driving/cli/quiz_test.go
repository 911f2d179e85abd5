package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// stubQuiz asks the same addition question and accepts its solution.
type stubQuiz struct {
	asked []domain.QuestionKind
}

func (s *stubQuiz) NewQuestion(_ context.Context, kind domain.QuestionKind) (*domain.Question, error) {
	s.asked = append(s.asked, kind)
	return &domain.Question{Kind: kind, Expression: "[1, 2] + [3, 4]"}, nil
}

func (s *stubQuiz) Solve(_ context.Context, _ *domain.Question) (string, error) {
	return "[4, 6]", nil
}

func (s *stubQuiz) Check(_ context.Context, _ *domain.Question, answer string) (bool, error) {
	if !strings.HasPrefix(answer, "[") {
		return false, domain.ErrFormat
	}
	return answer == "[4, 6]", nil
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestQuizCmd(t *testing.T) {
	assert.Equal(t, "quiz [kind]", quizCmd.Use)
}

func TestQuizCmd_Session(t *testing.T) {
	setupTestServices(t)
	stub := &stubQuiz{}
	quizService = stub

	out, err := execute(t, script("[1, 1]", "6", "[4, 6]", "answer", "exit"), "quiz", "add")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Solve for: [1, 2] + [3, 4]")
	assert.Contains(t, out, "Incorrect solution. Try again.")
	assert.Contains(t, out, "Error: invalid format. Try again.")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "2. Solve for: ")
	assert.Contains(t, out, "Correct answer to question 2 was [4, 6]")
	assert.Contains(t, out, "3. Solve for: ")
	assert.Contains(t, out, "Correct: 1, revealed: 1")
	assert.Len(t, stub.asked, 3)
}

func TestQuizCmd_KindByNumber(t *testing.T) {
	setupTestServices(t)
	stub := &stubQuiz{}
	quizService = stub

	_, err := execute(t, script("exit"), "quiz", "5")

	require.NoError(t, err)
	assert.Equal(t, []domain.QuestionKind{domain.QuestionAngle}, stub.asked)
}

func TestQuizCmd_UnknownKind(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "quiz", "divide")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuizCmd_Menu(t *testing.T) {
	setupTestServices(t)
	stub := &stubQuiz{}
	quizService = stub

	out, err := execute(t, script("9", "cross", "exit", "2", "quit", "7"), "quiz")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "===== Quiz ====="))
	assert.Contains(t, out, "1. Cross Product")
	assert.Contains(t, out, "7. Exit")
	assert.Contains(t, out, "Wrong input. Try again.")
	assert.Equal(t, []domain.QuestionKind{domain.QuestionCross, domain.QuestionDot}, stub.asked)
}

func TestQuizCmd_EndOfInput(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, script("1", "answer"), "quiz")
	require.NoError(t, err)

	assert.Contains(t, out, "Correct answer to question 1 was [")
	assert.Contains(t, out, "Correct: 0, revealed: 1")
	assert.Equal(t, 1, strings.Count(out, "===== Quiz ====="))
}

func TestQuizCmd_RealQuestions(t *testing.T) {
	setupTestServices(t)

	for _, kind := range domain.QuestionKinds() {
		t.Run(string(kind), func(t *testing.T) {
			out, err := execute(t, script("answer", "exit"), "quiz", string(kind))

			require.NoError(t, err)
			assert.Contains(t, out, "1. Solve for: ")
			assert.Contains(t, out, "Correct answer to question 1 was ")
		})
	}
}
