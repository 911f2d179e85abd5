package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/expression"
)

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"vector expression such as 5[6, 4] + [1/2, -3]"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	ID         string `json:"id"`
}

// AngleInput is the input schema for the angle tool.
type AngleInput struct {
	A string `json:"a" jsonschema:"first vector, e.g. [1, 0]"`
	B string `json:"b" jsonschema:"second vector of the same dimension"`
}

// AngleOutput is the output schema for the angle tool.
type AngleOutput struct {
	Degrees int `json:"degrees"`
}

// MagnitudeInput is the input schema for the magnitude tool.
type MagnitudeInput struct {
	Vector string `json:"vector" jsonschema:"vector such as [3, 4]"`
}

// MagnitudeOutput is the output schema for the magnitude tool.
type MagnitudeOutput struct {
	Magnitude float64 `json:"magnitude"`
}

// NewQuestionInput is the input schema for the new_question tool.
type NewQuestionInput struct {
	Kind string `json:"kind" jsonschema:"cross, dot, subtract, add, angle or mixed"`
}

// QuestionOutput describes a generated question.
type QuestionOutput struct {
	Kind       string   `json:"kind"`
	Prompt     string   `json:"prompt"`
	Expression string   `json:"expression,omitempty"`
	Operands   []string `json:"operands,omitempty"`
}

// CheckAnswerInput is the input schema for the check_answer tool.
type CheckAnswerInput struct {
	Kind       string   `json:"kind" jsonschema:"question kind: cross, dot, subtract, add, angle or mixed"`
	Expression string   `json:"expression,omitempty" jsonschema:"question expression; required unless kind is angle"`
	Operands   []string `json:"operands,omitempty" jsonschema:"the two vectors of an angle question"`
	Answer     string   `json:"answer" jsonschema:"proposed answer: a vector, a scalar or whole degrees"`
}

// CheckAnswerOutput is the output schema for the check_answer tool.
type CheckAnswerOutput struct {
	Correct  bool   `json:"correct"`
	Solution string `json:"solution"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Evaluate a vector expression with exact fractions",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "angle",
		Description: "Angle between two vectors in whole degrees",
	}, s.handleAngle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "magnitude",
		Description: "Euclidean length of a vector",
	}, s.handleMagnitude)

	if s.ports.Quiz == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "new_question",
		Description: "Generate a practice question of the given kind",
	}, s.handleNewQuestion)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_answer",
		Description: "Grade an answer to a practice question and return the solution",
	}, s.handleCheckAnswer)
}

func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	calc, err := s.ports.Calculator.Evaluate(ctx, input.Expression)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}
	return nil, EvaluateOutput{
		Expression: calc.Expression,
		Result:     calc.Result,
		ID:         calc.ID,
	}, nil
}

func (s *Server) handleAngle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AngleInput,
) (*mcp.CallToolResult, AngleOutput, error) {
	degrees, err := s.ports.Calculator.Angle(ctx, input.A, input.B)
	if err != nil {
		return nil, AngleOutput{}, err
	}
	return nil, AngleOutput{Degrees: degrees}, nil
}

func (s *Server) handleMagnitude(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MagnitudeInput,
) (*mcp.CallToolResult, MagnitudeOutput, error) {
	length, err := s.ports.Calculator.Magnitude(ctx, input.Vector)
	if err != nil {
		return nil, MagnitudeOutput{}, err
	}
	return nil, MagnitudeOutput{Magnitude: length}, nil
}

func (s *Server) handleNewQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NewQuestionInput,
) (*mcp.CallToolResult, QuestionOutput, error) {
	if s.ports.Quiz == nil {
		return nil, QuestionOutput{}, ErrQuizUnavailable
	}
	kind, err := domain.ParseQuestionKind(input.Kind)
	if err != nil {
		return nil, QuestionOutput{}, err
	}
	q, err := s.ports.Quiz.NewQuestion(ctx, kind)
	if err != nil {
		return nil, QuestionOutput{}, err
	}

	out := QuestionOutput{
		Kind:       string(q.Kind),
		Prompt:     q.Prompt(),
		Expression: q.Expression,
	}
	for _, v := range q.Operands {
		out.Operands = append(out.Operands, v.String())
	}
	return nil, out, nil
}

func (s *Server) handleCheckAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckAnswerInput,
) (*mcp.CallToolResult, CheckAnswerOutput, error) {
	if s.ports.Quiz == nil {
		return nil, CheckAnswerOutput{}, ErrQuizUnavailable
	}
	q, err := questionFromInput(input)
	if err != nil {
		return nil, CheckAnswerOutput{}, err
	}

	solution, err := s.ports.Quiz.Solve(ctx, q)
	if err != nil {
		return nil, CheckAnswerOutput{}, err
	}
	correct, err := s.ports.Quiz.Check(ctx, q, input.Answer)
	if err != nil {
		return nil, CheckAnswerOutput{}, err
	}
	return nil, CheckAnswerOutput{Correct: correct, Solution: solution}, nil
}

// questionFromInput rebuilds the question a client was given.
func questionFromInput(input CheckAnswerInput) (*domain.Question, error) {
	kind, err := domain.ParseQuestionKind(input.Kind)
	if err != nil {
		return nil, err
	}
	q := &domain.Question{Kind: kind, Expression: expression.Normalize(input.Expression)}

	if kind != domain.QuestionAngle {
		if q.Expression == "" {
			return nil, fmt.Errorf("%w: expression is required for %s questions", domain.ErrInvalidInput, kind)
		}
		return q, nil
	}

	if len(input.Operands) != 2 {
		return nil, fmt.Errorf("%w: angle questions need 2 operands, got %d", domain.ErrInvalidInput, len(input.Operands))
	}
	for _, text := range input.Operands {
		v, err := domain.ParseVector(expression.Normalize(text))
		if err != nil {
			return nil, err
		}
		q.Operands = append(q.Operands, v)
	}
	return q, nil
}
