package domain

// CalculatorInstructions explains the expression syntax to users.
const CalculatorInstructions = `To make a vector use square brackets:
  3D: [5, 3, 1]   2D: [3, 4]   1D: [2]

To scale a vector put a number before it: 5[6, 4]
Parentheses can be scaled too: 5([6, 4] + [4, 4])

Put the operator between vectors: 5[6, 4] + 5[4, 4] - 6[5, 4]
  +  addition      -  subtraction
  *  dot product   x  cross product

Order of operations: scalar multiplication, cross, dot, then addition
and subtraction from left to right.

Vectors of different dimensions cannot be combined: 5[6, 4] + 5[4, 4, 6]
A dot product is a scalar, so group before combining it with vectors:
  5[6, 4, 6] * (5[4, 4, 6] + 3[5, 6, 6])

Use fractions, not decimals:
  Improper: 7/2[-30/4, 4]   Mixed: 3 1/2[-7 1/2, 4]`

// QuizInstructions explains how to answer practice questions.
const QuizInstructions = `Type in the answer to each question.
If the answer is a vector write it as a vector: [4, 3, 6]
If the answer is a scalar leave out the brackets: -56
Use fractions, not decimals. Round angles to the nearest whole degree.
Type "answer" to reveal the solution, "exit" to leave.`
