// Package expression parses and evaluates vector arithmetic expressions.
//
// An expression combines vector literals such as "[1, 2/3, -4 1/2]" with
// the operators "+", "-", "*" (dot product) and "x" (cross product).
// Operands may carry a scalar prefix ("5/6[3, 7, 8]") and may be grouped
// with parentheses ("2(a + b)").
//
// Precedence from loosest to tightest:
//
//	additive := dot (("+" | "-") dot)*
//	dot      := cross ("*" cross)*
//	cross    := term ("x" term)*
//	term     := [scalar] (vector | "(" additive ")")
//
// All binary operators are left-associative. A "-" directly after "]" or
// ")" is subtraction; anywhere else it is the sign of the scalar that
// follows.
package expression
