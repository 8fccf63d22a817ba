/*
Package calc evaluates one line arithmetic equations.

Evaluation stages

	Text ->
		strip spaces ->
	Stripped Text ->
		parse ->
	Equation tree (ast) ->
		eval ->
	float64

Grammar, from the loosest binding

	Equation = Term (('+' | '-') Term)*
	Term     = Degree (('*' | '/') Degree)*
	Degree   = Exponent | Number
	Exponent = Number '^' Degree

There are no parentheses and no spaces inside tokens.
Exponent chains associate to the right: 2^3^2 is 2^(3^2).
A trailing operator is not consumed: "1+2+" parses as "1+2" with "+" left over.

Division by zero and pow domain errors are not errors,
they produce IEEE infinities and NaN.

Parsing and evaluation recurse once per link of an exponent chain,
so adversarial input made of a very long a^b^c^... chain costs stack proportional to its length.
*/
package calc
