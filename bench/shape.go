package bench

// Shape classifies an operation by arity, calling convention and how its
// operands are passed.
type Shape uint8

const (
	BinaryFunction        Shape = iota // f(&a, &b)
	BinaryFunctionByValue              // f(a, b)
	UnaryFunction                      // f(&a)
	UnaryFunctionByValue               // f(a)
	BinaryOperator                     // a.op(&b) or a.op(b)
	UnaryOperatorInPlace               // a.op() mutating a
)

var shapeNames = [...]string{
	BinaryFunction:        "BinaryFunction",
	BinaryFunctionByValue: "BinaryFunctionByValue",
	UnaryFunction:         "UnaryFunction",
	UnaryFunctionByValue:  "UnaryFunctionByValue",
	BinaryOperator:        "BinaryOperator",
	UnaryOperatorInPlace:  "UnaryOperatorInPlace",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Shape(?)"
}

// Arity is the number of operand corpora a case of this shape owns.
func (s Shape) Arity() int {
	switch s {
	case UnaryFunction, UnaryFunctionByValue, UnaryOperatorInPlace:
		return 1
	}
	return 2
}
