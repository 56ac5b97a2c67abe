package superexpressive_test

import (
	"fmt"

	"github.com/coregx/superexpressive"
	"github.com/coregx/superexpressive/syntax"
)

func Example() {
	se := superexpressive.New().
		StartOfInput().
		AtLeast(3).Digit().
		Capture().
		Literal("-").
		Word().
		End().
		EndOfInput()

	fmt.Println(se.String())
	// Output: ^\d{3,}(\-\w)$
}

func ExampleExpression_Render() {
	_, err := superexpressive.New().Capture().Digit().Render()
	fmt.Println(err)
	// Output:
	// superexpressive: expression has unclosed elements in render: 1 element(s) still open, innermost is capture (try adding an End call)
}

func ExampleExpression_Subexpression() {
	word := superexpressive.New().Literal("hello").AnyChar().Literal("world")
	se := superexpressive.New().OneOrMore().Subexpression(word)
	fmt.Println(se.String())
	// Output: (?:hello.world)+
}

func ExampleExpression_Pattern() {
	se := superexpressive.New().
		NamedCapture("tag").OneOrMore().Word().End().
		Char(":").
		NamedBackreference("tag")

	python, _ := se.Pattern(syntax.Python)
	dotnet, _ := se.Pattern(syntax.DotNet)
	fmt.Println(python)
	fmt.Println(dotnet)
	// Output:
	// (?P<tag>\w+):\g<tag>
	// (?<tag>\w+):\k<tag>
}

func ExampleRegex_FindStringSubmatch() {
	re := superexpressive.New().
		NamedCapture("year").Exactly(4).Digit().End().
		Char("-").
		Capture().Exactly(2).Digit().End().
		MustCompile()

	m, err := re.FindStringSubmatch("released 2021-07")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	fmt.Println(re.SubexpNames())
	// Output:
	// [2021-07 2021 07]
	// [ year ]
}

func ExampleRegex_Exec() {
	re := superexpressive.New().
		AllowMultipleMatches().
		OneOrMore().Digit().
		MustCompile()

	matches, _ := re.Exec("1 apple, 22 pears, 333 plums")
	for _, m := range matches {
		fmt.Println(m.Index(), m.Text())
	}
	// Output:
	// 0 1
	// 9 22
	// 19 333
}
