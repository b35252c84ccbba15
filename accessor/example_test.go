package accessor_test

import (
	"fmt"

	"accessor-check/accessor"
)

func ExampleVerifier_Verify() {
	v := accessor.New()

	res := v.Verify(&tagged{})
	fmt.Println(res.IsValid(), res.Checked)

	res = v.Verify(&renamed{})
	for _, f := range res.Failures {
		fmt.Println(f)
	}

	v.AddIgnoredField("name")
	fmt.Println(v.Verify(&renamed{}).IsValid())

	// Output:
	// true [accessor_test.tagged.tags]
	// [accessor_test.renamed] name: [method-not-found] method SetName not found (did you mean GetName, SetFullName?)
	// true
}
