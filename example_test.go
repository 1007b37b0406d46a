package variantform_test

import (
	"fmt"
	"testing/fstest"

	"github.com/variantform/variantform"
)

func ExampleProject_Resolve() {
	fsys := fstest.MapFS{
		".variantform.yaml":                  {Data: []byte("surfaces:\n  - path: config/features.json\n    format: json\n")},
		"config/features.json":               {Data: []byte(`{"kanban": true, "max_projects": 10}`)},
		"variants/acme/config/features.json": {Data: []byte(`{"max_projects": 50}`)},
	}

	p, err := variantform.Open(fsys)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := p.Resolve("acme", "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Surfaces[0].Content)
	// Output:
	// {
	//   "kanban": true,
	//   "max_projects": 50
	// }
}
