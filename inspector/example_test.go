package inspector_test

import (
	"fmt"
	"testing/fstest"

	"github.com/variantform/variantform/inspector"
)

func ExampleInspector_Diff() {
	fsys := fstest.MapFS{
		".variantform.yaml":                  {Data: []byte("surfaces:\n  - path: config/features.json\n    format: json\n")},
		"config/features.json":               {Data: []byte(`{"kanban": true, "gantt": true}`)},
		"variants/acme/config/features.json": {Data: []byte(`{"gantt": false}`)},
	}

	result, err := inspector.New().Diff(fsys, nil, "acme")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range result.Entries {
		fmt.Println(e.Surface, e.OverrideKeys)
	}
	// Output: config/features.json [gantt]
}
