package pathspec_test

import (
	"fmt"

	"github.com/variantform/variantform/pathspec"
)

func ExampleMatch() {
	fmt.Println(pathspec.Match("config/deep/file.json", "config/*.json"))
	fmt.Println(pathspec.Match("config/deep/file.json", "config/**/*.json"))
	fmt.Println(pathspec.Match("features.json", "**/*.json"))
	// Output:
	// false
	// true
	// true
}

func ExampleValidateSurfacePath() {
	fmt.Println(pathspec.ValidateSurfacePath("config/a.json"))
	fmt.Println(pathspec.ValidateSurfacePath("../../etc/passwd"))
	// Output:
	// <nil>
	// unsafe path "../../etc/passwd": path contains a '..' segment
}
