// Package pathutil checks paths the CLI is about to write to.
//
// [SanitizeOutputPath] cleans a user-supplied output path and refuses to
// follow symlinks, so a planted link cannot redirect resolved output:
//
//	safe, err := pathutil.SanitizeOutputPath(afero.NewOsFs(), userProvidedPath)
//	if err != nil {
//	    return err // symlink detected
//	}
package pathutil
