// Package version parses and compares dotted release numbers.
//
// It is used to check the release a server reports against the oldest
// release the client supports:
//
//	v, err := version.Parse("3.1.14")
//	if err == nil && !v.AtLeast(version.MustParse("3.0")) {
//		// warn
//	}
package version
