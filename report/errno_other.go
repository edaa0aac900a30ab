//go:build !unix

package report

func errnoText(err error) (string, bool) {
	return "", false
}

func exitStatus(code int) int {
	return code
}
