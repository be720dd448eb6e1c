package interpreter

// versionString is the host application's release version.
const versionString = "1.4.0"

// SourceVersion returns the host version banner printed alongside the
// runtime's own version output.
func SourceVersion() string {
	return "prismview version " + versionString
}
