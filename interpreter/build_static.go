//go:build staticbuild

package interpreter

const sharedLibraryBuild = false
