//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const webDir = "web"

var wasmEnv = map[string]string{
	"GOOS":   "js",
	"GOARCH": "wasm",
}

// Builds web/main.wasm and copies the matching wasm_exec.js next to it.
func Wasm() error {
	goroot, err := sh.Output("go", "env", "GOROOT")
	if err != nil {
		return err
	}
	if err := sh.Copy(filepath.Join(webDir, "wasm_exec.js"), filepath.Join(goroot, "lib", "wasm", "wasm_exec.js")); err != nil {
		return err
	}
	return sh.RunWith(wasmEnv, "go", "build", "-o", filepath.Join(webDir, "main.wasm"), "./client")
}

// Builds web/main.js with the GopherJS compiler. GopherJS needs the Go
// toolchain release it was built for on the PATH.
func Gopherjs() error {
	return sh.RunV("go", "run", "github.com/gopherjs/gopherjs", "build", "-o", filepath.Join(webDir, "main.js"), "./client")
}

// Builds the wasm bundle and serves it with the stub session API.
func Serve() error {
	mg.Deps(Wasm)
	return sh.RunV("go", "run", "./cmd/devserver", "--web", webDir)
}

// Runs the host tests. Browser-only packages are excluded by their build tag.
func Test() error {
	return sh.RunV("go", "test", "./...")
}
