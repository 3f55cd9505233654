//go:build js && wasm

package main

import (
	"bytes"
	"fmt"
	"syscall/js"

	"jander/internal/context"
	"jander/internal/diagnostics"
)

// checkCode analyzes a program held in memory and returns its diagnostics
func checkCode(code string, detailed bool) (string, bool) {
	format := diagnostics.FormatPlain
	if detailed {
		format = diagnostics.FormatDetailed
	}

	ctx := context.New(&context.CompilerOptions{Format: format, Workers: 1}, nil)

	// No file system in the browser: register the code as a virtual file
	file := ctx.AddFile("programa.alg", code)
	ctx.ProcessFile(file)

	var buf bytes.Buffer
	if err := file.EmitDiagnostics(&buf, format); err != nil {
		return err.Error(), false
	}
	return buf.String(), !file.HasErrors()
}

// janderCheckJS is the JavaScript-callable function
func janderCheckJS(this js.Value, args []js.Value) interface{} {
	defer func() {
		if r := recover(); r != nil {
			js.Global().Get("console").Call("error", "PANIC in jander:", fmt.Sprint(r))
		}
	}()

	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (code string)",
		}
	}

	code := args[0].String()
	detailed := len(args) > 1 && args[1].Bool()

	output, ok := checkCode(code, detailed)
	return map[string]interface{}{
		"success": ok,
		"output":  output,
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("janderCheck", js.FuncOf(janderCheckJS))

	fmt.Println("Jander WASM checker ready")

	<-c
}
