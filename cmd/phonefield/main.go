package main

import (
	"fmt"
	"io"
	"log"

	"github.com/jsnanigans/phonefield/pkg/phonefield"
)

func main() {
	log.SetOutput(io.Discard) // keep the per-edit DEBUG lines out of the demo output

	field := phonefield.NewField(phonefield.LibFormatter{}, phonefield.LibParser{}, phonefield.Config{
		Region:        "US",
		WithPrefix:    true,
		FormatEnabled: true,
	})

	valid := false
	field.OnValidityChanged = func(v bool) { valid = v }

	fmt.Println("--- Typing +14155552671 ---")
	for _, r := range "+14155552671" {
		field.ApplyEdit(field.Cursor(), 0, string(r))
		fmt.Printf("%s  (cursor=%d, valid=%v)\n", phonefield.VisualizeCursor(field.Text(), field.Cursor()), field.Cursor(), valid)
	}

	fmt.Println("--- Backspacing twice ---")
	for i := 0; i < 2; i++ {
		if field.Cursor() == 0 {
			break
		}
		field.ApplyEdit(field.Cursor()-1, 1, "")
		fmt.Printf("%s  (cursor=%d, valid=%v)\n", phonefield.VisualizeCursor(field.Text(), field.Cursor()), field.Cursor(), valid)
	}

	fmt.Println("--- Inserting in the middle ---")
	field.SetCursor(field.Cursor() - 2)
	field.ApplyEdit(field.Cursor(), 0, "9")
	fmt.Printf("%s  (cursor=%d, valid=%v)\n", phonefield.VisualizeCursor(field.Text(), field.Cursor()), field.Cursor(), valid)
}
